package rules

import (
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// Widget returns the HTML input widget used for a column in generated
// forms. Foreign keys become selection lists; name patterns beat types.
func Widget(col schema.Column) string {
	if col.ForeignKey {
		return "select"
	}

	name := strings.ToLower(col.Name)
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "password"):
		return "password"
	case containsAny(name, "url", "link", "website"):
		return "url"
	case strings.Contains(name, "phone"):
		return "tel"
	case strings.Contains(name, "color"):
		return "color"
	}

	switch col.Type {
	case schema.TypeText:
		return "textarea"
	case schema.TypeBoolean:
		return "checkbox"
	case schema.TypeDate:
		return "date"
	case schema.TypeDateTime, schema.TypeDateTimeTz:
		return "datetime-local"
	case schema.TypeTime:
		return "time"
	case schema.TypeInteger, schema.TypeBigInteger, schema.TypeDecimal, schema.TypeFloat:
		return "number"
	default:
		return "text"
	}
}

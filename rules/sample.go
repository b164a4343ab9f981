package rules

import (
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// Sample returns the Go expression emitted into factory artifacts for one
// column. Name patterns are consulted first, then the per-type defaults.
// Foreign-key columns create a related record and use its identifier, which
// assumes the related factory follows the same New<Model> convention.
func Sample(col schema.Column) string {
	lower := strings.ToLower(col.Name)

	switch {
	case strings.Contains(lower, "email"):
		return "gofakeit.Email()"
	case strings.Contains(lower, "name"):
		switch {
		case containsAny(lower, "first", "given"):
			return "gofakeit.FirstName()"
		case containsAny(lower, "last", "family", "surname"):
			return "gofakeit.LastName()"
		case containsAny(lower, "full", "display"):
			return "gofakeit.Name()"
		case containsAny(lower, "user", "nick"):
			return "gofakeit.Username()"
		case strings.Contains(lower, "company"):
			return "gofakeit.Company()"
		}
		return "gofakeit.Name()"
	case strings.Contains(lower, "phone"):
		return "gofakeit.Phone()"
	case strings.Contains(lower, "address"):
		return "gofakeit.Address().Address"
	case strings.Contains(lower, "city"):
		return "gofakeit.City()"
	case strings.Contains(lower, "country"):
		return "gofakeit.Country()"
	case containsAny(lower, "zip", "postal"):
		return "gofakeit.Zip()"
	case strings.Contains(lower, "url"):
		return "gofakeit.URL()"
	case strings.Contains(lower, "slug"):
		return `gofakeit.Word() + "-" + gofakeit.Word()`
	case strings.Contains(lower, "title"):
		return "gofakeit.Sentence(3)"
	case containsAny(lower, "description", "body", "content", "bio"):
		return `gofakeit.Paragraph(3, 4, 12, " ")`
	case strings.Contains(lower, "password"):
		return "gofakeit.Password(true, true, true, false, false, 12)"
	case strings.Contains(lower, "token"):
		return "gofakeit.LetterN(60)"
	case strings.Contains(lower, "uuid"):
		return "gofakeit.UUID()"
	case strings.Contains(lower, "color"):
		return "gofakeit.HexColor()"
	case containsAny(lower, "image", "avatar", "photo"):
		return "gofakeit.ImageURL(640, 480)"
	case containsAny(lower, "amount", "price", "cost", "total"):
		return "gofakeit.Price(0, 1000)"
	case containsAny(lower, "quantity", "count", "number"):
		return "gofakeit.Number(1, 100)"
	}

	if col.ForeignKey {
		return "New" + col.RelatedModel() + "(db).ID"
	}

	return sampleByType(col)
}

func sampleByType(col schema.Column) string {
	switch col.Type {
	case schema.TypeString:
		if col.Length > 0 && col.Length <= 50 {
			return "gofakeit.Sentence(3)"
		}
		return "gofakeit.Sentence(8)"
	case schema.TypeText:
		return `gofakeit.Paragraph(3, 4, 12, " ")`
	case schema.TypeInteger, schema.TypeBigInteger:
		if col.Unsigned {
			return "gofakeit.Number(1, 1000)"
		}
		return "gofakeit.Number(-1000, 1000)"
	case schema.TypeDecimal, schema.TypeFloat:
		return "gofakeit.Float64Range(0, 1000)"
	case schema.TypeBoolean:
		return "gofakeit.Bool()"
	case schema.TypeDate:
		return "time.Now().AddDate(0, 0, -gofakeit.Number(1, 365))"
	case schema.TypeDateTime, schema.TypeDateTimeTz:
		return "time.Now().Add(-time.Duration(gofakeit.Number(1, 720)) * time.Hour)"
	case schema.TypeTime:
		return "time.Now()"
	case schema.TypeJSON:
		return `datatypes.JSON([]byte("{}"))`
	case schema.TypeUUID:
		return "gofakeit.UUID()"
	default:
		return "gofakeit.Word()"
	}
}

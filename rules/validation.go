package rules

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// Rule is one validation constraint derived for a column. The same rule
// list feeds both the binding tag and the database-backed checks in the
// generated request artifact, so every generator sees identical rules.
type Rule struct {
	Name  string
	Param string
}

func (r Rule) String() string {
	if r.Param == "" {
		return r.Name
	}
	return r.Name + ":" + r.Param
}

// StoreRules derives the validation rules for create requests.
func StoreRules(col schema.Column, table string) []Rule {
	return rulesFor(col, table, false)
}

// UpdateRules derives the validation rules for update requests. Uniqueness
// checks exclude the record being updated.
func UpdateRules(col schema.Column, table string) []Rule {
	return rulesFor(col, table, true)
}

func rulesFor(col schema.Column, table string, update bool) []Rule {
	var rules []Rule

	if !col.Nullable && col.Default == nil {
		if update {
			rules = append(rules, Rule{Name: "sometimes"})
		} else {
			rules = append(rules, Rule{Name: "required"})
		}
	} else {
		rules = append(rules, Rule{Name: "nullable"})
	}

	rules = append(rules, typeRules(col)...)
	rules = append(rules, patternRules(col.Name)...)

	if col.Type == schema.TypeString && col.Length > 0 {
		rules = append(rules, Rule{Name: "max", Param: fmt.Sprintf("%d", col.Length)})
	}

	if col.Unique {
		param := table + "," + col.Name
		if update {
			param += ",self"
		}
		rules = append(rules, Rule{Name: "unique", Param: param})
	}

	if col.ForeignKey {
		rules = append(rules, Rule{Name: "exists", Param: col.RelatedTable() + ",id"})
	}

	return rules
}

func typeRules(col schema.Column) []Rule {
	var rules []Rule

	switch col.Type {
	case schema.TypeString:
		rules = append(rules, Rule{Name: "string"})
		if strings.Contains(col.Name, "email") {
			rules = append(rules, Rule{Name: "email"})
		}
		if containsAny(col.Name, "url", "link", "website") {
			rules = append(rules, Rule{Name: "url"})
		}
	case schema.TypeText, schema.TypeBinary:
		rules = append(rules, Rule{Name: "string"})
	case schema.TypeInteger, schema.TypeBigInteger:
		rules = append(rules, Rule{Name: "integer"})
		if col.Unsigned {
			rules = append(rules, Rule{Name: "min", Param: "0"})
		}
	case schema.TypeDecimal, schema.TypeFloat:
		rules = append(rules, Rule{Name: "numeric"})
		if col.Unsigned {
			rules = append(rules, Rule{Name: "min", Param: "0"})
		}
	case schema.TypeBoolean:
		rules = append(rules, Rule{Name: "boolean"})
	case schema.TypeDate, schema.TypeDateTime, schema.TypeDateTimeTz:
		rules = append(rules, Rule{Name: "date"})
	case schema.TypeTime:
		rules = append(rules, Rule{Name: "date_format", Param: "15:04:05"})
	case schema.TypeJSON:
		rules = append(rules, Rule{Name: "array"})
	case schema.TypeUUID:
		rules = append(rules, Rule{Name: "uuid"})
	}

	return rules
}

// Name-pattern rules layered on top of the type rules. First match wins.
func patternRules(name string) []Rule {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "password"):
		return []Rule{{Name: "min", Param: "8"}}
	case strings.Contains(lower, "phone"):
		return []Rule{{Name: "phone"}}
	case containsAny(lower, "image", "avatar", "photo"):
		return []Rule{{Name: "image"}, {Name: "max", Param: "2048"}}
	case containsAny(lower, "zip", "postal"):
		return []Rule{{Name: "digits_between", Param: "4,10"}}
	case strings.Contains(lower, "slug"):
		return []Rule{{Name: "alpha_dash"}}
	case containsAny(lower, "file", "document"):
		return []Rule{{Name: "file"}, {Name: "max", Param: "10240"}}
	case strings.Contains(lower, "color"):
		return []Rule{{Name: "hex_color"}}
	}

	return nil
}

// BindingTag renders the subset of rules expressible as a struct binding
// tag in the emitted request type. Database-backed rules (unique, exists)
// are rendered separately as query checks.
func BindingTag(rules []Rule) string {
	var parts []string
	for _, rule := range rules {
		switch rule.Name {
		case "required":
			parts = append(parts, "required")
		case "sometimes", "nullable":
			parts = append(parts, "omitempty")
		case "email", "url", "uuid", "numeric", "alpha_dash", "hex_color":
			parts = append(parts, rule.Name)
		case "phone":
			parts = append(parts, "e164")
		case "min":
			parts = append(parts, "min="+rule.Param)
		case "max":
			parts = append(parts, "max="+rule.Param)
		}
	}
	return strings.Join(parts, ",")
}

// DatabaseRules filters the rules that need a query against the target
// database (uniqueness and referential existence).
func DatabaseRules(rules []Rule) []Rule {
	var out []Rule
	for _, rule := range rules {
		if rule.Name == "unique" || rule.Name == "exists" {
			out = append(out, rule)
		}
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

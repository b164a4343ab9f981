package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// MalformedFieldSpecError reports a field entry that cannot be parsed.
type MalformedFieldSpecError struct {
	Entry  string
	Reason string
}

func (e *MalformedFieldSpecError) Error() string {
	return fmt.Sprintf("malformed field spec %q: %s", e.Entry, e.Reason)
}

// Aliases for common type shorthands. Tokens not in this table pass through
// unchanged.
var typeAliases = map[string]schema.SemanticType{
	"str":       schema.TypeString,
	"int":       schema.TypeInteger,
	"bool":      schema.TypeBoolean,
	"txt":       schema.TypeText,
	"json":      schema.TypeJSON,
	"date":      schema.TypeDate,
	"datetime":  schema.TypeDateTime,
	"time":      schema.TypeTime,
	"float":     schema.TypeFloat,
	"double":    schema.TypeFloat,
	"decimal":   schema.TypeDecimal,
	"foreignId": schema.TypeBigInteger,
	"foreign":   schema.TypeBigInteger,
}

// TypeAlias resolves a shorthand type token to its semantic type.
func TypeAlias(token string) (schema.SemanticType, bool) {
	t, ok := typeAliases[token]
	return t, ok
}

// Fields parses a compact field-definition string into columns plus the
// belongsTo relationships inferred from foreign-key columns.
//
// Grammar: comma-separated entries of the form name[:type[:modifier...]].
// The type defaults to string. Modifiers after the second position:
// "nullable", "unique", or a purely numeric token setting the length.
//
//	title:string,body:text,is_active:boolean
//	email:string:unique
//	bio:text:nullable
//	user_id:foreignId
func Fields(spec string) ([]schema.Column, []schema.Relationship, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil, nil
	}

	var columns []schema.Column
	var relationships []schema.Relationship

	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		parts := strings.Split(entry, ":")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		name := parts[0]
		if name == "" {
			return nil, nil, &MalformedFieldSpecError{Entry: entry, Reason: "empty field name"}
		}

		typeToken := "string"
		if len(parts) > 1 && parts[1] != "" {
			typeToken = parts[1]
		}

		var modifiers []string
		if len(parts) > 2 {
			modifiers = parts[2:]
		}

		var nullable, unique bool
		length := 0
		for _, modifier := range modifiers {
			switch m := strings.ToLower(modifier); {
			case m == "nullable":
				nullable = true
			case m == "unique":
				unique = true
			default:
				if n, err := strconv.Atoi(m); err == nil && n > 0 {
					length = n
				}
				// unrecognized modifiers are ignored rather than erroring
			}
		}

		semanticType, ok := typeAliases[typeToken]
		if !ok {
			semanticType = schema.SemanticType(typeToken)
		}

		isForeign := strings.HasSuffix(name, "_id") || typeToken == "foreignId" || typeToken == "foreign"

		if length == 0 && semanticType == schema.TypeString {
			length = schema.DefaultStringLength
		}

		columns = append(columns, schema.Column{
			Name:       name,
			Type:       semanticType,
			Length:     length,
			Nullable:   nullable,
			Unique:     unique,
			Unsigned:   isForeign,
			ForeignKey: isForeign,
		})

		if isForeign {
			base := schema.TrimIDSuffix(name)
			relationships = append(relationships, schema.Relationship{
				Kind:         schema.BelongsTo,
				RelatedModel: schema.Pascal(base),
				Accessor:     schema.Camel(base),
				ForeignKey:   name,
			})
		}
	}

	return columns, relationships, nil
}

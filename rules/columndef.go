package rules

import (
	"fmt"

	"github.com/ridoystarlord/crafto/schema"
)

// semantic type -> Postgres column type
var sqlTypes = map[schema.SemanticType]string{
	schema.TypeString:     "varchar",
	schema.TypeText:       "text",
	schema.TypeInteger:    "integer",
	schema.TypeBigInteger: "bigint",
	schema.TypeDecimal:    "numeric(8,2)",
	schema.TypeFloat:      "double precision",
	schema.TypeBoolean:    "boolean",
	schema.TypeDate:       "date",
	schema.TypeDateTime:   "timestamp",
	schema.TypeDateTimeTz: "timestamptz",
	schema.TypeTime:       "time",
	schema.TypeJSON:       "jsonb",
	schema.TypeUUID:       "uuid",
	schema.TypeBinary:     "bytea",
}

// ColumnDef returns the storage column definition emitted into the
// migration artifact. Foreign keys always become constrained references to
// the pluralized related table with cascade on delete.
func ColumnDef(col schema.Column) string {
	if col.ForeignKey {
		def := fmt.Sprintf(`"%s" bigint`, col.Name)
		if !col.Nullable {
			def += " NOT NULL"
		}
		return def + fmt.Sprintf(` REFERENCES "%s" ("id") ON DELETE CASCADE`, col.RelatedTable())
	}

	sqlType, ok := sqlTypes[col.Type]
	if !ok {
		sqlType = "varchar"
	}
	if sqlType == "varchar" {
		length := col.Length
		if length == 0 {
			length = schema.DefaultStringLength
		}
		sqlType = fmt.Sprintf("varchar(%d)", length)
	}

	def := fmt.Sprintf(`"%s" %s`, col.Name, sqlType)
	if !col.Nullable {
		def += " NOT NULL"
	}
	if col.Default != nil {
		def += fmt.Sprintf(" DEFAULT %s", quoteDefault(col, *col.Default))
	}
	if col.Unique {
		def += " UNIQUE"
	}
	return def
}

func quoteDefault(col schema.Column, value string) string {
	switch col.Type {
	case schema.TypeInteger, schema.TypeBigInteger, schema.TypeDecimal,
		schema.TypeFloat, schema.TypeBoolean, schema.TypeJSON:
		return value
	}
	return "'" + value + "'"
}

package rules

import "github.com/ridoystarlord/crafto/schema"

// GoType maps a column to the Go field type used in emitted model structs.
// Nullable scalars become pointers so absent values round-trip through the
// database.
func GoType(col schema.Column) string {
	base := baseGoType(col)
	if col.Nullable && pointerable(col.Type) {
		return "*" + base
	}
	return base
}

func baseGoType(col schema.Column) string {
	// Foreign keys reference gorm's default uint primary key.
	if col.ForeignKey {
		return "uint"
	}
	switch col.Type {
	case schema.TypeString, schema.TypeText, schema.TypeUUID:
		return "string"
	case schema.TypeInteger:
		return "int"
	case schema.TypeBigInteger:
		if col.Unsigned {
			return "uint64"
		}
		return "int64"
	case schema.TypeDecimal, schema.TypeFloat:
		return "float64"
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeDate, schema.TypeDateTime, schema.TypeDateTimeTz, schema.TypeTime:
		return "time.Time"
	case schema.TypeJSON:
		return "datatypes.JSON"
	case schema.TypeBinary:
		return "[]byte"
	default:
		return "string"
	}
}

func pointerable(t schema.SemanticType) bool {
	switch t {
	case schema.TypeJSON, schema.TypeBinary:
		return false
	}
	return true
}

// NeedsTimeImport reports whether any column's Go type references the time
// package.
func NeedsTimeImport(cols []schema.Column) bool {
	for _, col := range cols {
		if col.IsDateType() {
			return true
		}
	}
	return false
}

// NeedsDatatypesImport reports whether any column maps to datatypes.JSON.
func NeedsDatatypesImport(cols []schema.Column) bool {
	for _, col := range cols {
		if col.Type == schema.TypeJSON {
			return true
		}
	}
	return false
}

package introspect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// ErrTableNotFound is returned when the requested table does not exist in
// the catalog. Callers are expected to fall back to default scaffolding
// rather than treat this as fatal.
var ErrTableNotFound = errors.New("table not found")

// ColumnInfo is the raw catalog description of one physical column.
type ColumnInfo struct {
	Name          string
	DataType      string
	Nullable      bool
	Default       *string
	Length        int
	Unsigned      bool
	AutoIncrement bool
}

// Catalog is the storage-catalog collaborator. The CLI wires the Postgres
// implementation; tests use an in-memory fake.
type Catalog interface {
	HasTable(ctx context.Context, table string) (bool, error)
	Columns(ctx context.Context, table string) ([]ColumnInfo, error)
}

// TableSchema is the normalized result of introspecting one table.
type TableSchema struct {
	Columns       []schema.Column
	Relationships []schema.Relationship
}

func (t *TableSchema) HasSoftDeleteColumn() bool {
	return t.hasColumn("deleted_at")
}

func (t *TableSchema) HasTimestampColumns() bool {
	return t.hasColumn("created_at") && t.hasColumn("updated_at")
}

func (t *TableSchema) hasColumn(name string) bool {
	for _, col := range t.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// storage type name -> semantic type; unmapped types default to string
var storageTypes = map[string]schema.SemanticType{
	"character varying":           schema.TypeString,
	"varchar":                     schema.TypeString,
	"character":                   schema.TypeString,
	"text":                        schema.TypeText,
	"smallint":                    schema.TypeInteger,
	"integer":                     schema.TypeInteger,
	"serial":                      schema.TypeInteger,
	"bigint":                      schema.TypeBigInteger,
	"bigserial":                   schema.TypeBigInteger,
	"numeric":                     schema.TypeDecimal,
	"decimal":                     schema.TypeDecimal,
	"real":                        schema.TypeFloat,
	"double precision":            schema.TypeFloat,
	"boolean":                     schema.TypeBoolean,
	"date":                        schema.TypeDate,
	"timestamp without time zone": schema.TypeDateTime,
	"timestamp":                   schema.TypeDateTime,
	"timestamp with time zone":    schema.TypeDateTimeTz,
	"timestamptz":                 schema.TypeDateTimeTz,
	"time without time zone":      schema.TypeTime,
	"time":                        schema.TypeTime,
	"json":                        schema.TypeJSON,
	"jsonb":                       schema.TypeJSON,
	"uuid":                        schema.TypeUUID,
	"bytea":                       schema.TypeBinary,
}

// Uniqueness is detected by a fixed allow-list of conventional names, not a
// real index lookup. This misclassifies unique constraints on differently
// named columns and falsely flags unrelated columns that happen to use
// these names; the approximation is deliberate and documented.
var conventionalUniqueNames = map[string]bool{
	"email": true,
	"slug":  true,
	"uuid":  true,
}

// Introspector builds schema columns and relationships from a live table.
type Introspector struct {
	catalog Catalog
}

func New(catalog Catalog) *Introspector {
	return &Introspector{catalog: catalog}
}

// Introspect reads the table's columns from the catalog and maps them into
// the semantic schema. Foreign keys are detected purely by the `_id` naming
// convention, the primary key by the literal column name `id`.
func (in *Introspector) Introspect(ctx context.Context, table string) (*TableSchema, error) {
	exists, err := in.catalog.HasTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("checking table %s: %v", table, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	infos, err := in.catalog.Columns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("reading columns for %s: %v", table, err)
	}

	result := &TableSchema{}
	for _, info := range infos {
		semanticType, ok := storageTypes[strings.ToLower(info.DataType)]
		if !ok {
			semanticType = schema.TypeString
		}

		isForeign := strings.HasSuffix(info.Name, "_id")

		col := schema.Column{
			Name:          info.Name,
			Type:          semanticType,
			Length:        info.Length,
			Nullable:      info.Nullable,
			Default:       info.Default,
			Unsigned:      info.Unsigned || isForeign,
			ForeignKey:    isForeign,
			Unique:        conventionalUniqueNames[info.Name],
			Primary:       info.Name == "id",
			AutoIncrement: info.AutoIncrement,
		}
		if col.Type == schema.TypeString && col.Length == 0 {
			col.Length = schema.DefaultStringLength
		}
		result.Columns = append(result.Columns, col)

		if isForeign {
			base := schema.TrimIDSuffix(info.Name)
			result.Relationships = append(result.Relationships, schema.Relationship{
				Kind:         schema.BelongsTo,
				RelatedModel: schema.Pascal(base),
				Accessor:     schema.Camel(base),
				ForeignKey:   info.Name,
			})
		}
	}

	return result, nil
}

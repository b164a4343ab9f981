package schema

// SemanticType is the engine-independent column type used throughout the
// generators. Unknown type tokens from user input pass through as-is.
type SemanticType string

const (
	TypeString     SemanticType = "string"
	TypeText       SemanticType = "text"
	TypeInteger    SemanticType = "integer"
	TypeBigInteger SemanticType = "bigInteger"
	TypeDecimal    SemanticType = "decimal"
	TypeFloat      SemanticType = "float"
	TypeBoolean    SemanticType = "boolean"
	TypeDate       SemanticType = "date"
	TypeDateTime   SemanticType = "dateTime"
	TypeDateTimeTz SemanticType = "dateTimeTz"
	TypeTime       SemanticType = "time"
	TypeJSON       SemanticType = "json"
	TypeUUID       SemanticType = "uuid"
	TypeBinary     SemanticType = "binary"
)

// DefaultStringLength is applied to string columns declared without an
// explicit length.
const DefaultStringLength = 255

type Column struct {
	Name          string
	Type          SemanticType
	Length        int // 0 when not applicable
	Nullable      bool
	Default       *string
	Unsigned      bool
	ForeignKey    bool
	Unique        bool
	Primary       bool
	AutoIncrement bool
}

// IsDateType reports whether the column holds a date or time value.
func (c Column) IsDateType() bool {
	switch c.Type {
	case TypeDate, TypeDateTime, TypeDateTimeTz, TypeTime:
		return true
	}
	return false
}

// RelatedModel returns the PascalCase model name a foreign-key column points
// at (user_id -> User). Only meaningful when ForeignKey is true.
func (c Column) RelatedModel() string {
	return Pascal(TrimIDSuffix(c.Name))
}

// RelatedTable returns the conventional table name a foreign-key column
// references (user_id -> users).
func (c Column) RelatedTable() string {
	return Plural(Snake(TrimIDSuffix(c.Name)))
}

type RelationshipKind string

const (
	BelongsTo     RelationshipKind = "belongsTo"
	HasMany       RelationshipKind = "hasMany"
	HasOne        RelationshipKind = "hasOne"
	BelongsToMany RelationshipKind = "belongsToMany"
	MorphMany     RelationshipKind = "morphMany"
	MorphTo       RelationshipKind = "morphTo"
)

// Kinds lists every supported relationship kind.
var Kinds = []RelationshipKind{BelongsTo, HasMany, HasOne, BelongsToMany, MorphMany, MorphTo}

// ValidKind reports whether k is one of the supported relationship kinds.
func ValidKind(k RelationshipKind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

type Relationship struct {
	Kind         RelationshipKind
	RelatedModel string // PascalCase
	Accessor     string // camelCase accessor name
	ForeignKey   string // belongsTo only
	PivotTable   string // belongsToMany only
}

// Schema is the normalized generation input for one model. Column order is
// insertion order and determines field ordering in every emitted artifact.
type Schema struct {
	ModelName     string
	Columns       []Column
	Relationships []Relationship
}

func New(modelName string) *Schema {
	return &Schema{ModelName: Pascal(modelName)}
}

// AddColumn appends a column, replacing any existing column with the same
// name in place so the original position is kept.
func (s *Schema) AddColumn(col Column) {
	for i, existing := range s.Columns {
		if existing.Name == col.Name {
			s.Columns[i] = col
			return
		}
	}
	s.Columns = append(s.Columns, col)
}

// Column looks a column up by name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

func (s *Schema) HasColumn(name string) bool {
	_, ok := s.Column(name)
	return ok
}

// AddRelationship appends a relationship. belongsTo declarations are
// deduplicated on (related model, kind): a second belongsTo to the same
// model is dropped even if it names a different foreign key, matching the
// source system's behavior.
func (s *Schema) AddRelationship(rel Relationship) {
	if rel.Kind == BelongsTo {
		for _, existing := range s.Relationships {
			if existing.Kind == BelongsTo && existing.RelatedModel == rel.RelatedModel {
				return
			}
		}
	}
	s.Relationships = append(s.Relationships, rel)
}

// excluded from fillable, form and migration output
var reservedColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

var sensitiveColumns = map[string]bool{
	"password":       true,
	"remember_token": true,
}

// FillableColumns returns the mass-assignable columns: everything except the
// identifier, timestamps, the soft-delete marker and autoincrement columns.
func (s *Schema) FillableColumns() []Column {
	var out []Column
	for _, col := range s.Columns {
		if reservedColumns[col.Name] || col.AutoIncrement {
			continue
		}
		out = append(out, col)
	}
	return out
}

// DisplayColumns returns the columns shown in index/show views: everything
// except sensitive fields and the soft-delete marker.
func (s *Schema) DisplayColumns() []Column {
	var out []Column
	for _, col := range s.Columns {
		if sensitiveColumns[col.Name] || col.Name == "deleted_at" {
			continue
		}
		out = append(out, col)
	}
	return out
}

// FormColumns returns the columns rendered as form inputs.
func (s *Schema) FormColumns() []Column {
	var out []Column
	for _, col := range s.Columns {
		if reservedColumns[col.Name] || col.AutoIncrement {
			continue
		}
		out = append(out, col)
	}
	return out
}

// RequiredColumns returns the names of the non-nullable, non-defaulted
// fillable columns. The test generator uses them for negative validation.
func (s *Schema) RequiredColumns() []string {
	var out []string
	for _, col := range s.FillableColumns() {
		if !col.Nullable && col.Default == nil {
			out = append(out, col.Name)
		}
	}
	return out
}

func (s *Schema) HasSoftDeleteColumn() bool {
	return s.HasColumn("deleted_at")
}

func (s *Schema) HasTimestampColumns() bool {
	return s.HasColumn("created_at") && s.HasColumn("updated_at")
}

// Derived names. All naming in emitted artifacts flows from these.

func (s *Schema) TableName() string      { return Plural(Snake(s.ModelName)) }
func (s *Schema) Variable() string       { return Camel(s.ModelName) }
func (s *Schema) VariablePlural() string { return Camel(Plural(s.ModelName)) }
func (s *Schema) PluralName() string     { return Plural(s.ModelName) }
func (s *Schema) RouteName() string      { return Kebab(Plural(s.ModelName)) }
func (s *Schema) SnakeName() string      { return Snake(s.ModelName) }
func (s *Schema) ViewPath() string       { return Kebab(Plural(s.ModelName)) }

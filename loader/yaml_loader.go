package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/parser"
	"github.com/ridoystarlord/crafto/schema"
)

// ErrMalformedConfig marks an invalid scaffold configuration document.
var ErrMalformedConfig = errors.New("malformed scaffold config")

// File is the top-level scaffold configuration document. It describes
// either a single model (name/fields/relationships at the top level) or a
// batch (a models list, with top-level options applied as defaults).
type File struct {
	Name          string              `yaml:"name"`
	Fields        []FieldEntry        `yaml:"fields"`
	Relationships []RelationshipEntry `yaml:"relationships"`
	Options       OptionsEntry        `yaml:"options"`
	Models        []ModelEntry        `yaml:"models"`
}

// ModelEntry is one model inside a batch document. Its options override the
// batch-level options field by field.
type ModelEntry struct {
	Name          string              `yaml:"name"`
	Fields        []FieldEntry        `yaml:"fields"`
	Relationships []RelationshipEntry `yaml:"relationships"`
	Options       OptionsEntry        `yaml:"options"`
}

type FieldEntry struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Nullable bool    `yaml:"nullable"`
	Unique   bool    `yaml:"unique"`
	Length   int     `yaml:"length"`
	Default  *string `yaml:"default"`
}

type RelationshipEntry struct {
	Type       string `yaml:"type"`
	Model      string `yaml:"model"`
	Method     string `yaml:"method"`
	ForeignKey string `yaml:"foreignKey"`
	Nullable   bool   `yaml:"nullable"`
	Pivot      string `yaml:"pivot"`
}

// OptionsEntry mirrors config.Options with pointer fields so an unset key
// can be told apart from an explicit false during batch merging.
type OptionsEntry struct {
	Type        *string `yaml:"type"` // output profile
	CSS         *string `yaml:"css"`
	Force       *bool   `yaml:"force"`
	SoftDeletes *bool   `yaml:"soft_deletes"`
	All         *bool   `yaml:"all"`
	APIResource *bool   `yaml:"api_resource"`
	NoPolicy    *bool   `yaml:"no_policy"`
	NoRequests  *bool   `yaml:"no_requests"`
	Tests       *bool   `yaml:"tests"`
	AddToNav    *bool   `yaml:"add_to_nav"`
	Table       *string `yaml:"table"`
	SeedCount   *int    `yaml:"seed_count"`
}

// apply overlays the set fields of e onto opts.
func (e OptionsEntry) apply(opts *config.Options) error {
	if e.Type != nil {
		p := config.Profile(*e.Type)
		if !config.ValidProfile(p) {
			return fmt.Errorf("%w: unknown output profile %q", ErrMalformedConfig, *e.Type)
		}
		opts.Profile = p
	}
	if e.CSS != nil {
		c := config.CSS(*e.CSS)
		if !config.ValidCSS(c) {
			return fmt.Errorf("%w: unknown css dialect %q", ErrMalformedConfig, *e.CSS)
		}
		opts.CSS = c
	}
	if e.Force != nil {
		opts.Force = *e.Force
	}
	if e.SoftDeletes != nil {
		opts.SoftDeletes = *e.SoftDeletes
	}
	if e.All != nil {
		opts.All = *e.All
	}
	if e.APIResource != nil {
		opts.APIResource = *e.APIResource
	}
	if e.NoPolicy != nil {
		opts.NoPolicy = *e.NoPolicy
	}
	if e.NoRequests != nil {
		opts.NoRequests = *e.NoRequests
	}
	if e.Tests != nil {
		opts.Tests = *e.Tests
	}
	if e.AddToNav != nil {
		opts.AddToNav = *e.AddToNav
	}
	if e.Table != nil {
		opts.Table = *e.Table
	}
	if e.SeedCount != nil {
		opts.SeedCount = *e.SeedCount
	}
	return nil
}

// LoadFile reads and resolves a scaffold configuration document into one
// ModelSpec per model. defaults carries the flag-level options applied
// below the document's own options.
func LoadFile(path string, defaults config.Options) ([]ModelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %v", path, err)
	}

	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	entries := doc.Models
	if len(entries) == 0 {
		if doc.Name == "" {
			return nil, fmt.Errorf("%w: missing model name", ErrMalformedConfig)
		}
		entries = []ModelEntry{{
			Name:          doc.Name,
			Fields:        doc.Fields,
			Relationships: doc.Relationships,
		}}
	}

	var specs []ModelSpec
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: model entry without a name", ErrMalformedConfig)
		}

		opts := defaults
		if err := doc.Options.apply(&opts); err != nil {
			return nil, err
		}
		if err := entry.Options.apply(&opts); err != nil {
			return nil, fmt.Errorf("model %s: %w", entry.Name, err)
		}

		s, err := buildSchema(entry)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ModelSpec{Schema: s, Options: opts})
	}
	return specs, nil
}

func buildSchema(entry ModelEntry) (*schema.Schema, error) {
	s := schema.New(entry.Name)

	for _, field := range entry.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("%w: model %s has a field without a name", ErrMalformedConfig, entry.Name)
		}
		col, rel := columnFromEntry(field)
		s.AddColumn(col)
		if rel != nil {
			s.AddRelationship(*rel)
		}
	}

	for _, rel := range entry.Relationships {
		if err := addRelationship(s, rel); err != nil {
			return nil, fmt.Errorf("model %s: %w", entry.Name, err)
		}
	}
	return s, nil
}

func columnFromEntry(field FieldEntry) (schema.Column, *schema.Relationship) {
	typeToken := field.Type
	if typeToken == "" {
		typeToken = "string"
	}
	semanticType, ok := parser.TypeAlias(typeToken)
	if !ok {
		semanticType = schema.SemanticType(typeToken)
	}

	isForeign := strings.HasSuffix(field.Name, "_id") || typeToken == "foreignId" || typeToken == "foreign"

	col := schema.Column{
		Name:       field.Name,
		Type:       semanticType,
		Length:     field.Length,
		Nullable:   field.Nullable,
		Unique:     field.Unique,
		Default:    field.Default,
		Unsigned:   isForeign,
		ForeignKey: isForeign,
	}
	if col.Type == schema.TypeString && col.Length == 0 {
		col.Length = schema.DefaultStringLength
	}

	if !isForeign {
		return col, nil
	}
	base := schema.TrimIDSuffix(field.Name)
	return col, &schema.Relationship{
		Kind:         schema.BelongsTo,
		RelatedModel: schema.Pascal(base),
		Accessor:     schema.Camel(base),
		ForeignKey:   field.Name,
	}
}

func addRelationship(s *schema.Schema, entry RelationshipEntry) error {
	kind := schema.RelationshipKind(entry.Type)
	if !schema.ValidKind(kind) {
		return fmt.Errorf("%w: unknown relationship type %q", ErrMalformedConfig, entry.Type)
	}
	if entry.Model == "" {
		return fmt.Errorf("%w: %s relationship without a model", ErrMalformedConfig, entry.Type)
	}

	related := schema.Pascal(entry.Model)
	accessor := entry.Method
	if accessor == "" {
		switch kind {
		case schema.HasMany, schema.BelongsToMany, schema.MorphMany:
			accessor = schema.Camel(schema.Plural(related))
		default:
			accessor = schema.Camel(related)
		}
	}

	rel := schema.Relationship{
		Kind:         kind,
		RelatedModel: related,
		Accessor:     accessor,
		PivotTable:   entry.Pivot,
	}

	if kind == schema.BelongsTo {
		fk := entry.ForeignKey
		if fk == "" {
			fk = schema.Snake(related) + "_id"
		}
		rel.ForeignKey = fk
		if !s.HasColumn(fk) {
			s.AddColumn(schema.Column{
				Name:       fk,
				Type:       schema.TypeBigInteger,
				Nullable:   entry.Nullable,
				Unsigned:   true,
				ForeignKey: true,
			})
		}
	}

	s.AddRelationship(rel)
	return nil
}

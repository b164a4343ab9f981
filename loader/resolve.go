package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/introspect"
	"github.com/ridoystarlord/crafto/parser"
	"github.com/ridoystarlord/crafto/schema"
)

// ModelSpec is the resolved generation input for one model: a finished
// schema plus the options that apply to it. Neither is mutated once the
// runner starts emitting artifacts.
type ModelSpec struct {
	Schema  *schema.Schema
	Options config.Options
}

// Input carries the raw command-line inputs feeding resolution. Exactly one
// of ConfigPath, Options.Table, or FieldSpec drives the schema source;
// relationship flags layer on top of the first two.
type Input struct {
	ModelName  string
	FieldSpec  string
	ConfigPath string
	Options    config.Options

	BelongsTo     []string
	HasMany       []string
	BelongsToMany []string
}

// Resolve merges the three input modes into the model specs the runner
// consumes. Config-file mode may yield several models; the other two yield
// exactly one. catalog may be nil when introspection is not requested.
func Resolve(ctx context.Context, in Input, catalog introspect.Catalog) ([]ModelSpec, error) {
	if in.ConfigPath != "" {
		return LoadFile(in.ConfigPath, in.Options)
	}

	if in.ModelName == "" {
		return nil, fmt.Errorf("%w: a model name is required", ErrMalformedConfig)
	}

	s := schema.New(in.ModelName)
	opts := in.Options

	switch {
	case opts.Table != "":
		if err := fromTable(ctx, s, &opts, catalog); err != nil {
			return nil, err
		}
	case in.FieldSpec != "":
		cols, rels, err := parser.Fields(in.FieldSpec)
		if err != nil {
			return nil, err
		}
		for _, col := range cols {
			s.AddColumn(col)
		}
		for _, rel := range rels {
			s.AddRelationship(rel)
		}
	}

	applyRelationFlags(s, in)
	return []ModelSpec{{Schema: s, Options: opts}}, nil
}

// fromTable fills the schema from the live table, falling back to an empty
// schema with a warning when the table does not exist. A deleted_at column
// in the table turns soft-delete generation on for the run.
func fromTable(ctx context.Context, s *schema.Schema, opts *config.Options, catalog introspect.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("no database connection available to introspect %s", opts.Table)
	}

	table, err := introspect.New(catalog).Introspect(ctx, opts.Table)
	if err != nil {
		if errors.Is(err, introspect.ErrTableNotFound) {
			color.Yellow("⚠️  Table %s not found, scaffolding with an empty schema", opts.Table)
			return nil
		}
		return err
	}

	for _, col := range table.Columns {
		s.AddColumn(col)
	}
	for _, rel := range table.Relationships {
		s.AddRelationship(rel)
	}
	if table.HasSoftDeleteColumn() {
		opts.SoftDeletes = true
	}
	return nil
}

func applyRelationFlags(s *schema.Schema, in Input) {
	for _, name := range in.BelongsTo {
		related := schema.Pascal(name)
		fk := schema.Snake(related) + "_id"
		if !s.HasColumn(fk) {
			s.AddColumn(schema.Column{
				Name:       fk,
				Type:       schema.TypeBigInteger,
				Unsigned:   true,
				ForeignKey: true,
			})
		}
		s.AddRelationship(schema.Relationship{
			Kind:         schema.BelongsTo,
			RelatedModel: related,
			Accessor:     schema.Camel(related),
			ForeignKey:   fk,
		})
	}

	for _, name := range in.HasMany {
		related := schema.Pascal(name)
		s.AddRelationship(schema.Relationship{
			Kind:         schema.HasMany,
			RelatedModel: related,
			Accessor:     schema.Camel(schema.Plural(related)),
		})
	}

	for _, name := range in.BelongsToMany {
		related := schema.Pascal(name)
		s.AddRelationship(schema.Relationship{
			Kind:         schema.BelongsToMany,
			RelatedModel: related,
			Accessor:     schema.Camel(schema.Plural(related)),
			PivotTable:   pivotTable(s.ModelName, related),
		})
	}
}

// pivotTable joins the two singular snake_case model names in alphabetical
// order, the conventional pivot naming.
func pivotTable(a, b string) string {
	left, right := schema.Snake(a), schema.Snake(b)
	if left > right {
		left, right = right, left
	}
	return left + "_" + right
}

package generator

import (
	"strings"

	"github.com/ridoystarlord/crafto/rules"
	"github.com/ridoystarlord/crafto/schema"
)

// ModelGenerator emits the gorm model struct plus the fillable, filterable
// and sortable whitelists derived from the schema.
type ModelGenerator struct{}

func (ModelGenerator) Name() string { return "model" }

func (ModelGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema

	var fields []string
	for _, col := range s.Columns {
		if reserved(col.Name) {
			continue
		}
		fields = append(fields, "\t"+fieldName(col.Name)+" "+rules.GoType(col)+
			" `gorm:\"column:"+col.Name+"\" json:\""+col.Name+"\"`")
	}

	extra := map[string]string{
		"imports":         modelImports(s, ctx.Options.SoftDeletes),
		"fields":          strings.Join(fields, "\n"),
		"relationFields":  relationFields(s),
		"softDeleteField": softDeleteField(ctx.Options.SoftDeletes),
		"fillable":        quotedLines(columnNames(s.FillableColumns())),
		"filterable":      quotedLines(filterableNames(s)),
		"sortable":        quotedLines(sortableNames(s)),
	}

	path := ctx.Config.Join(ctx.Config.Paths.Models, s.SnakeName()+".go")
	artifact, err := ctx.renderAndWrite("model.stub", path, extra)
	if err != nil {
		return nil, err
	}
	return []Artifact{artifact}, nil
}

func modelImports(s *schema.Schema, softDeletes bool) string {
	lines := []string{"\t\"time\""}
	if softDeletes {
		lines = append(lines, "", "\t\"gorm.io/gorm\"")
	}
	if rules.NeedsDatatypesImport(s.Columns) {
		lines = append(lines, "", "\t\"gorm.io/datatypes\"")
	}
	return strings.Join(lines, "\n")
}

// relationFields emits one struct field per relationship. The switch is
// exhaustive over the relationship kinds; morphTo has no concrete related
// type and contributes no field.
func relationFields(s *schema.Schema) string {
	var lines []string
	for _, rel := range s.Relationships {
		name := schema.Pascal(rel.Accessor)
		jsonTag := " `json:\"" + schema.Snake(rel.Accessor) + ",omitempty\"`"
		switch rel.Kind {
		case schema.BelongsTo, schema.HasOne:
			lines = append(lines, "\t"+name+" *"+rel.RelatedModel+jsonTag)
		case schema.HasMany, schema.MorphMany:
			lines = append(lines, "\t"+name+" []"+rel.RelatedModel+jsonTag)
		case schema.BelongsToMany:
			tag := " `gorm:\"many2many:" + rel.PivotTable + "\" json:\"" + schema.Snake(rel.Accessor) + ",omitempty\"`"
			lines = append(lines, "\t"+name+" []"+rel.RelatedModel+tag)
		case schema.MorphTo:
			// polymorphic parent reference, no generated field
		}
	}
	return strings.Join(lines, "\n")
}

func softDeleteField(enabled bool) string {
	if !enabled {
		return ""
	}
	return "\tDeletedAt gorm.DeletedAt `gorm:\"index\" json:\"-\"`"
}

func reserved(name string) bool {
	switch name {
	case "id", "created_at", "updated_at", "deleted_at":
		return true
	}
	return false
}

func columnNames(cols []schema.Column) []string {
	var out []string
	for _, col := range cols {
		out = append(out, col.Name)
	}
	return out
}

// filterableNames lists the text columns the index search may match on.
func filterableNames(s *schema.Schema) []string {
	var out []string
	for _, col := range s.FillableColumns() {
		if col.Type == schema.TypeString || col.Type == schema.TypeText {
			out = append(out, col.Name)
		}
	}
	return out
}

func sortableNames(s *schema.Schema) []string {
	out := []string{"id"}
	out = append(out, columnNames(s.FillableColumns())...)
	return append(out, "created_at")
}

func quotedLines(names []string) string {
	var lines []string
	for _, name := range names {
		lines = append(lines, "\t\""+name+"\",")
	}
	return strings.Join(lines, "\n")
}

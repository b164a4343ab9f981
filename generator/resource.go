package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// ResourceGenerator emits the JSON serialization type: one field per
// display column, dates rendered as RFC 3339 strings, one nested resource
// reference per relationship.
type ResourceGenerator struct{}

func (ResourceGenerator) Name() string { return "resource" }

func (ResourceGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema

	fields := []string{"\tID uint `json:\"id\"`"}
	var assignments []string
	needsHelper := false

	for _, col := range s.DisplayColumns() {
		if reserved(col.Name) {
			continue
		}
		field := fieldName(col.Name)
		switch {
		case col.IsDateType() && col.Nullable:
			fields = append(fields, "\t"+field+" *string `json:\""+col.Name+"\"`")
			assignments = append(assignments, "\t\t"+field+": formatTime("+s.Variable()+"."+field+"),")
			needsHelper = true
		case col.IsDateType():
			fields = append(fields, "\t"+field+" string `json:\""+col.Name+"\"`")
			assignments = append(assignments, "\t\t"+field+": "+s.Variable()+"."+field+".Format(time.RFC3339),")
		case col.Type == schema.TypeBoolean:
			goType := "bool"
			if col.Nullable {
				goType = "*bool"
			}
			fields = append(fields, "\t"+field+" "+goType+" `json:\""+col.Name+"\"`")
			assignments = append(assignments, "\t\t"+field+": "+s.Variable()+"."+field+",")
		default:
			fields = append(fields, "\t"+field+" any `json:\""+col.Name+"\"`")
			assignments = append(assignments, "\t\t"+field+": "+s.Variable()+"."+field+",")
		}
	}

	fields = append(fields,
		"\tCreatedAt string `json:\"created_at\"`",
		"\tUpdatedAt string `json:\"updated_at\"`")
	assignments = append(assignments,
		"\t\tCreatedAt: "+s.Variable()+".CreatedAt.Format(time.RFC3339),",
		"\t\tUpdatedAt: "+s.Variable()+".UpdatedAt.Format(time.RFC3339),")

	relFields, relAssignments := resourceRelations(s)
	fields = append(fields, relFields...)

	extra := map[string]string{
		"imports":             resourceImports(ctx),
		"fields":              strings.Join(fields, "\n"),
		"assignments":         strings.Join(assignments, "\n"),
		"relationAssignments": strings.Join(relAssignments, "\n"),
		"helpers":             "",
	}

	var artifacts []Artifact

	path := ctx.Config.Join(ctx.Config.Paths.Resources, s.SnakeName()+"_resource.go")
	artifact, err := ctx.renderAndWrite("resource.stub", path, extra)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, artifact)

	if needsHelper {
		helperPath := ctx.Config.Join(ctx.Config.Paths.Resources, "helpers.go")
		helper, err := ctx.renderAndWrite("resource.helper.stub", helperPath, nil)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, helper)
	}

	return artifacts, nil
}

// resourceRelations builds the nested-resource fields and their guarded
// assignments. The switch is exhaustive; morphTo has no concrete resource
// type to reference.
func resourceRelations(s *schema.Schema) (fields, assignments []string) {
	variable := s.Variable()
	for _, rel := range s.Relationships {
		field := schema.Pascal(rel.Accessor)
		jsonTag := " `json:\"" + schema.Snake(rel.Accessor) + ",omitempty\"`"
		switch rel.Kind {
		case schema.BelongsTo, schema.HasOne:
			fields = append(fields, "\t"+field+" *"+rel.RelatedModel+"Resource"+jsonTag)
			assignments = append(assignments, fmt.Sprintf(
				"\tif %[1]s.%[2]s != nil {\n\t\tnested := New%[3]sResource(%[1]s.%[2]s)\n\t\tr.%[2]s = &nested\n\t}",
				variable, field, rel.RelatedModel))
		case schema.HasMany, schema.BelongsToMany, schema.MorphMany:
			fields = append(fields, "\t"+field+" []"+rel.RelatedModel+"Resource"+jsonTag)
			assignments = append(assignments, fmt.Sprintf(
				"\tif len(%[1]s.%[2]s) > 0 {\n\t\tr.%[2]s = New%[3]sCollection(%[1]s.%[2]s)\n\t}",
				variable, field, rel.RelatedModel))
		case schema.MorphTo:
			// no concrete resource type
		}
	}
	return fields, assignments
}

func resourceImports(ctx *Context) string {
	return strings.Join([]string{
		"\t\"time\"",
		"",
		"\t\"" + ctx.Config.Module + "/internal/models\"",
	}, "\n")
}

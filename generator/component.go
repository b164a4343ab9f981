package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// ComponentGenerator emits the htmx table and form components used by the
// interactive profile: a Go endpoint pair plus their HTML fragments.
type ComponentGenerator struct{}

func (ComponentGenerator) Name() string { return "component" }

func (g ComponentGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema
	classes := classesFor(ctx.Options.CSS)
	var artifacts []Artifact

	goFiles := []struct {
		stub  string
		file  string
		extra map[string]string
	}{
		{"component.table.go.stub", s.SnakeName() + "_table.go", map[string]string{
			"eagerLoads":        eagerLoads(s),
			"trashedFilter":     trashedFilter(ctx.Options.SoftDeletes),
			"searchFilter":      searchFilter(s),
			"softDeleteActions": componentSoftDeleteActions(ctx),
		}},
		{"component.form.go.stub", s.SnakeName() + "_form.go", nil},
	}
	for _, file := range goFiles {
		path := ctx.Config.Join(ctx.Config.Paths.Components, file.file)
		artifact, err := ctx.renderAndWrite(file.stub, path, file.extra)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	helperPath := ctx.Config.Join(ctx.Config.Paths.Components, "helpers.go")
	helper, err := ctx.renderAndWrite("component.helper.stub", helperPath, nil)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, helper)

	htmlFiles := []struct {
		stub  string
		file  string
		extra map[string]string
	}{
		{"component.table.html.stub", s.SnakeName() + "_table.html", map[string]string{
			"tableHeaders":    tableHeaders(s, classes),
			"tableCells":      tableCells(s, classes),
			"trashedControls": componentTrashedControls(ctx, classes),
			"rowActions":      componentRowActions(ctx, classes),
		}},
		{"component.form.html.stub", s.SnakeName() + "_form.html", map[string]string{
			"formFields": formFields(s, classes, false),
		}},
	}
	for _, file := range htmlFiles {
		extra := map[string]string{}
		for key, value := range classes {
			extra[key] = value
		}
		for key, value := range file.extra {
			extra[key] = value
		}

		content, err := ctx.render(file.stub, extra)
		if err != nil {
			return nil, err
		}
		name := "components/" + file.file
		content = "{{ define \"" + name + "\" }}\n" + content + "{{ end }}\n"

		path := ctx.Config.Join(ctx.Config.Paths.Views, "components", file.file)
		artifact, err := ctx.write(path, content)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// searchFilter builds the OR chain over the filterable text columns. With
// nothing to match on, the search parameter is accepted but ignored.
func searchFilter(s *schema.Schema) string {
	names := filterableNames(s)
	if len(names) == 0 {
		return ""
	}

	var conditions []string
	var args []string
	for _, name := range names {
		conditions = append(conditions, name+" LIKE ?")
		args = append(args, `"%"+search+"%"`)
	}
	return fmt.Sprintf("\t\tquery = query.Where(%q, %s)",
		strings.Join(conditions, " OR "), strings.Join(args, ", "))
}

func componentSoftDeleteActions(ctx *Context) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	model := ctx.Schema.ModelName
	variable := ctx.Schema.Variable()

	return fmt.Sprintf(`
// Restore brings one soft-deleted record back and re-renders the table.
func (t *%[1]sTable) Restore(c *gin.Context) {
	var %[2]s models.%[1]s
	err := t.DB.Unscoped().Where("deleted_at IS NOT NULL").First(&%[2]s, "id = ?", c.Param("id")).Error
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !(policies.%[1]sPolicy{}).Restore(c, &%[2]s) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := t.DB.Unscoped().Model(&%[2]s).Update("deleted_at", nil).Error; err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	t.Rows(c)
}

// ForceDelete permanently removes one soft-deleted record.
func (t *%[1]sTable) ForceDelete(c *gin.Context) {
	var %[2]s models.%[1]s
	err := t.DB.Unscoped().Where("deleted_at IS NOT NULL").First(&%[2]s, "id = ?", c.Param("id")).Error
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !(policies.%[1]sPolicy{}).ForceDelete(c, &%[2]s) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := t.DB.Unscoped().Delete(&%[2]s).Error; err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	t.Rows(c)
}
`, model, variable)
}

func componentTrashedControls(ctx *Context, classes map[string]string) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	s := ctx.Schema
	return fmt.Sprintf("    <a class=\"%[1]s\" hx-get=\"/components/%[2]s/rows?trashed=1\"\n"+
		"       hx-target=\"#%[3]s-table\" hx-swap=\"outerHTML\">Trashed</a>",
		classes["linkClass"], s.RouteName(), s.SnakeName())
}

func componentRowActions(ctx *Context, classes map[string]string) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	s := ctx.Schema
	return fmt.Sprintf("          {{ if .DeletedAt.Valid }}\n"+
		"          <button class=\"%[1]s\" hx-post=\"/components/%[2]s/{{ .ID }}/restore\"\n"+
		"                  hx-target=\"#%[3]s-table\" hx-swap=\"outerHTML\">Restore</button>\n"+
		"          <button class=\"%[4]s\" hx-delete=\"/components/%[2]s/{{ .ID }}/force\"\n"+
		"                  hx-target=\"#%[3]s-table\" hx-swap=\"outerHTML\"\n"+
		"                  hx-confirm=\"Permanently delete?\">Delete Forever</button>\n"+
		"          {{ end }}",
		classes["linkClass"], s.RouteName(), s.SnakeName(), classes["dangerLinkClass"])
}

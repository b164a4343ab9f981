package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/rules"
	"github.com/ridoystarlord/crafto/schema"
)

// ViewGenerator emits the index/create/edit/show HTML templates. Each file
// is wrapped in a define block named after its render path so the handlers
// can address it through a single template glob.
type ViewGenerator struct{}

func (ViewGenerator) Name() string { return "view" }

func (g ViewGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema
	classes := classesFor(ctx.Options.CSS)

	views := []struct {
		stub  string
		file  string
		extra map[string]string
	}{
		{"view.index.stub", "index.html", map[string]string{
			"tableHeaders":    tableHeaders(s, classes),
			"tableCells":      tableCells(s, classes),
			"trashedControls": trashedControls(ctx, classes),
			"rowActions":      rowActions(ctx, classes),
		}},
		{"view.create.stub", "create.html", map[string]string{
			"formFields": formFields(s, classes, false),
		}},
		{"view.edit.stub", "edit.html", map[string]string{
			"formFields": formFields(s, classes, true),
		}},
		{"view.show.stub", "show.html", map[string]string{
			"showRows": showRows(s, classes),
		}},
	}

	var artifacts []Artifact
	for _, view := range views {
		extra := map[string]string{}
		for key, value := range classes {
			extra[key] = value
		}
		for key, value := range view.extra {
			extra[key] = value
		}

		content, err := ctx.render(view.stub, extra)
		if err != nil {
			return nil, err
		}
		name := s.ViewPath() + "/" + view.file
		content = "{{ define \"" + name + "\" }}\n" + content + "{{ end }}\n"

		path := ctx.Config.Join(ctx.Config.Paths.Views, s.ViewPath(), view.file)
		artifact, err := ctx.write(path, content)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func tableHeaders(s *schema.Schema, classes map[string]string) string {
	var lines []string
	for _, col := range s.DisplayColumns() {
		if reserved(col.Name) {
			continue
		}
		lines = append(lines, fmt.Sprintf(`        <th class="%s">%s</th>`,
			classes["thClass"], schema.Humanize(col.Name)))
	}
	return strings.Join(lines, "\n")
}

func tableCells(s *schema.Schema, classes map[string]string) string {
	var lines []string
	for _, col := range s.DisplayColumns() {
		if reserved(col.Name) {
			continue
		}
		lines = append(lines, fmt.Sprintf(`        <td class="%s">{{ .%s }}</td>`,
			classes["tdClass"], fieldName(col.Name)))
	}
	return strings.Join(lines, "\n")
}

func showRows(s *schema.Schema, classes map[string]string) string {
	variable := s.Variable()
	var lines []string
	for _, col := range s.DisplayColumns() {
		if reserved(col.Name) {
			continue
		}
		lines = append(lines, fmt.Sprintf("    <dt class=\"%s\">%s</dt>\n    <dd class=\"%s\">{{ .%s.%s }}</dd>",
			classes["dtClass"], schema.Humanize(col.Name), classes["ddClass"], variable, fieldName(col.Name)))
	}
	return strings.Join(lines, "\n")
}

// formFields renders one labeled input per form column, widget chosen from
// the shared inference rules. Edit forms prefill from the bound record.
func formFields(s *schema.Schema, classes map[string]string, edit bool) string {
	variable := s.Variable()
	var blocks []string
	for _, col := range s.FormColumns() {
		value := ""
		checked := ""
		if edit {
			value = fmt.Sprintf("{{ .%s.%s }}", variable, fieldName(col.Name))
			checked = fmt.Sprintf("{{ if .%s.%s }}checked{{ end }}", variable, fieldName(col.Name))
		}

		label := fmt.Sprintf(`      <label class="%s">%s</label>`, classes["labelClass"], schema.Humanize(col.Name))
		var input string
		switch widget := rules.Widget(col); widget {
		case "textarea":
			input = fmt.Sprintf(`      <textarea name="%s" class="%s" rows="4">%s</textarea>`,
				col.Name, classes["inputClass"], value)
		case "checkbox":
			input = fmt.Sprintf(`      <input type="checkbox" name="%s" value="true" %s>`, col.Name, checked)
		case "select":
			option := `<option value="{{ .ID }}">{{ .ID }}</option>`
			if edit && !col.Nullable {
				option = fmt.Sprintf(`<option value="{{ .ID }}" {{ if eq $.%s.%s .ID }}selected{{ end }}>{{ .ID }}</option>`,
					variable, fieldName(col.Name))
			}
			input = fmt.Sprintf("      <select name=\"%s\" class=\"%s\">\n"+
				"        <option value=\"\">Select %s</option>\n"+
				"        {{ range .%s }}\n"+
				"        %s\n"+
				"        {{ end }}\n"+
				"      </select>",
				col.Name, classes["inputClass"], schema.Humanize(schema.TrimIDSuffix(col.Name)),
				relatedCollection(s, col), option)
		default:
			input = fmt.Sprintf(`      <input type="%s" name="%s" value="%s" class="%s">`,
				widget, col.Name, value, classes["inputClass"])
		}

		blocks = append(blocks, fmt.Sprintf("    <div class=\"%s\">\n%s\n%s\n    </div>",
			classes["formGroupClass"], label, input))
	}
	return strings.Join(blocks, "\n")
}

// relatedCollection is the template key the handler stores the belongsTo
// target records under; it must match the variable relatedLoads emits.
func relatedCollection(s *schema.Schema, col schema.Column) string {
	for _, rel := range s.Relationships {
		if rel.Kind == schema.BelongsTo && rel.ForeignKey == col.Name {
			return schema.Camel(schema.Plural(rel.RelatedModel))
		}
	}
	return schema.Camel(schema.Plural(schema.Pascal(schema.TrimIDSuffix(col.Name))))
}

func trashedControls(ctx *Context, classes map[string]string) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	route := ctx.Schema.RouteName()
	return fmt.Sprintf("  <div class=\"%s\">\n"+
		"    <a href=\"/%s\" class=\"%s\">All</a>\n"+
		"    <a href=\"/%s?trashed=1\" class=\"%s\">Trashed</a>\n"+
		"  </div>",
		classes["formGroupClass"], route, classes["linkClass"], route, classes["linkClass"])
}

// rowActions adds restore and force-delete controls for rows that are
// soft-deleted.
func rowActions(ctx *Context, classes map[string]string) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	route := ctx.Schema.RouteName()
	return fmt.Sprintf("          {{ if .DeletedAt.Valid }}\n"+
		"          <form method=\"POST\" action=\"/%[1]s/{{ .ID }}/restore\" style=\"display:inline\">\n"+
		"            <button type=\"submit\" class=\"%[2]s\">Restore</button>\n"+
		"          </form>\n"+
		"          <form method=\"POST\" action=\"/%[1]s/{{ .ID }}/force\" style=\"display:inline\">\n"+
		"            <button type=\"submit\" class=\"%[3]s\">Delete Forever</button>\n"+
		"          </form>\n"+
		"          {{ end }}",
		route, classes["linkClass"], classes["dangerLinkClass"])
}

package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// navMarker is where generated navigation links are inserted in the
// application layout.
const navMarker = "<!-- scaffold:nav -->"

// LayoutGenerator makes sure the base layout exists and, when asked,
// appends a navigation link for the model. The link is idempotent: an
// existing href for the route leaves the layout untouched.
type LayoutGenerator struct{}

func (LayoutGenerator) Name() string { return "layout" }

func (g LayoutGenerator) Generate(ctx *Context) ([]Artifact, error) {
	classes := classesFor(ctx.Options.CSS)
	path := ctx.Config.Join(ctx.Config.Paths.Layouts, "app.html")

	var artifacts []Artifact
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content, renderErr := ctx.render("layout.app.stub", classes)
		if renderErr != nil {
			return nil, renderErr
		}
		artifact, writeErr := ctx.write(path, content)
		if writeErr != nil {
			return nil, writeErr
		}
		artifacts = append(artifacts, artifact)
		data = []byte(artifact.Content)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}

	if !ctx.Options.AddToNav {
		return artifacts, nil
	}

	content := string(data)
	href := `href="/` + ctx.Schema.RouteName() + `"`
	if strings.Contains(content, href) {
		return append(artifacts, Artifact{Path: path, Content: content, Created: false}), nil
	}
	if !strings.Contains(content, navMarker) {
		return nil, fmt.Errorf("%s has no %q marker", path, navMarker)
	}

	link := fmt.Sprintf(`<a %s class="%s">%s</a>`, href, classes["navLinkClass"],
		schema.Humanize(ctx.Schema.PluralName()))
	content = strings.Replace(content, navMarker, navMarker+"\n                "+link, 1)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %v", path, err)
	}
	return append(artifacts, Artifact{Path: path, Content: content, Created: true}), nil
}

package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// WelcomeGenerator emits the landing page with one quick-link card per
// scaffolded model. It is driven by the layout command, not by per-model
// generation runs.
type WelcomeGenerator struct {
	Models []string
}

func (WelcomeGenerator) Name() string { return "welcome" }

func (g WelcomeGenerator) Generate(ctx *Context) ([]Artifact, error) {
	classes := classesFor(ctx.Options.CSS)

	extra := map[string]string{}
	for key, value := range classes {
		extra[key] = value
	}
	extra["quickLinks"] = quickLinks(g.Models, classes)

	content, err := ctx.render("view.welcome.stub", extra)
	if err != nil {
		return nil, err
	}
	content = "{{ define \"welcome.html\" }}\n" + content + "{{ end }}\n"

	path := ctx.Config.Join(ctx.Config.Paths.Views, "welcome.html")
	artifact, err := ctx.write(path, content)
	if err != nil {
		return nil, err
	}
	return []Artifact{artifact}, nil
}

func quickLinks(models []string, classes map[string]string) string {
	if len(models) == 0 {
		return fmt.Sprintf(`            <p class="%s">No models scaffolded yet. Run crafto make to get started.</p>`,
			classes["mutedClass"])
	}

	var lines []string
	for _, model := range models {
		s := schema.New(model)
		lines = append(lines, fmt.Sprintf(`            <a href="/%s" class="%s">%s</a>`,
			s.RouteName(), classes["cardClass"], schema.Humanize(s.PluralName())))
	}
	return strings.Join(lines, "\n")
}

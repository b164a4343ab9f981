package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/ridoystarlord/crafto/config"
)

// routesMarker is where generated route blocks are inserted, keeping the
// marker in place for later models.
const routesMarker = "// scaffold:routes"

// RouteGenerator idempotently registers the resourceful routes. A model's
// routes are considered present when its kebab route token already appears
// in the target file, in which case the file is left untouched.
type RouteGenerator struct{}

func (RouteGenerator) Name() string { return "route" }

func (g RouteGenerator) Generate(ctx *Context) ([]Artifact, error) {
	var artifacts []Artifact

	if ctx.Options.WantsWeb() || ctx.Options.Profile == config.ProfileComponent {
		token := `"/` + ctx.Schema.RouteName() + `"`
		if ctx.Options.Profile == config.ProfileComponent {
			token = `"/components/` + ctx.Schema.RouteName()
		}
		artifact, err := g.register(ctx, "routes.web.stub", "web.go", token, webRouteBlock(ctx), webRouteImports(ctx))
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	if ctx.Options.WantsAPI() {
		token := `"/` + ctx.Schema.RouteName() + `"`
		artifact, err := g.register(ctx, "routes.api.stub", "api.go", token, apiRouteBlock(ctx), apiRouteImports(ctx))
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// register creates the routes file from its stub when missing, then splices
// the model's block in after the marker.
func (g RouteGenerator) register(ctx *Context, stub, file, token, block string, imports []string) (Artifact, error) {
	path := ctx.Config.Join(ctx.Config.Paths.Routes, file)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content, renderErr := ctx.render(stub, nil)
		if renderErr != nil {
			return Artifact{}, renderErr
		}
		data = []byte(content)
	} else if err != nil {
		return Artifact{}, fmt.Errorf("reading %s: %v", path, err)
	}

	content := string(data)
	if strings.Contains(content, token) {
		return Artifact{Path: path, Content: content, Created: false}, nil
	}
	if !strings.Contains(content, routesMarker) {
		return Artifact{}, fmt.Errorf("%s has no %q marker", path, routesMarker)
	}

	for _, line := range imports {
		content = ensureImport(content, line)
	}
	content = strings.Replace(content, routesMarker, routesMarker+"\n\n"+block, 1)

	if err := ctx.ensureDir(ctx.Config.Join(ctx.Config.Paths.Routes)); err != nil {
		return Artifact{}, err
	}
	existed := true
	if _, err := os.Stat(path); os.IsNotExist(err) {
		existed = false
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Artifact{}, fmt.Errorf("writing %s: %v", path, err)
	}
	if !existed && ctx.Tracker != nil {
		ctx.Tracker.Files = append(ctx.Tracker.Files, path)
	}
	return Artifact{Path: path, Content: content, Created: true}, nil
}

// ensureImport adds one import line to the file's import block when it is
// not already present.
func ensureImport(content, line string) string {
	if strings.Contains(content, strings.TrimSpace(line)) {
		return content
	}
	return strings.Replace(content, "\n)", "\n"+line+"\n)", 1)
}

func webRouteImports(ctx *Context) []string {
	if ctx.Options.Profile == config.ProfileComponent {
		return []string{"\t\"" + ctx.Config.Module + "/internal/components\""}
	}
	return []string{"\t\"" + ctx.Config.Module + "/internal/handlers\""}
}

func apiRouteImports(ctx *Context) []string {
	return []string{"\tapihandlers \"" + ctx.Config.Module + "/internal/handlers/api\""}
}

func webRouteBlock(ctx *Context) string {
	if ctx.Options.Profile == config.ProfileComponent {
		return componentRouteBlock(ctx)
	}

	model := ctx.Schema.ModelName
	route := ctx.Schema.RouteName()

	block := fmt.Sprintf(`	{
		h := handlers.New%[1]sHandler(db)
		web.GET("/%[2]s", h.Index)
		web.GET("/%[2]s/create", h.Create)
		web.POST("/%[2]s", h.Store)
		web.GET("/%[2]s/:id", h.Show)
		web.GET("/%[2]s/:id/edit", h.Edit)
		web.PUT("/%[2]s/:id", h.Update)
		web.DELETE("/%[2]s/:id", h.Destroy)
		web.POST("/%[2]s/:id", func(c *gin.Context) {
			switch c.PostForm("_method") {
			case "DELETE":
				h.Destroy(c)
			default:
				h.Update(c)
			}
		})`, model, route)

	if ctx.Options.SoftDeletes {
		block += fmt.Sprintf(`
		web.POST("/%[1]s/:id/restore", h.Restore)
		web.POST("/%[1]s/:id/force", h.ForceDelete)`, route)
	}
	return block + "\n\t}"
}

func apiRouteBlock(ctx *Context) string {
	model := ctx.Schema.ModelName
	route := ctx.Schema.RouteName()

	block := fmt.Sprintf(`	{
		h := apihandlers.New%[1]sHandler(db)
		api.GET("/%[2]s", h.Index)
		api.POST("/%[2]s", h.Store)
		api.GET("/%[2]s/:id", h.Show)
		api.PUT("/%[2]s/:id", h.Update)
		api.DELETE("/%[2]s/:id", h.Destroy)`, model, route)

	if ctx.Options.SoftDeletes {
		block += fmt.Sprintf(`
		api.POST("/%[1]s/:id/restore", h.Restore)
		api.DELETE("/%[1]s/:id/force", h.ForceDelete)`, route)
	}
	return block + "\n\t}"
}

func componentRouteBlock(ctx *Context) string {
	model := ctx.Schema.ModelName
	route := ctx.Schema.RouteName()

	block := fmt.Sprintf(`	{
		table := components.New%[1]sTable(db)
		form := components.New%[1]sForm(db)
		web.GET("/components/%[2]s/rows", table.Rows)
		web.DELETE("/components/%[2]s/:id", table.Delete)
		web.GET("/components/%[2]s/form", form.Show)
		web.GET("/components/%[2]s/form/:id", form.Show)
		web.POST("/components/%[2]s", form.Save)
		web.POST("/components/%[2]s/:id", form.Save)`, model, route)

	if ctx.Options.SoftDeletes {
		block += fmt.Sprintf(`
		web.POST("/components/%[1]s/:id/restore", table.Restore)
		web.DELETE("/components/%[1]s/:id/force", table.ForceDelete)`, route)
	}
	return block + "\n\t}"
}

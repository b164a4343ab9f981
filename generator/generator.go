package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/schema"
	"github.com/ridoystarlord/crafto/stubs"
)

// Artifact is one generated file: its target path, rendered content, and
// whether this run actually wrote it. Created=false means the target
// already existed and overwrite was not requested.
type Artifact struct {
	Path    string
	Content string
	Created bool
}

// Tracker records every file and directory a run creates, in order, so the
// runner can undo exactly that set on failure.
type Tracker struct {
	Files []string
	Dirs  []string
}

// Context carries the immutable inputs shared by every generator in one
// run, plus the run's tracker.
type Context struct {
	Schema   *schema.Schema
	Options  config.Options
	Config   config.Config
	Renderer *stubs.Renderer
	Tracker  *Tracker
}

// Generator produces the artifacts for one artifact kind.
type Generator interface {
	Name() string
	Generate(ctx *Context) ([]Artifact, error)
}

// replacements builds the substitution values common to every stub.
func (c *Context) replacements() map[string]string {
	s := c.Schema
	return map[string]string{
		"module":              c.Config.Module,
		"model":               s.ModelName,
		"modelVariable":       s.Variable(),
		"modelVariablePlural": s.VariablePlural(),
		"modelPlural":         s.PluralName(),
		"modelSnake":          s.SnakeName(),
		"modelHuman":          schema.Humanize(s.ModelName),
		"modelPluralHuman":    schema.Humanize(s.PluralName()),
		"table":               s.TableName(),
		"routeName":           s.RouteName(),
		"viewPath":            s.ViewPath(),
		"perPage":             strconv.Itoa(c.Config.PerPage),
	}
}

// render merges extra values over the common replacements and renders the
// named stub.
func (c *Context) render(stub string, extra map[string]string) (string, error) {
	data := c.replacements()
	for key, value := range extra {
		data[key] = value
	}
	return c.Renderer.Render(stub, data)
}

// write persists one artifact, creating missing parent directories. When
// the target exists and overwrite is off, nothing is written and the
// artifact reports Created=false.
func (c *Context) write(path, content string) (Artifact, error) {
	if _, err := os.Stat(path); err == nil && !c.Options.Force {
		return Artifact{Path: path, Content: content, Created: false}, nil
	}

	if err := c.ensureDir(filepath.Dir(path)); err != nil {
		return Artifact{}, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Artifact{}, fmt.Errorf("writing %s: %v", path, err)
	}

	if c.Tracker != nil {
		c.Tracker.Files = append(c.Tracker.Files, path)
	}
	return Artifact{Path: path, Content: content, Created: true}, nil
}

// ensureDir creates dir and any missing parents, recording each directory
// that did not exist before, outermost first.
func (c *Context) ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	var missing []string
	for cur := dir; ; cur = filepath.Dir(cur) {
		if _, err := os.Stat(cur); err == nil {
			break
		}
		missing = append(missing, cur)
		if parent := filepath.Dir(cur); parent == cur || parent == "." || parent == string(filepath.Separator) {
			break
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %v", dir, err)
	}

	if c.Tracker != nil {
		for i := len(missing) - 1; i >= 0; i-- {
			c.Tracker.Dirs = append(c.Tracker.Dirs, missing[i])
		}
	}
	return nil
}

// renderAndWrite is the common generator tail: render the stub with extras
// and persist it at path.
func (c *Context) renderAndWrite(stub, path string, extra map[string]string) (Artifact, error) {
	content, err := c.render(stub, extra)
	if err != nil {
		return Artifact{}, err
	}
	return c.write(path, content)
}

// eagerLoads builds the chained Preload calls for every relationship that
// maps to a concrete struct field. morphTo carries no concrete related
// type and is skipped.
func eagerLoads(s *schema.Schema) string {
	var b strings.Builder
	for _, rel := range s.Relationships {
		switch rel.Kind {
		case schema.BelongsTo, schema.HasOne, schema.HasMany, schema.BelongsToMany, schema.MorphMany:
			b.WriteString(`.Preload("` + schema.Pascal(rel.Accessor) + `")`)
		case schema.MorphTo:
			// no concrete type to preload
		}
	}
	return b.String()
}

// trashedFilter is the index-query modifier that switches the listing to
// soft-deleted records when ?trashed=1 is present.
func trashedFilter(enabled bool) string {
	if !enabled {
		return ""
	}
	return "\tif c.Query(\"trashed\") == \"1\" {\n" +
		"\t\tquery = query.Unscoped().Where(\"deleted_at IS NOT NULL\")\n" +
		"\t}"
}

// fieldName is the Go struct field name for a column.
func fieldName(name string) string {
	return schema.Pascal(name)
}

package stubs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

//go:embed templates/*.stub
var builtin embed.FS

// Placeholders are written as "[[ name ]]". The bracket delimiter keeps the
// scaffold's own substitution apart from the "{{ }}" template actions that
// appear inside emitted view artifacts.
var placeholderPattern = regexp.MustCompile(`\[\[ ([A-Za-z][A-Za-z0-9_]*) \]\]`)

// MissingPlaceholderError reports a stub token with no supplied value. A
// template referencing an undefined key is a generation error, never left
// unresolved in the output.
type MissingPlaceholderError struct {
	Stub string
	Key  string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("stub %s references undefined placeholder %q", e.Stub, e.Key)
}

// Renderer loads named stubs and performs literal token substitution.
// Custom stubs in the override directory take precedence over the embedded
// defaults of the same name.
type Renderer struct {
	overrideDir string
}

func NewRenderer(overrideDir string) *Renderer {
	return &Renderer{overrideDir: overrideDir}
}

func (r *Renderer) load(name string) (string, error) {
	if r.overrideDir != "" {
		custom := filepath.Join(r.overrideDir, name)
		if data, err := os.ReadFile(custom); err == nil {
			return string(data), nil
		}
	}

	data, err := builtin.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("loading stub %s: %v", name, err)
	}
	return string(data), nil
}

// Render loads the named stub and substitutes every "[[ key ]]" token with
// the corresponding value. Every token in the stub must have a value.
func (r *Renderer) Render(name string, data map[string]string) (string, error) {
	content, err := r.load(name)
	if err != nil {
		return "", err
	}

	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := data[match[1]]; !ok {
			return "", &MissingPlaceholderError{Stub: name, Key: match[1]}
		}
	}

	for key, value := range data {
		content = strings.ReplaceAll(content, "[[ "+key+" ]]", value)
	}

	return content, nil
}

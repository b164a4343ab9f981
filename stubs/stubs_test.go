package stubs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesTokens(t *testing.T) {
	r := NewRenderer("")
	out, err := r.Render("seeder.stub", map[string]string{
		"module":      "example.com/app",
		"model":       "Post",
		"modelPlural": "Posts",
		"table":       "posts",
		"count":       "10",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "func SeedPosts(db *gorm.DB)")
	assert.Contains(t, out, `"example.com/app/internal/factories"`)
	assert.NotContains(t, out, "[[ ")
}

func TestRenderMissingPlaceholder(t *testing.T) {
	r := NewRenderer("")
	_, err := r.Render("seeder.stub", map[string]string{"model": "Post"})
	require.Error(t, err)

	var missing *MissingPlaceholderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "seeder.stub", missing.Stub)
}

func TestRenderUnknownStub(t *testing.T) {
	r := NewRenderer("")
	_, err := r.Render("nope.stub", nil)
	assert.Error(t, err)
}

func TestOverrideDirTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	custom := "custom [[ model ]] stub\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seeder.stub"), []byte(custom), 0o644))

	r := NewRenderer(dir)
	out, err := r.Render("seeder.stub", map[string]string{"model": "Post"})
	require.NoError(t, err)
	assert.Equal(t, "custom Post stub\n", out)
}

func TestTemplateActionsLeftAlone(t *testing.T) {
	dir := t.TempDir()
	content := "{{ if .error }}[[ model ]]{{ end }}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "view.stub"), []byte(content), 0o644))

	r := NewRenderer(dir)
	out, err := r.Render("view.stub", map[string]string{"model": "Post"})
	require.NoError(t, err)
	assert.Equal(t, "{{ if .error }}Post{{ end }}\n", out)
}

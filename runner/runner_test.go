package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/loader"
	"github.com/ridoystarlord/crafto/schema"
	"github.com/ridoystarlord/crafto/stubs"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Module = "example.com/app"
	return cfg
}

func modelSpec(name string, opts config.Options) loader.ModelSpec {
	s := schema.New(name)
	s.AddColumn(schema.Column{Name: "title", Type: schema.TypeString, Length: 255})
	s.AddColumn(schema.Column{Name: "body", Type: schema.TypeText, Nullable: true})
	return loader.ModelSpec{Schema: s, Options: opts}
}

func TestRunWritesAPIArtifacts(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg)
	require.Equal(t, StateIdle, r.State())

	written, err := r.Run(modelSpec("Post", config.Options{Profile: config.ProfileAPI}))
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, r.State())
	assert.Greater(t, written, 0)

	for _, rel := range []string{
		"internal/models/post.go",
		"internal/requests/store_post_request.go",
		"internal/requests/update_post_request.go",
		"routes/api.go",
	} {
		_, statErr := os.Stat(filepath.Join(cfg.OutputDir, rel))
		assert.NoError(t, statErr, rel)
	}
}

func TestRunSkipsExistingFiles(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg)
	spec := modelSpec("Post", config.Options{Profile: config.ProfileAPI})

	first, err := r.Run(spec)
	require.NoError(t, err)
	require.Greater(t, first, 0)

	again, err := r.Run(spec)
	require.NoError(t, err)
	assert.Zero(t, again, "every target already exists")
	assert.Equal(t, StateCompleted, r.State())
}

func TestRunRollsBackOnFailure(t *testing.T) {
	cfg := testConfig(t)

	// An override stub with an undefined placeholder makes the route
	// generator, last in the API sequence, fail after everything else has
	// been written.
	cfg.StubDir = t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.StubDir, "routes.api.stub"),
		[]byte("package routes\n\n[[ undefinedToken ]]\n"),
		0o644,
	))

	r := New(cfg)
	written, err := r.Run(modelSpec("Post", config.Options{Profile: config.ProfileAPI}))

	require.Error(t, err)
	assert.Zero(t, written)
	assert.Equal(t, StateFailed, r.State())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "route", genErr.Generator)

	var missing *stubs.MissingPlaceholderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "undefinedToken", missing.Key)

	entries, readErr := os.ReadDir(cfg.OutputDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "every file and directory the run created is removed")
}

func TestRunBatchAbortsButKeepsEarlierModels(t *testing.T) {
	cfg := testConfig(t)

	// A directory squatting on the second model's target path makes its
	// very first write fail.
	blocker := filepath.Join(cfg.OutputDir, "internal/models/comment.go")
	require.NoError(t, os.MkdirAll(blocker, 0o755))

	r := New(cfg)
	opts := config.Options{Profile: config.ProfileAPI, Force: true}
	total, err := r.RunBatch([]loader.ModelSpec{
		modelSpec("Post", opts),
		modelSpec("Comment", opts),
		modelSpec("Tag", opts),
	})

	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "model", genErr.Generator)

	assert.Greater(t, total, 0, "the first model's count is kept")
	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "internal/models/post.go"))
	assert.NoError(t, statErr, "earlier models are not undone")
	_, statErr = os.Stat(filepath.Join(cfg.OutputDir, "internal/models/tag.go"))
	assert.True(t, os.IsNotExist(statErr), "later models are never attempted")
}

func TestRunBatchTotals(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg)
	opts := config.Options{Profile: config.ProfileAPI}

	first, err := r.Run(modelSpec("Post", opts))
	require.NoError(t, err)

	total, err := r.RunBatch([]loader.ModelSpec{
		modelSpec("Author", opts),
		modelSpec("Comment", opts),
	})
	require.NoError(t, err)
	assert.Greater(t, total, first, "two models write more than one")
}

func generatorNames(opts config.Options) []string {
	var names []string
	for _, gen := range sequence(opts) {
		names = append(names, gen.Name())
	}
	return names
}

func TestSequencePerOptions(t *testing.T) {
	assert.Equal(t,
		[]string{"model", "handler", "request", "policy", "resource", "route"},
		generatorNames(config.Options{Profile: config.ProfileAPI}))

	assert.Equal(t,
		[]string{"model", "handler", "request", "policy", "view", "route", "layout"},
		generatorNames(config.Options{Profile: config.ProfileWeb}))

	assert.Equal(t,
		[]string{"model", "request", "policy", "component", "route", "layout"},
		generatorNames(config.Options{Profile: config.ProfileComponent}))

	assert.Equal(t,
		[]string{"model", "handler", "view", "route", "layout"},
		generatorNames(config.Options{Profile: config.ProfileWeb, NoRequests: true, NoPolicy: true}))

	assert.Equal(t,
		[]string{
			"model", "handler", "request", "policy", "resource",
			"migration", "factory", "seeder", "test", "route",
		},
		generatorNames(config.Options{Profile: config.ProfileAPI, All: true}))

	assert.Equal(t,
		[]string{"model", "handler", "request", "policy", "resource", "factory", "test", "route"},
		generatorNames(config.Options{Profile: config.ProfileAPI, Tests: true}))
}

package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/introspect"
	"github.com/ridoystarlord/crafto/schema"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaults() config.Options {
	return config.Options{Profile: config.ProfileBoth, CSS: config.CSSTailwind}
}

func TestLoadFileSingleModel(t *testing.T) {
	path := writeConfig(t, `
name: Post
fields:
  - name: title
    type: string
    unique: true
  - name: body
    type: txt
    nullable: true
  - name: user_id
options:
  type: api
  soft_deletes: true
`)

	specs, err := LoadFile(path, defaults())
	require.NoError(t, err)
	require.Len(t, specs, 1)

	s := specs[0].Schema
	assert.Equal(t, "Post", s.ModelName)
	require.Len(t, s.Columns, 3)

	assert.Equal(t, schema.TypeString, s.Columns[0].Type)
	assert.True(t, s.Columns[0].Unique)
	assert.Equal(t, schema.DefaultStringLength, s.Columns[0].Length)

	assert.Equal(t, schema.TypeText, s.Columns[1].Type)
	assert.True(t, s.Columns[1].Nullable)

	assert.True(t, s.Columns[2].ForeignKey)
	require.Len(t, s.Relationships, 1)
	assert.Equal(t, schema.BelongsTo, s.Relationships[0].Kind)
	assert.Equal(t, "User", s.Relationships[0].RelatedModel)

	assert.Equal(t, config.ProfileAPI, specs[0].Options.Profile)
	assert.True(t, specs[0].Options.SoftDeletes)
	assert.Equal(t, config.CSSTailwind, specs[0].Options.CSS)
}

func TestLoadFileBatchOverridesOptionsPerModel(t *testing.T) {
	path := writeConfig(t, `
options:
  type: web
  soft_deletes: true
models:
  - name: Post
    fields:
      - name: title
  - name: Comment
    fields:
      - name: body
        type: text
    options:
      type: api
      soft_deletes: false
`)

	specs, err := LoadFile(path, defaults())
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, config.ProfileWeb, specs[0].Options.Profile)
	assert.True(t, specs[0].Options.SoftDeletes)

	assert.Equal(t, config.ProfileAPI, specs[1].Options.Profile)
	assert.False(t, specs[1].Options.SoftDeletes)
}

func TestLoadFileRelationships(t *testing.T) {
	path := writeConfig(t, `
name: Post
fields:
  - name: title
relationships:
  - type: belongsTo
    model: user
    nullable: true
  - type: hasMany
    model: Comment
  - type: belongsToMany
    model: Tag
    pivot: post_tag
  - type: hasOne
    model: Meta
    method: metadata
`)

	specs, err := LoadFile(path, defaults())
	require.NoError(t, err)

	s := specs[0].Schema
	require.True(t, s.HasColumn("user_id"))
	var fk schema.Column
	for _, col := range s.Columns {
		if col.Name == "user_id" {
			fk = col
		}
	}
	assert.True(t, fk.ForeignKey)
	assert.True(t, fk.Nullable)

	require.Len(t, s.Relationships, 4)
	assert.Equal(t, "user", s.Relationships[0].Accessor)
	assert.Equal(t, "user_id", s.Relationships[0].ForeignKey)
	assert.Equal(t, "comments", s.Relationships[1].Accessor)
	assert.Equal(t, "tags", s.Relationships[2].Accessor)
	assert.Equal(t, "post_tag", s.Relationships[2].PivotTable)
	assert.Equal(t, "metadata", s.Relationships[3].Accessor)
}

func TestLoadFileMalformed(t *testing.T) {
	cases := map[string]string{
		"not yaml":         "models: [unterminated",
		"missing name":     "fields:\n  - name: title\n",
		"nameless entry":   "models:\n  - fields:\n      - name: title\n",
		"bad profile":      "name: Post\noptions:\n  type: desktop\n",
		"bad css":          "name: Post\noptions:\n  css: bulma\n",
		"bad relationship": "name: Post\nrelationships:\n  - type: linkedTo\n    model: User\n",
		"nameless field":   "name: Post\nfields:\n  - type: string\n",
	}
	for label, content := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, content), defaults())
			require.ErrorIs(t, err, ErrMalformedConfig)
		})
	}
}

func TestResolveFieldSpec(t *testing.T) {
	specs, err := Resolve(context.Background(), Input{
		ModelName: "Post",
		FieldSpec: "title:string:unique, body:text",
		Options:   defaults(),
	}, nil)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Len(t, specs[0].Schema.Columns, 2)
	assert.Equal(t, "title", specs[0].Schema.Columns[0].Name)
}

func TestResolveRequiresModelName(t *testing.T) {
	_, err := Resolve(context.Background(), Input{Options: defaults()}, nil)
	require.ErrorIs(t, err, ErrMalformedConfig)
}

func TestResolveConfigPathWins(t *testing.T) {
	path := writeConfig(t, "name: Widget\nfields:\n  - name: label\n")
	specs, err := Resolve(context.Background(), Input{ConfigPath: path, Options: defaults()}, nil)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Widget", specs[0].Schema.ModelName)
}

type fakeCatalog struct {
	tables map[string][]introspect.ColumnInfo
}

func (f *fakeCatalog) HasTable(_ context.Context, table string) (bool, error) {
	_, ok := f.tables[table]
	return ok, nil
}

func (f *fakeCatalog) Columns(_ context.Context, table string) ([]introspect.ColumnInfo, error) {
	return f.tables[table], nil
}

func TestResolveFromTable(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]introspect.ColumnInfo{
		"posts": {
			{Name: "id", DataType: "bigint", AutoIncrement: true},
			{Name: "title", DataType: "text"},
			{Name: "deleted_at", DataType: "timestamp", Nullable: true},
		},
	}}

	opts := defaults()
	opts.Table = "posts"
	specs, err := Resolve(context.Background(), Input{ModelName: "Post", Options: opts}, catalog)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Len(t, specs[0].Schema.Columns, 3)
	assert.True(t, specs[0].Options.SoftDeletes, "deleted_at column turns soft deletes on")
}

func TestResolveMissingTableFallsBackToEmptySchema(t *testing.T) {
	opts := defaults()
	opts.Table = "nope"
	specs, err := Resolve(context.Background(), Input{ModelName: "Post", Options: opts}, &fakeCatalog{})
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Empty(t, specs[0].Schema.Columns)
}

func TestResolveTableWithoutCatalog(t *testing.T) {
	opts := defaults()
	opts.Table = "posts"
	_, err := Resolve(context.Background(), Input{ModelName: "Post", Options: opts}, nil)
	require.Error(t, err)
}

func TestResolveRelationFlags(t *testing.T) {
	specs, err := Resolve(context.Background(), Input{
		ModelName:     "Post",
		FieldSpec:     "title:string",
		Options:       defaults(),
		BelongsTo:     []string{"user"},
		HasMany:       []string{"comment"},
		BelongsToMany: []string{"tag"},
	}, nil)
	require.NoError(t, err)

	s := specs[0].Schema
	assert.True(t, s.HasColumn("user_id"))
	require.Len(t, s.Relationships, 3)
	assert.Equal(t, schema.BelongsTo, s.Relationships[0].Kind)
	assert.Equal(t, schema.HasMany, s.Relationships[1].Kind)
	assert.Equal(t, "comments", s.Relationships[1].Accessor)
	assert.Equal(t, schema.BelongsToMany, s.Relationships[2].Kind)
	assert.Equal(t, "post_tag", s.Relationships[2].PivotTable)
}

func TestPivotTableAlphabetical(t *testing.T) {
	assert.Equal(t, "post_tag", pivotTable("Tag", "Post"))
	assert.Equal(t, "post_tag", pivotTable("Post", "Tag"))
	assert.Equal(t, "blog_post_category", pivotTable("BlogPost", "Category"))
}

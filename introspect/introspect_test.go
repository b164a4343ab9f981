package introspect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crafto/schema"
)

type fakeCatalog struct {
	tables map[string][]ColumnInfo
}

func (f *fakeCatalog) HasTable(_ context.Context, table string) (bool, error) {
	_, ok := f.tables[table]
	return ok, nil
}

func (f *fakeCatalog) Columns(_ context.Context, table string) ([]ColumnInfo, error) {
	return f.tables[table], nil
}

func strPtr(s string) *string { return &s }

func TestIntrospectMapsStorageTypes(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{
		"posts": {
			{Name: "id", DataType: "bigint", AutoIncrement: true},
			{Name: "title", DataType: "character varying", Length: 120},
			{Name: "body", DataType: "text"},
			{Name: "views", DataType: "integer"},
			{Name: "rating", DataType: "numeric"},
			{Name: "published", DataType: "boolean"},
			{Name: "meta", DataType: "jsonb", Nullable: true},
			{Name: "created_at", DataType: "timestamp with time zone"},
		},
	}}

	result, err := New(catalog).Introspect(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, result.Columns, 8)

	assert.Equal(t, schema.TypeBigInteger, result.Columns[0].Type)
	assert.True(t, result.Columns[0].Primary)
	assert.Equal(t, schema.TypeString, result.Columns[1].Type)
	assert.Equal(t, 120, result.Columns[1].Length)
	assert.Equal(t, schema.TypeText, result.Columns[2].Type)
	assert.Equal(t, schema.TypeInteger, result.Columns[3].Type)
	assert.Equal(t, schema.TypeDecimal, result.Columns[4].Type)
	assert.Equal(t, schema.TypeBoolean, result.Columns[5].Type)
	assert.Equal(t, schema.TypeJSON, result.Columns[6].Type)
	assert.Equal(t, schema.TypeDateTimeTz, result.Columns[7].Type)
}

func TestIntrospectUnmappedTypeDefaultsToString(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{
		"places": {{Name: "location", DataType: "geography"}},
	}}

	result, err := New(catalog).Introspect(context.Background(), "places")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeString, result.Columns[0].Type)
}

func TestIntrospectForeignKeyByNameConvention(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{
		"posts": {
			{Name: "user_id", DataType: "bigint"},
			{Name: "title", DataType: "text"},
		},
	}}

	result, err := New(catalog).Introspect(context.Background(), "posts")
	require.NoError(t, err)

	assert.True(t, result.Columns[0].ForeignKey)
	assert.True(t, result.Columns[0].Unsigned)
	require.Len(t, result.Relationships, 1)
	assert.Equal(t, schema.BelongsTo, result.Relationships[0].Kind)
	assert.Equal(t, "User", result.Relationships[0].RelatedModel)
	assert.Equal(t, "user", result.Relationships[0].Accessor)
}

func TestIntrospectConventionalUniqueNames(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{
		"users": {
			{Name: "email", DataType: "text"},
			{Name: "slug", DataType: "text"},
			{Name: "name", DataType: "text"},
		},
	}}

	result, err := New(catalog).Introspect(context.Background(), "users")
	require.NoError(t, err)

	assert.True(t, result.Columns[0].Unique)
	assert.True(t, result.Columns[1].Unique)
	assert.False(t, result.Columns[2].Unique)
}

func TestIntrospectTableNotFound(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{}}
	_, err := New(catalog).Introspect(context.Background(), "missing")
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestIntrospectSoftDeleteAndTimestamps(t *testing.T) {
	catalog := &fakeCatalog{tables: map[string][]ColumnInfo{
		"posts": {
			{Name: "deleted_at", DataType: "timestamp", Nullable: true, Default: strPtr("NULL")},
			{Name: "created_at", DataType: "timestamp"},
			{Name: "updated_at", DataType: "timestamp"},
		},
	}}

	result, err := New(catalog).Introspect(context.Background(), "posts")
	require.NoError(t, err)
	assert.True(t, result.HasSoftDeleteColumn())
	assert.True(t, result.HasTimestampColumns())
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColumnPreservesOrder(t *testing.T) {
	s := New("Post")
	s.AddColumn(Column{Name: "title", Type: TypeString})
	s.AddColumn(Column{Name: "body", Type: TypeText})
	s.AddColumn(Column{Name: "is_active", Type: TypeBoolean})

	require.Len(t, s.Columns, 3)
	assert.Equal(t, "title", s.Columns[0].Name)
	assert.Equal(t, "body", s.Columns[1].Name)
	assert.Equal(t, "is_active", s.Columns[2].Name)
}

func TestAddColumnReplacesInPlace(t *testing.T) {
	s := New("Post")
	s.AddColumn(Column{Name: "title", Type: TypeString})
	s.AddColumn(Column{Name: "body", Type: TypeText})
	s.AddColumn(Column{Name: "title", Type: TypeText, Nullable: true})

	require.Len(t, s.Columns, 2)
	assert.Equal(t, "title", s.Columns[0].Name)
	assert.Equal(t, TypeText, s.Columns[0].Type)
	assert.True(t, s.Columns[0].Nullable)
}

func TestBelongsToDeduplication(t *testing.T) {
	s := New("Post")
	s.AddRelationship(Relationship{Kind: BelongsTo, RelatedModel: "User", Accessor: "user", ForeignKey: "user_id"})
	s.AddRelationship(Relationship{Kind: BelongsTo, RelatedModel: "User", Accessor: "author", ForeignKey: "author_id"})
	s.AddRelationship(Relationship{Kind: HasMany, RelatedModel: "Comment", Accessor: "comments"})

	require.Len(t, s.Relationships, 2)
	assert.Equal(t, "user", s.Relationships[0].Accessor)
	assert.Equal(t, HasMany, s.Relationships[1].Kind)
}

func TestHasManyNotDeduplicated(t *testing.T) {
	s := New("User")
	s.AddRelationship(Relationship{Kind: HasMany, RelatedModel: "Post", Accessor: "posts"})
	s.AddRelationship(Relationship{Kind: HasMany, RelatedModel: "Post", Accessor: "drafts"})

	assert.Len(t, s.Relationships, 2)
}

func TestFillableColumns(t *testing.T) {
	s := New("User")
	s.AddColumn(Column{Name: "id", Type: TypeBigInteger, AutoIncrement: true})
	s.AddColumn(Column{Name: "name", Type: TypeString})
	s.AddColumn(Column{Name: "email", Type: TypeString, Unique: true})
	s.AddColumn(Column{Name: "created_at", Type: TypeDateTime})
	s.AddColumn(Column{Name: "deleted_at", Type: TypeDateTime, Nullable: true})

	fillable := s.FillableColumns()
	require.Len(t, fillable, 2)
	assert.Equal(t, "name", fillable[0].Name)
	assert.Equal(t, "email", fillable[1].Name)
}

func TestDisplayColumnsSkipSensitive(t *testing.T) {
	s := New("User")
	s.AddColumn(Column{Name: "name", Type: TypeString})
	s.AddColumn(Column{Name: "password", Type: TypeString})
	s.AddColumn(Column{Name: "remember_token", Type: TypeString})

	display := s.DisplayColumns()
	require.Len(t, display, 1)
	assert.Equal(t, "name", display[0].Name)
}

func TestRequiredColumns(t *testing.T) {
	def := "draft"
	s := New("Post")
	s.AddColumn(Column{Name: "title", Type: TypeString})
	s.AddColumn(Column{Name: "summary", Type: TypeString, Nullable: true})
	s.AddColumn(Column{Name: "status", Type: TypeString, Default: &def})

	assert.Equal(t, []string{"title"}, s.RequiredColumns())
}

func TestDerivedNames(t *testing.T) {
	s := New("BlogPost")
	assert.Equal(t, "blog_posts", s.TableName())
	assert.Equal(t, "blogPost", s.Variable())
	assert.Equal(t, "blogPosts", s.VariablePlural())
	assert.Equal(t, "BlogPosts", s.PluralName())
	assert.Equal(t, "blog-posts", s.RouteName())
	assert.Equal(t, "blog_post", s.SnakeName())
}

func TestSoftDeleteAndTimestampDetection(t *testing.T) {
	s := New("Post")
	assert.False(t, s.HasSoftDeleteColumn())
	assert.False(t, s.HasTimestampColumns())

	s.AddColumn(Column{Name: "deleted_at", Type: TypeDateTime, Nullable: true})
	s.AddColumn(Column{Name: "created_at", Type: TypeDateTime})
	s.AddColumn(Column{Name: "updated_at", Type: TypeDateTime})
	assert.True(t, s.HasSoftDeleteColumn())
	assert.True(t, s.HasTimestampColumns())
}

func TestColumnRelatedNames(t *testing.T) {
	col := Column{Name: "user_id", ForeignKey: true}
	assert.Equal(t, "User", col.RelatedModel())
	assert.Equal(t, "users", col.RelatedTable())
}

func TestValidKind(t *testing.T) {
	for _, kind := range Kinds {
		assert.True(t, ValidKind(kind))
	}
	assert.False(t, ValidKind("embedsMany"))
}

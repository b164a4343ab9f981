package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascal(t *testing.T) {
	assert.Equal(t, "User", Pascal("user"))
	assert.Equal(t, "UserProfile", Pascal("user_profile"))
	assert.Equal(t, "BlogPost", Pascal("BlogPost"))
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "user", Camel("User"))
	assert.Equal(t, "userProfile", Camel("UserProfile"))
	assert.Equal(t, "blogPost", Camel("blog_post"))
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "user_profile", Snake("UserProfile"))
	assert.Equal(t, "post", Snake("Post"))
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "blog-posts", Kebab("BlogPosts"))
	assert.Equal(t, "posts", Kebab("Posts"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Posts", Plural("Post"))
	assert.Equal(t, "Categories", Plural("Category"))
	assert.Equal(t, "People", Plural("Person"))
	assert.Equal(t, "people", Plural("person"))
	assert.Equal(t, "BlogPosts", Plural("BlogPost"))
	assert.Equal(t, "blog_posts", Plural("blog_post"))
	assert.Equal(t, "People", Plural("People"))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "Post", Singular("Posts"))
	assert.Equal(t, "Category", Singular("Categories"))
	assert.Equal(t, "Person", Singular("People"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Is Active", Humanize("is_active"))
	assert.Equal(t, "Blog Posts", Humanize("blog-posts"))
}

func TestTrimIDSuffix(t *testing.T) {
	assert.Equal(t, "user", TrimIDSuffix("user_id"))
	assert.Equal(t, "title", TrimIDSuffix("title"))
}

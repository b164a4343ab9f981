package schema

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Name transforms shared by every generator. All derived naming (tables,
// routes, variables, view paths) funnels through these so the conventions
// stay in one place.

// Pascal converts a name to PascalCase: "user_profile" -> "UserProfile".
func Pascal(name string) string {
	return inflect.Camelize(inflect.Underscore(name))
}

// Camel converts a name to camelCase: "UserProfile" -> "userProfile".
func Camel(name string) string {
	return inflect.CamelizeDownFirst(inflect.Underscore(name))
}

// Snake converts a name to snake_case: "UserProfile" -> "user_profile".
func Snake(name string) string {
	return inflect.Underscore(name)
}

// Kebab converts a name to kebab-case: "BlogPost" -> "blog-post".
func Kebab(name string) string {
	return inflect.Dasherize(inflect.Underscore(name))
}

// Plural pluralizes a name, preserving its casing: "Category" ->
// "Categories", "blog_post" -> "blog_posts", "Person" -> "People".
// Inflection runs on the lowercased form because the irregular-word table
// only matches lowercase.
func Plural(name string) string {
	return recase(name, inflect.Pluralize(strings.ToLower(name)))
}

// Singular is the inverse of Plural.
func Singular(name string) string {
	return recase(name, inflect.Singularize(strings.ToLower(name)))
}

// recase transplants a lowercase inflection back onto the original
// identifier, keeping the casing of the unchanged prefix.
func recase(name, inflected string) string {
	lower := strings.ToLower(name)
	if inflected == lower {
		return name
	}
	i := 0
	for i < len(lower) && i < len(inflected) && lower[i] == inflected[i] {
		i++
	}
	return name[:i] + inflected[i:]
}

// Humanize turns an identifier into a title label: "is_active" -> "Is Active".
func Humanize(name string) string {
	return inflect.Titleize(strings.ReplaceAll(name, "-", "_"))
}

// TrimIDSuffix strips a trailing "_id" from a foreign-key column name.
func TrimIDSuffix(name string) string {
	return strings.TrimSuffix(name, "_id")
}

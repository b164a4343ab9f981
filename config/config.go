package config

import "path/filepath"

// Profile selects which artifact families get generated.
type Profile string

const (
	ProfileAPI       Profile = "api"
	ProfileWeb       Profile = "web"
	ProfileBoth      Profile = "both"
	ProfileComponent Profile = "component"
)

// ValidProfile reports whether p is a known output profile.
func ValidProfile(p Profile) bool {
	switch p {
	case ProfileAPI, ProfileWeb, ProfileBoth, ProfileComponent:
		return true
	}
	return false
}

// CSS selects the markup dialect used in generated views.
type CSS string

const (
	CSSTailwind  CSS = "tailwind"
	CSSBootstrap CSS = "bootstrap"
)

func ValidCSS(c CSS) bool {
	return c == CSSTailwind || c == CSSBootstrap
}

// Options is the resolved per-run configuration. It is immutable once the
// runner starts emitting artifacts and is shared read-only by all
// generators.
type Options struct {
	Profile     Profile
	CSS         CSS
	Force       bool
	SoftDeletes bool
	All         bool
	APIResource bool
	NoPolicy    bool
	NoRequests  bool
	Tests       bool
	AddToNav    bool
	Table       string // explicit table for introspection
	SeedCount   int
}

// WantsAPI reports whether API-side artifacts are part of the run.
func (o Options) WantsAPI() bool {
	return o.Profile == ProfileAPI || o.Profile == ProfileBoth
}

// WantsWeb reports whether web-side artifacts are part of the run.
func (o Options) WantsWeb() bool {
	return o.Profile == ProfileWeb || o.Profile == ProfileBoth
}

// WantsResource reports whether the serialization resource gets generated.
func (o Options) WantsResource() bool {
	return o.APIResource || o.WantsAPI()
}

// Config holds the generation-wide settings: where artifacts land inside
// the target application and which defaults apply. It is built once by the
// command layer and never looked up ad hoc from inside generators.
type Config struct {
	// OutputDir is the root of the target application.
	OutputDir string
	// Module is the target application's module path, used for import
	// statements inside emitted Go files.
	Module string
	// StubDir overrides the embedded templates when set; a stub found
	// there takes precedence over the built-in of the same name.
	StubDir string

	DefaultProfile Profile
	DefaultCSS     CSS
	PerPage        int
	SeedCount      int

	Paths Paths
}

// Paths are the per-artifact-kind target directories, relative to
// OutputDir.
type Paths struct {
	Models      string
	Handlers    string
	APIHandlers string
	Requests    string
	Policies    string
	Resources   string
	Migrations  string
	Factories   string
	Seeders     string
	Views       string
	Components  string
	Routes      string
	Tests       string
	Layouts     string
}

// Default returns the conventional layout for a generated application.
func Default() Config {
	return Config{
		OutputDir:      ".",
		Module:         "app",
		DefaultProfile: ProfileBoth,
		DefaultCSS:     CSSTailwind,
		PerPage:        15,
		SeedCount:      10,
		Paths: Paths{
			Models:      "internal/models",
			Handlers:    "internal/handlers",
			APIHandlers: "internal/handlers/api",
			Requests:    "internal/requests",
			Policies:    "internal/policies",
			Resources:   "internal/resources",
			Migrations:  "migrations",
			Factories:   "internal/factories",
			Seeders:     "internal/seeders",
			Views:       "web/templates",
			Components:  "internal/components",
			Routes:      "routes",
			Tests:       "tests",
			Layouts:     "web/templates/layouts",
		},
	}
}

// Join resolves a configured path against the output directory.
func (c Config) Join(parts ...string) string {
	return filepath.Join(append([]string{c.OutputDir}, parts...)...)
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProfile(t *testing.T) {
	for _, p := range []Profile{ProfileAPI, ProfileWeb, ProfileBoth, ProfileComponent} {
		assert.True(t, ValidProfile(p), string(p))
	}
	assert.False(t, ValidProfile("desktop"))
	assert.False(t, ValidProfile(""))
}

func TestValidCSS(t *testing.T) {
	assert.True(t, ValidCSS(CSSTailwind))
	assert.True(t, ValidCSS(CSSBootstrap))
	assert.False(t, ValidCSS("bulma"))
}

func TestProfileSelectors(t *testing.T) {
	cases := []struct {
		profile  Profile
		api, web bool
	}{
		{ProfileAPI, true, false},
		{ProfileWeb, false, true},
		{ProfileBoth, true, true},
		{ProfileComponent, false, false},
	}
	for _, tc := range cases {
		opts := Options{Profile: tc.profile}
		assert.Equal(t, tc.api, opts.WantsAPI(), string(tc.profile))
		assert.Equal(t, tc.web, opts.WantsWeb(), string(tc.profile))
	}
}

func TestWantsResource(t *testing.T) {
	assert.True(t, Options{Profile: ProfileAPI}.WantsResource())
	assert.True(t, Options{Profile: ProfileBoth}.WantsResource())
	assert.True(t, Options{Profile: ProfileWeb, APIResource: true}.WantsResource())
	assert.False(t, Options{Profile: ProfileWeb}.WantsResource())
	assert.False(t, Options{Profile: ProfileComponent}.WantsResource())
}

func TestDefaultLayout(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ProfileBoth, cfg.DefaultProfile)
	assert.Equal(t, CSSTailwind, cfg.DefaultCSS)
	assert.Equal(t, 15, cfg.PerPage)
	assert.Equal(t, "internal/models", cfg.Paths.Models)
	assert.Equal(t, "web/templates/layouts", cfg.Paths.Layouts)
}

func TestJoin(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "/tmp/app"
	assert.Equal(t, filepath.Join("/tmp/app", "internal/models", "post.go"), cfg.Join(cfg.Paths.Models, "post.go"))
}

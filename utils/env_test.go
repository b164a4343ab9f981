package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	url, err := GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/app", url)
}

func TestGetDatabaseURLMissing(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := GetDatabaseURL()
	require.Error(t, err)
}

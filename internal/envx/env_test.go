package envx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Overlay(t *testing.T) {
	src := NewFromMap("FRESHIFY_", map[string]string{
		"FRESHIFY_DATABASE_DSN":       "postgres://x",
		"FRESHIFY_IMAGE_URL_TTL":      "90s",
		"FRESHIFY_DELETE_ON_COMPLETE": "true",
		"FRESHIFY_REMOTE_RATE":        "2.5",
		"FRESHIFY_REMOTE_BURST":       "4",
		"FRESHIFY_EMPTY":              "",
	})

	dsn := "default"
	ttl := time.Minute
	del := false
	rate := 1.0
	burst := 1
	empty := "keep"

	src.String("DATABASE_DSN", &dsn)
	src.String("EMPTY", &empty)
	require.NoError(t, src.Duration("IMAGE_URL_TTL", &ttl))
	require.NoError(t, src.Bool("DELETE_ON_COMPLETE", &del))
	require.NoError(t, src.Float("REMOTE_RATE", &rate))
	require.NoError(t, src.Int("REMOTE_BURST", &burst))

	assert.Equal(t, "postgres://x", dsn)
	assert.Equal(t, "keep", empty)
	assert.Equal(t, 90*time.Second, ttl)
	assert.True(t, del)
	assert.Equal(t, 2.5, rate)
	assert.Equal(t, 4, burst)
}

func TestSource_ParseErrors(t *testing.T) {
	src := NewFromMap("P_", map[string]string{"P_D": "soon", "P_B": "maybe", "P_F": "x", "P_I": "1.5"})

	var d time.Duration
	var b bool
	var f float64
	var i int

	err := src.Duration("D", &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env P_D")
	assert.Error(t, src.Bool("B", &b))
	assert.Error(t, src.Float("F", &f))
	assert.Error(t, src.Int("I", &i))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FRESHIFY_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FRESHIFY_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv("FRESHIFY_TEST_DOTENV"))
}

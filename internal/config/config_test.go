package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_TYPE", "")
	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "openai", c.APIType)
	assert.Equal(t, 20, c.QuestionCount)
	assert.Equal(t, 20, c.BatchSize)
	assert.InDelta(t, 0.7, c.Temperature, 1e-9)
	assert.Equal(t, 2000, c.MaxTokens)
	assert.Equal(t, 900, c.APITimeout)
	assert.Equal(t, "blue", c.ColorScheme)
	assert.Equal(t, "pdf", c.OutputDir)
	assert.Equal(t, "json", c.JSONDir)
	assert.Equal(t, "logos", c.LogoDir)
	require.NoError(t, c.Validate(false))
}

func TestEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_TYPE", "Ollama")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("QAPDF_OLLAMA_MODEL", "llama3.1")
	t.Setenv("DEFAULT_COLOR_SCHEME", "dark")
	t.Setenv("DEFAULT_API_TIMEOUT", "30")
	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "ollama", c.APIType)
	assert.Equal(t, "llama3.1", c.OllamaModel)
	assert.Equal(t, "dark", c.ColorScheme)
	require.NoError(t, c.Validate(true))

	p := c.Provider()
	assert.Equal(t, "ollama", p.Type)
	assert.Equal(t, 30*time.Second, p.Timeout)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_color_scheme: brand
author: Jo
fonts:
  mono: /fonts/mono.ttf
schemes:
  brand:
    primary: "#ff0000"
    background: "#000000"
`), 0o644))
	c, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/fonts/mono.ttf", c.Fonts.MonoPath)

	o := c.RenderOptions("Go")
	assert.Equal(t, "Go", o.Title)
	assert.Equal(t, "Jo", o.Author)
	assert.Equal(t, "brand", o.Scheme)
	require.Contains(t, o.Schemes, "brand")
	require.Contains(t, o.Schemes, "blue")
	assert.Equal(t, "#ff0000", o.Schemes["brand"].Primary)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("QAPDF_OPENAI_API_KEY", "")
	c, err := Load(New(), "")
	require.NoError(t, err)

	err = c.Validate(true)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	c.APIType = "gemini"
	c.BatchSize = 0
	c.Temperature = 3
	err = c.Validate(true)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "api_type")
	assert.Contains(t, err.Error(), "default_batch_size")
	assert.Contains(t, err.Error(), "default_temperature")

	assert.ErrorIs(t, c.Validate(false), ErrInvalid)
}

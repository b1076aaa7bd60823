package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestJSONOutput_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-events", Output: &buf})

	l.With(map[string]any{"request_id": "r-1", "": "skip"}).Info("evento creado", map[string]any{"id": "ev-1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "evento creado", entry["message"])
	assert.Equal(t, "pet-events", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "ev-1", entry["id"])
	assert.NotContains(t, entry, "")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Info("ignored", nil)
	l.Debug("ignored", nil)
	assert.Zero(t, buf.Len())

	l.Error("boom", map[string]any{"err": "x"})
	assert.True(t, strings.Contains(buf.String(), `"boom"`))
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatText, Output: &buf})

	l.Debug("hola", map[string]any{"k": "v"})
	out := buf.String()
	assert.Contains(t, out, "hola")
	assert.Contains(t, out, "k=v")
}

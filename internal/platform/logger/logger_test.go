package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestZeroLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "vetsoft", Output: &buf})

	log.With(map[string]any{"entity": "clients"}).Info("created", map[string]any{
		"id":  "c-1",
		"err": errors.New("boom"),
		"":    "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "created", entry["message"])
	assert.Equal(t, "vetsoft", entry["app"])
	assert.Equal(t, "clients", entry["entity"])
	assert.Equal(t, "c-1", entry["id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
}

func TestZeroLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	log.Info("hidden", nil)
	log.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	log.Warn("shown", nil)
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("nothing", nil)
}

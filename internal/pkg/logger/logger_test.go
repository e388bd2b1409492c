package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestJSONEncodingCarriesAppName(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("jyotish", &Config{Encoding: "json", Level: "info"}, &buf)
	log.Info("chart computed", "chart_id", "c1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "jyotish", line["app"])
	assert.Equal(t, "c1", line["chart_id"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("jyotish", &Config{Level: "info"}, &buf)
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestUnsupportedEncodingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewWithWriter("jyotish", &Config{Encoding: "xml"}, &bytes.Buffer{})
	})
}

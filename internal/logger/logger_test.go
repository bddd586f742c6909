package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONRecordsCarryComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, FormatJSON, zerolog.DebugLevel).With("session_id", "abc")

	log.Info("Session", "transcription saved", map[string]interface{}{"image": "a.jpg"})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "Session", record["component"])
	assert.Equal(t, "transcription saved", record["message"])
	assert.Equal(t, "a.jpg", record["image"])
	assert.Equal(t, "abc", record["session_id"])
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, FormatJSON, zerolog.WarnLevel)

	log.Debug("Session", "hidden", nil)
	log.Info("Session", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("Session", errors.New("disk full"), nil)
	assert.Contains(t, buf.String(), "disk full")
}

func TestConsoleFormatIsReadable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatConsole, zerolog.InfoLevel).Warning("Discovery", "argument skipped", nil)

	assert.Contains(t, buf.String(), "argument skipped")
	assert.NotContains(t, buf.String(), "{")
}

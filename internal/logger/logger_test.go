package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	resetLogger(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestSetOutput_ReturnsPrevious(t *testing.T) {
	resetLogger(t)

	var first, second bytes.Buffer
	SetOutput(&first)

	prev := SetOutput(&second)

	assert.Equal(t, &first, prev)
}

func TestLevels_WhenVerbose(t *testing.T) {
	resetLogger(t)

	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] fetch weather id=abc\n"},
		{"info", Info, "[INFO] fetch weather id=abc\n"},
		{"warn", Warn, "[WARN] fetch weather id=abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log("fetch %s id=%s", "weather", "abc")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Warn("test message")
	Section("Headlines")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Weather")

	assert.Equal(t, "\n=== Weather ===\n", buf.String())
}

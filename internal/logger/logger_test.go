package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLoggingSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("invisible %d", 1)
	Info("invisible %d", 2)
	Warn("invisible %d", 3)

	assert.Empty(t, buf.String())
}

func TestLoggingEmittedWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("loaded page %d", 2)
	Warn("walk aborted at page %d", 3)

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] loaded page 2")
	assert.Contains(t, out, "[WARN] walk aborted at page 3")
}

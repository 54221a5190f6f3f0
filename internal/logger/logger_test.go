package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseToggle(t *testing.T) {
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	Debug("query %q", "battery")
	Info("matched %d rules", 3)
	Warn("empty catalog")
	Section("Search Execution")

	out := buf.String()
	assert.Contains(t, out, `[DEBUG] query "battery"`)
	assert.Contains(t, out, "[INFO] matched 3 rules")
	assert.Contains(t, out, "[WARN] empty catalog")
	assert.Contains(t, out, "=== Search Execution ===")
}

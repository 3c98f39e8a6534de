package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	l := New(log.New(&buf, "", 0))

	l.LogInfo("loaded %d resorts", 3)
	l.LogWarnf("stay %d skipped", 2)
	l.LogErrorf("boom: %v", "bad")
	l.LogDebug("hidden")

	assert.Equal(t, "[Info]: loaded 3 resorts\n[Warn]: stay 2 skipped\n[Error]: boom: bad\n", buf.String())

	buf.Reset()
	l.SetDebug(true)
	l.LogDebug("visible %s", "now")

	assert.Equal(t, "[Debug]: visible now\n", buf.String())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.SetDebug(true)

	assert.NotPanics(t, func() {
		l.LogInfo("nothing")
		l.LogDebug("nothing")
	})
}

package logging_test

import (
	"bytes"
	"testing"

	"github.com/plus3/raycaster/logging"
	"github.com/stretchr/testify/assert"
)

func TestLevelsGoToTheirWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := logging.NewWithWriters("raycaster", false, &out, &errOut)

	logger.Infof("loaded %d textures", 3)
	logger.Warnf("Failed to load texture: %s", "sky.png")
	logger.Errorf("boom")
	logger.Debugf("hidden")

	assert.Contains(t, out.String(), "[raycaster] INFO: loaded 3 textures")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, errOut.String(), "WARN: Failed to load texture: sky.png")
	assert.Contains(t, errOut.String(), "ERROR: boom")
}

func TestDebugLines(t *testing.T) {
	var out bytes.Buffer
	logging.NewWithWriters("", true, &out, &out).Debugf("pose %.1f", 1.5)
	assert.Contains(t, out.String(), "DEBUG: pose 1.5")
	assert.NotContains(t, out.String(), "[")

	out.Reset()
	logging.Nop().Errorf("dropped")
	assert.Empty(t, out.String())
}

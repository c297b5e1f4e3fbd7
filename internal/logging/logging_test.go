package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/lunchsweeper/internal/config"
)

func TestSetupLevels(t *testing.T) {
	c := config.Default()
	c.Log.Level = "warn"

	log := logrus.New()
	require.NoError(t, Setup(log, c))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	c.Mode = "development"
	require.NoError(t, Setup(log, c))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	c.Log.Level = "loud"
	assert.Error(t, Setup(log, c))
}

func TestSetupFile(t *testing.T) {
	c := config.Default()
	c.Log.File = filepath.Join(t.TempDir(), "lunchsweeper.log")

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, Setup(log, c))
	log.WithField("difficulty", "easy").Info("new game")

	b, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"new game"`)
	assert.Contains(t, string(b), `"difficulty":"easy"`)
}

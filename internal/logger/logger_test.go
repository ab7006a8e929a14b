package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("clens", "info", false) })

	Init("clens-test", "debug", true)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	var buf bytes.Buffer
	Log.SetOutput(&buf)
	Log.WithField("entity", "truck").Info("created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "clens-test", entry["app"])
	assert.Equal(t, "truck", entry["entity"])
	assert.Equal(t, "created", entry["msg"])

	Init("clens-test", "nonsense", false)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

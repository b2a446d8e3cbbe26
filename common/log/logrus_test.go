package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestTaggedHook(t *testing.T) {
	var output bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&output)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger.AddHook(new(TaggedHook))

	logger.WithField("tag", "scan").Info("scan: ready")
	require.Contains(t, output.String(), `msg="[scan]: ready"`)
	require.NotContains(t, output.String(), "tag=")
}

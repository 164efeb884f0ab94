package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/workoutsheet/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("ERROR"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("Warning"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
}

type recordingTransport struct {
	events []*sentry.Event
}

func (t *recordingTransport) Flush(_ time.Duration) bool              { return true }
func (t *recordingTransport) FlushWithContext(_ context.Context) bool { return true }
func (t *recordingTransport) Configure(_ sentry.ClientOptions)        {}
func (t *recordingTransport) SendEvent(event *sentry.Event)           { t.events = append(t.events, event) }
func (t *recordingTransport) Close()                                  {}

func TestSentryHook_Fire(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)

	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	hook.hub = sentry.NewHub(client, sentry.NewScope())
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.AddHook(hook)
	logger.WithField("worksheet", "Week 1").Error("update set failed")
	logger.Warn("not forwarded")

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "Week 1", event.Extra["worksheet"])
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "update set failed", event.Exception[0].Value)
}

func TestNewLogWriter(t *testing.T) {
	assert.Equal(t, os.Stdout, newLogWriter(LoggerSetupParams{}))

	logPath := filepath.Join(t.TempDir(), "service")
	w := newLogWriter(LoggerSetupParams{LogFileName: logPath})
	fileWriter, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, logPath+".log", fileWriter.Filename)

	_, err := fileWriter.Write([]byte("set updated\n"))
	require.NoError(t, err)
	require.NoError(t, fileWriter.Close())
	content, err := os.ReadFile(logPath + ".log")
	require.NoError(t, err)
	assert.Equal(t, "set updated\n", string(content))

	w = newLogWriter(LoggerSetupParams{LogFileName: logPath + ".log", LogToStdout: true})
	combined, ok := w.(*pkg.CombinedWriter)
	require.True(t, ok)
	assert.Equal(t, 2, combined.Len())
}

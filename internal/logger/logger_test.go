package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	ctx := context.WithValue(context.Background(), UsernameKey, "recepcion")
	ctx = context.WithValue(ctx, ClubIDKey, "club-1")
	ctx = context.WithValue(ctx, RequestIDKey, "req-9")

	WithContext(ctx).WithField("window", "manana").Warn("no active window")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recepcion", entry["user"])
	assert.Equal(t, "club-1", entry["club_id"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "manana", entry["window"])
	assert.Equal(t, "warning", entry["level"])
}

func TestWithContextDefaults(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "unknown", l.Data["user"])
	_, hasClub := l.Data["club_id"]
	assert.False(t, hasClub)
}

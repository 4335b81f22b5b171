package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestCommonLogger(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	buf := new(bytes.Buffer)
	l, err := CommonLogger(NewConfig("tests").WithWriter(buf))
	require.NoError(t, err)

	l.Debug("hello", slog.String(KeyGuildID, "123"))

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "hello", got["msg"])
	require.Equal(t, "tests", got[KeyApp])
	require.Equal(t, "123", got[KeyGuildID])
}

func TestNewConfig_BadLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	t.Setenv(EnvLogFormat, "TEXT")

	c := NewConfig("tests")
	require.Equal(t, slog.LevelInfo, c.level)
	require.Equal(t, formatText, c.format)
}

func TestCommonLogger_Nil(t *testing.T) {
	_, err := CommonLogger(nil)
	require.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("movie-catalog-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "movie-catalog-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel(), "empty level keeps the current one")

	err := SetLevel("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing log level")
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("movie-catalog-server")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("trace_id", "abc").Logger().Output(&childBuf)

	child.Info().Msg("request")
	parent.Info().Msg("server")

	childEntry := decodeEntry(t, &childBuf)
	assert.Equal(t, "movie-catalog-server", childEntry["role"])
	assert.Equal(t, "abc", childEntry["trace_id"])

	assert.NotContains(t, decodeEntry(t, &parentBuf), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/movies", nil)))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/movies", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-trace", decodeEntry(t, &buf)["trace_id"])
}

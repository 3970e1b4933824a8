package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/logger"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "notify")),
	)

	log.Warn("truncated", logger.Rows(45), logger.Limit(30))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "truncated", entry["msg"])
	assert.Equal(t, "notify", entry["service"])
	assert.EqualValues(t, 45, entry["rows"])
	assert.EqualValues(t, 30, entry["limit"])
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDevelopmentAndProduction(t *testing.T) {
	t.Parallel()

	var dev bytes.Buffer
	logger.New(logger.WithDevelopment("svc"), logger.WithOutput(&dev)).Debug("dbg")
	assert.Contains(t, dev.String(), "env=development")
	assert.Contains(t, dev.String(), "service=svc")

	var prod bytes.Buffer
	logger.New(logger.WithProduction("svc"), logger.WithOutput(&prod)).Debug("dbg")
	assert.Empty(t, prod.String(), "production logger filters debug")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		logger.Discard().Error("nothing", logger.Error(errors.New("x")))
	})
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestEmptyValueHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Provider("").Equal(slog.Attr{}))
	assert.True(t, logger.URL("").Equal(slog.Attr{}))
	assert.True(t, logger.Dataset("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))

	assert.Equal(t, "smtp", logger.Provider("smtp").Value.String())
	assert.Equal(t, "orders", logger.Dataset("orders").Value.String())
}

func TestDuration(t *testing.T) {
	t.Parallel()
	attr := logger.Duration(5 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 5*time.Second, attr.Value.Duration())

	start := time.Now().Add(-time.Second)
	assert.GreaterOrEqual(t, logger.Elapsed(start).Value.Duration(), time.Second)
}

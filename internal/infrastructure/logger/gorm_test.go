package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(obsLevel zapcore.Level, gormLevel gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(obsLevel)
	return NewGormLogger(zap.New(core), gormLevel, opts...), recorded
}

func TestNewGormLogger_Defaults(t *testing.T) {
	gl, _ := newObservedGormLogger(zapcore.InfoLevel, gormlogger.Info)

	assert.Equal(t, gormlogger.Info, gl.logLevel)
	assert.Equal(t, defaultSlowThreshold, gl.slowThreshold)
	assert.True(t, gl.ignoreRecordNotFoundError)
}

func TestNewGormLogger_Options(t *testing.T) {
	gl, _ := newObservedGormLogger(zapcore.InfoLevel, gormlogger.Info,
		WithSlowThreshold(500*time.Millisecond),
		WithIgnoreRecordNotFoundError(false),
	)

	assert.Equal(t, 500*time.Millisecond, gl.slowThreshold)
	assert.False(t, gl.ignoreRecordNotFoundError)
}

func TestGormLogger_LogModeClones(t *testing.T) {
	gl, _ := newObservedGormLogger(zapcore.InfoLevel, gormlogger.Info)

	clone := gl.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gl.logLevel)
	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.logLevel)
}

func TestGormLogger_Info(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.InfoLevel, gormlogger.Info)

	gl.Info(context.Background(), "migration step %s", "create_jobs")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "migration step create_jobs")
}

func TestGormLogger_SilentSuppressesAll(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.DebugLevel, gormlogger.Silent)

	gl.Info(context.Background(), "noisy")
	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Warn(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.WarnLevel, gormlogger.Warn)

	gl.Warn(context.Background(), "pool saturated: %d waiting", 7)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
}

func TestGormLogger_Error(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.ErrorLevel, gormlogger.Error)

	gl.Error(context.Background(), "connection lost")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
}

func TestGormLogger_Trace_Error(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.ErrorLevel, gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM jobs", 0
	}, errors.New("deadlock detected"))

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SQL Error")
}

func TestGormLogger_Trace_RecordNotFoundIgnored(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.ErrorLevel, gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM jobs WHERE id = ?", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Trace_SlowQuery(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.WarnLevel, gormlogger.Warn,
		WithSlowThreshold(time.Nanosecond),
	)

	begin := time.Now().Add(-time.Second)
	gl.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT * FROM applications", 10
	}, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SLOW SQL")
}

func TestGormLogger_Trace_NormalQuery(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.DebugLevel, gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM companies", 5
	}, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SQL Query")
}

func TestGormLogger_Trace_CarriesRequestID(t *testing.T) {
	gl, recorded := newObservedGormLogger(zapcore.DebugLevel, gormlogger.Info)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM users", 1
	}, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)

	var got string
	for _, field := range logs[0].Context {
		if field.Key == "request_id" {
			got = field.String
		}
	}
	assert.Equal(t, "req-42", got)
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gl, _ := newObservedGormLogger(zapcore.InfoLevel, gormlogger.Info)
	var _ gormlogger.Interface = gl
}

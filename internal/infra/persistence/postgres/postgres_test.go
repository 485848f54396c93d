package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, attrs, waited := poolWaitReport(prev, prev)
	assert.False(t, waited)
	assert.Nil(t, attrs)

	level, _, waited := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)

	level, attrs, waited = poolWaitReport(prev, sql.DBStats{WaitCount: 14, WaitDuration: time.Second + 200*time.Millisecond, InUse: 20})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 50*time.Millisecond))
}

//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "直列化失敗", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "デッドロック", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "ラップされた直列化失敗", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, "insert booking"), want: true},
		{name: "一意制約違反", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "PgError以外", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetryStopsAtLimit(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	assert.True(t, shouldRetry(err, 0, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

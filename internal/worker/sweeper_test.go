//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-frontdesk/internal/worker"
	commandsmock "hotel-frontdesk/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeperRunOnce(t *testing.T) {
	t.Run("解放失敗でもイベント中継は続行", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := commandsmock.NewMockJobCommands(ctrl)

		gomock.InOrder(
			jobs.EXPECT().ReleaseDueRooms(gomock.Any()).Return(0, errors.New("db down")),
			jobs.EXPECT().RelayDueEvents(gomock.Any()).Return(2, nil),
		)

		worker.NewSweeper(jobs, time.Second, quietLogger()).RunOnce(context.Background())
	})
}

func TestSweeperStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := commandsmock.NewMockJobCommands(ctrl)

	ran := make(chan struct{}, 1)
	jobs.EXPECT().ReleaseDueRooms(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)
	jobs.EXPECT().RelayDueEvents(gomock.Any()).Return(0, nil).MinTimes(1)

	s := worker.NewSweeper(jobs, 10*time.Millisecond, quietLogger())
	s.Start()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not run")
	}
	s.Stop()

	assert.True(t, ctrl.Satisfied())
}

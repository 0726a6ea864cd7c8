//go:build unit

package broker_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"hotel-frontdesk/internal/infra/broker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := broker.NewLogPublisher(logger).Publish(context.Background(), "booking.created", []byte(`{"type":"booking.created"}`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "topic=booking.created")
}

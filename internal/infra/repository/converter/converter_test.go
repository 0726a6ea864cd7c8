//go:build unit

package converter_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/infra/repository/converter"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingToCreateParams(t *testing.T) {
	b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.GuestEmail = ""
		bb.Notes = "late arrival"
	}).BuildDomain()
	require.NoError(t, err)

	p := converter.BookingToCreateParams(b)

	assert.Equal(t, b.ID(), p.ID)
	assert.False(t, p.GuestEmail.Valid)
	assert.True(t, p.Notes.Valid)
	assert.Equal(t, "late arrival", p.Notes.String)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), p.CheckIn.Time)
	assert.Equal(t, int32(2), p.Nights)
	assert.Equal(t, int64(100000000), p.TotalCents)
	assert.Equal(t, "checked-in", p.Status)
	assert.Len(t, p.Args(), 17)
}

func TestRoomToParams(t *testing.T) {
	r, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	p := converter.RoomToParams(r)
	assert.False(t, p.ReservationDate.Valid)
	assert.False(t, p.CheckOutDate.Valid)

	in := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.AttachBooking(in, out, false))

	p = converter.RoomToParams(r)
	assert.Equal(t, "reserved", p.Status)
	assert.True(t, p.ReservationDate.Valid)
	assert.Equal(t, out, p.CheckOutDate.Time)
}

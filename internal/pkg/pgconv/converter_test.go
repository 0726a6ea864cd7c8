//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConversion(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	local := time.Date(2024, 3, 5, 23, 30, 0, 0, jakarta)

	pd := pgconv.DateToPgtype(local)
	require.True(t, pd.Valid)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), pd.Time)

	back := pgconv.DatePtrFromPgtype(pd)
	require.NotNil(t, back)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *back)

	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{}))
}

func TestNullableText(t *testing.T) {
	assert.False(t, pgconv.TextOrNull("").Valid)
	assert.Equal(t, "note", pgconv.StringFromPgtype(pgconv.TextOrNull("note")))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
}

func TestNullableUUID(t *testing.T) {
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

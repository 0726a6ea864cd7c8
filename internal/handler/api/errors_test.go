//go:build unit

package api

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/booking"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	_, badDate := reqdto.ParseDate("10-01-2024")
	require.Error(t, badDate)
	_, badID := reqdto.ParseID("not-a-uuid")
	require.Error(t, badID)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "日付形式の誤りは400",
			err:        badDate,
			wantStatus: http.StatusBadRequest,
			wantMsg:    reqdto.ErrInvalidDate.Error(),
		},
		{
			name:       "IDの誤りは400",
			err:        errs.Wrap(badID, "parse room id"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    reqdto.ErrInvalidID.Error(),
		},
		{
			name:       "宿泊0泊はドメインエラーの文言で422",
			err:        errs.Wrap(errs.Mark(booking.ErrInvalidStay, commands.ErrDomainValidation), "create booking"),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    booking.ErrInvalidStay.Error(),
		},
		{
			name:       "不正なリフレッシュトークンは401",
			err:        errs.Mark(jwt.ErrInvalidToken, commands.ErrTokenValidation),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "チェックイン前のチェックアウトは409",
			err:        commands.ErrBookingNotCheckedIn,
			wantStatus: http.StatusConflict,
			wantMsg:    commands.ErrBookingNotCheckedIn.Error(),
		},
		{
			name:       "DB障害は500",
			err:        infra.WrapRepoErr("failed to insert booking", errs.New("connection reset"), infra.KindDBFailure),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

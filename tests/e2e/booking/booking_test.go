//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/tests/common/authtest"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	quoteURL    = "/api/bookings/quote"
	boardURL    = "/api/rooms/board"
)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "frontdesk@example.com", string(user.RoleStaff))
}

func (s *bookingSuite) bookingRequest(roomNumber, typeName, status string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		RoomTypeID:    dbtest.RoomTypeID(s.T(), s.DB, typeName),
		RoomID:        dbtest.RoomID(s.T(), s.DB, roomNumber),
		GuestName:     "Budi Santoso",
		GuestPhone:    "+62 812 3456 7890",
		GuestEmail:    "budi@example.com",
		CheckIn:       "2024-01-08",
		CheckOut:      "2024-01-10",
		PaymentMethod: "cash",
		PaymentStatus: "paid",
		BookingStatus: status,
	}
}

func (s *bookingSuite) create(req request.CreateBookingRequest) response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *bookingSuite) post(path string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, s.token)
	return w.Code
}

func (s *bookingSuite) TestQuote() {
	tests := []struct {
		name           string
		req            request.QuoteRequest
		expectedStatus int
		nights         int
		total          string
	}{
		{
			name:           "部屋価格で見積もり",
			req:            request.QuoteRequest{CheckIn: "2024-01-08", CheckOut: "2024-01-10"},
			expectedStatus: http.StatusOK,
			nights:         2,
			total:          "600000.00",
		},
		{
			name:           "同日はゼロ泊",
			req:            request.QuoteRequest{CheckIn: "2024-01-08", CheckOut: "2024-01-08", PricePerNight: "100.00"},
			expectedStatus: http.StatusOK,
			nights:         0,
			total:          "0.00",
		},
		{
			name:           "日付形式不正",
			req:            request.QuoteRequest{CheckIn: "08/01/2024", CheckOut: "2024-01-10", PricePerNight: "100.00"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			if tt.req.PricePerNight == "" {
				tt.req.RoomID = dbtest.RoomID(t, s.DB, "101").String()
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, tt.req, s.token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res response.QuoteResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, tt.nights, res.Nights)
			require.Equal(t, tt.total, res.TotalPrice)
		})
	}
}

func (s *bookingSuite) TestCreateCheckedIn() {
	s.Run("チェックイン済みで作成すると部屋が使用中になり売上が計上される", func() {
		t := s.T()

		res := s.create(s.bookingRequest("101", dbtest.StandardType, "checked-in"))
		require.Equal(t, "checked-in", res.BookingStatus)
		require.Equal(t, 2, res.Nights)
		require.Equal(t, "300000.00", res.PricePerNight)
		require.Equal(t, "600000.00", res.TotalPrice)
		require.Equal(t, "occupied", dbtest.RoomStatus(t, s.DB, "101"))

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM transactions WHERE booking_id = $1 AND type = 'income' AND amount_cents = 60000000",
			res.ID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("使用中の部屋には予約できない", func() {
		t := s.T()
		s.create(s.bookingRequest("101", dbtest.StandardType, "checked-in"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.bookingRequest("101", dbtest.StandardType, "reservation"), s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "room is no longer available")
	})

	s.Run("部屋タイプ不一致", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.bookingRequest("201", dbtest.StandardType, "reservation"), s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("チェックアウトがチェックイン以前", func() {
		t := s.T()
		req := s.bookingRequest("102", dbtest.StandardType, "reservation")
		req.CheckOut = req.CheckIn

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Equal(t, "available", dbtest.RoomStatus(t, s.DB, "102"))
	})
}

func (s *bookingSuite) TestReservationLifecycle() {
	s.Run("予約からチェックイン、支払い", func() {
		t := s.T()
		req := s.bookingRequest("201", dbtest.DeluxeType, "reservation")
		req.PaymentStatus = "unpaid"
		res := s.create(req)
		require.Equal(t, "reserved", dbtest.RoomStatus(t, s.DB, "201"))

		require.Equal(t, http.StatusOK, s.post(bookingsURL+"/"+res.ID.String()+"/check-in"))
		require.Equal(t, "occupied", dbtest.RoomStatus(t, s.DB, "201"))
		require.Equal(t, http.StatusConflict, s.post(bookingsURL+"/"+res.ID.String()+"/check-in"))

		require.Equal(t, http.StatusOK, s.post(bookingsURL+"/"+res.ID.String()+"/payment"))
		require.Equal(t, http.StatusConflict, s.post(bookingsURL+"/"+res.ID.String()+"/payment"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+res.ID.String(), nil, s.token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "checked-in", got.BookingStatus)
		require.Equal(t, "paid", got.PaymentStatus)
	})

	s.Run("予約はチェックアウトできない", func() {
		t := s.T()
		res := s.create(s.bookingRequest("102", dbtest.StandardType, "reservation"))

		require.Equal(t, http.StatusConflict, s.post(bookingsURL+"/"+res.ID.String()+"/check-out"))
		require.Equal(t, "reserved", dbtest.RoomStatus(t, s.DB, "102"))
	})
}

func (s *bookingSuite) TestCheckOutReleasesRoomAfterCleaning() {
	s.Run("清掃後に部屋が空室へ戻る", func() {
		t := s.T()
		res := s.create(s.bookingRequest("101", dbtest.StandardType, "checked-in"))

		require.Equal(t, http.StatusOK, s.post(bookingsURL+"/"+res.ID.String()+"/check-out"))
		require.Equal(t, "cleaning", dbtest.RoomStatus(t, s.DB, "101"))

		require.Eventually(t, func() bool {
			return dbtest.RoomStatus(t, s.DB, "101") == "available"
		}, 5*time.Second, 50*time.Millisecond, "清掃後に部屋が解放されない")

		var reservationDate *time.Time
		err := s.DB.QueryRow(t.Context(), "SELECT reservation_date FROM rooms WHERE number = '101'").Scan(&reservationDate)
		require.NoError(t, err)
		require.Nil(t, reservationDate)
	})

	s.Run("清掃中に手動で変更された部屋は解放しない", func() {
		t := s.T()
		res := s.create(s.bookingRequest("102", dbtest.StandardType, "checked-in"))
		require.Equal(t, http.StatusOK, s.post(bookingsURL+"/"+res.ID.String()+"/check-out"))

		roomID := dbtest.RoomID(t, s.DB, "102")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/rooms/"+roomID.String()+"/status",
			request.RoomStatusRequest{Status: "occupied"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Eventually(t, func() bool {
			var pending int
			err := s.DB.QueryRow(t.Context(),
				"SELECT count(*) FROM jobs WHERE kind = 'room_release' AND status IN ('queued', 'processing')").Scan(&pending)
			return err == nil && pending == 0
		}, 5*time.Second, 50*time.Millisecond)
		require.Equal(t, "occupied", dbtest.RoomStatus(t, s.DB, "102"))
	})
}

func (s *bookingSuite) TestBoardShowsDivergence() {
	s.Run("手動で空室にしても予約期間中は予約済みと表示", func() {
		t := s.T()
		s.create(s.bookingRequest("201", dbtest.DeluxeType, "reservation"))

		roomID := dbtest.RoomID(t, s.DB, "201")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/rooms/"+roomID.String()+"/status",
			request.RoomStatusRequest{Status: "available"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, boardURL+"?date=2024-01-09", nil, s.token)
		var board response.BoardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &board)
		require.Equal(t, "2024-01-09", board.Date)

		found := false
		for _, r := range board.Rooms {
			if r.Number != "201" {
				continue
			}
			found = true
			require.Equal(t, "available", r.StoredStatus)
			require.Equal(t, "reserved", r.EffectiveStatus)
			require.True(t, r.Diverges)
		}
		require.True(t, found)
	})

	s.Run("予約期間外は保存状態のまま", func() {
		t := s.T()
		s.create(s.bookingRequest("102", dbtest.StandardType, "reservation"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, boardURL+"?date=2024-02-01", nil, s.token)
		var board response.BoardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &board)
		for _, r := range board.Rooms {
			require.False(t, r.Diverges, r.Number)
		}
	})
}

func (s *bookingSuite) TestList() {
	s.Run("ステータスで絞り込み", func() {
		t := s.T()
		s.create(s.bookingRequest("101", dbtest.StandardType, "checked-in"))
		s.create(s.bookingRequest("102", dbtest.StandardType, "reservation"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=reservation", nil, s.token)
		var list response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Bookings, 1)
		require.Equal(t, "102", list.Bookings[0].RoomNumber)
	})

	s.Run("不正なステータス", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=cancelled", nil, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

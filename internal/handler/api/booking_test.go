//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/common/testutil"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("", withFakeAuth(user.RoleStaff))
	g.POST("/bookings/quote", h.Quote)
	g.POST("/bookings", h.Create)
	g.GET("/bookings", h.List)
	g.GET("/bookings/:id", h.Get)
	g.POST("/bookings/:id/check-in", h.CheckIn)
	g.POST("/bookings/:id/check-out", h.CheckOut)
	g.POST("/bookings/:id/payment", h.SettlePayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"

	s.Run("success: returns nights and total as decimal strings", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.QuoteRequest) (*booking.Quote, error) {
				s.Require().NotNil(req.PricePerNightCents)
				s.Equal(int64(30000000), *req.PricePerNightCents)
				s.Nil(req.RoomID)
				return &booking.Quote{Nights: 2, PricePerNight: money.FromCents(30000000), Total: money.FromCents(60000000)}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"checkIn": "2024-01-08", "checkOut": "2024-01-10", "pricePerNight": "300000"}, "token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.QuoteResponse{Nights: 2, PricePerNight: "300000.00", TotalPrice: "600000.00"}, response)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name string
			body map[string]string
		}{
			{name: "unparseable date", body: map[string]string{"checkIn": "2024/01/08", "checkOut": "2024-01-10", "pricePerNight": "1"}},
			{name: "three fraction digits", body: map[string]string{"checkIn": "2024-01-08", "checkOut": "2024-01-10", "pricePerNight": "1.005"}},
			{name: "negative price", body: map[string]string{"checkIn": "2024-01-08", "checkOut": "2024-01-10", "pricePerNight": "-1"}},
			{name: "room id is not a uuid", body: map[string]string{"checkIn": "2024-01-08", "checkOut": "2024-01-10", "roomId": "101"}},
			{name: "missing check-out", body: map[string]string{"checkIn": "2024-01-08"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 422 when neither a room nor a price is given", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrQuoteNeedsPrice, commands.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"checkIn": "2024-01-08", "checkOut": "2024-01-10"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.ErrQuoteNeedsPrice.Error())
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()
	id := uuid.New()

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildCreateRequest(), gomock.Any()).Return(id, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(b.BuildView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + id.String()})
		s.Equal(id, response.ID)
		s.Equal("2024-01-10", response.CheckIn)
		s.Equal("2024-01-12", response.CheckOut)
		s.Equal(2, response.Nights)
		s.Equal("500000.00", response.PricePerNight)
		s.Equal("1000000.00", response.TotalPrice)
		s.Equal("checked-in", response.BookingStatus)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: guestName (required)", mutate: testutil.Field("guestName", nil)},
			{name: "missing field: roomId (required)", mutate: testutil.Field("roomId", nil)},
			{name: "invalid guest email", mutate: testutil.Field("guestEmail", "not-an-email")},
			{name: "unknown payment method", mutate: testutil.Field("paymentMethod", "voucher")},
			{name: "checked-out is not an initial status", mutate: testutil.Field("bookingStatus", "checked-out")},
			{name: "unparseable check-in", mutate: testutil.Field("checkIn", "10-01-2024")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "room taken", commandsError: commands.ErrRoomNotAvailable, expectedStatus: http.StatusConflict, expectedMsg: "room is no longer available"},
			{name: "unknown room", commandsError: commands.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "room not found"},
			{
				name:           "stay rule violated",
				commandsError:  errs.Mark(errs.Wrap(booking.ErrInvalidStay, "invalid booking"), commands.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    booking.ErrInvalidStay.Error(),
			},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	view := builder.NewBookingBuilder().WithStatus("checked-out").BuildView(id)

	s.Run("success: check-out returns the updated booking", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/check-out", nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("checked-out", response.BookingStatus)
	})

	s.Run("error: lifecycle conflicts map to 409", func() {
		cases := []struct {
			path string
			err  error
			mock func(err error)
		}{
			{path: "/check-in", err: commands.ErrBookingNotReservation, mock: func(err error) {
				s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any()).Return(err)
			}},
			{path: "/check-out", err: commands.ErrBookingNotCheckedIn, mock: func(err error) {
				s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any()).Return(err)
			}},
			{path: "/payment", err: commands.ErrBookingAlreadyPaid, mock: func(err error) {
				s.mockCommands.EXPECT().SettlePayment(gomock.Any(), id, gomock.Any()).Return(err)
			}},
		}
		for _, tc := range cases {
			s.Run(tc.path, func() {
				tc.mock(tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+tc.path, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, tc.err.Error())
			})
		}
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any()).Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/check-in", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/check-in", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	created := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	item := &queries.BookingListItem{
		ID: uuid.New(), RoomID: uuid.New(), RoomNumber: "101", GuestName: "Budi",
		CheckIn:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Nights:   2, TotalCents: 60000000, PaymentStatus: "paid", Status: "reservation", CreatedAt: created,
	}

	s.Run("success: passes filters and returns the next cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookingFilters{Status: "reservation"}, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{item}, &queries.Cursor{After: "def"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=reservation&cursor=abc&limit=5", nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Bookings, 1)
		s.Equal("600000.00", response.Bookings[0].TotalPrice)
		s.Equal("reservation", response.Bookings[0].BookingStatus)
		s.Equal("def", response.NextCursor)
	})

	s.Run("error: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=ten", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for an unknown status filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidStatusFilter)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=cancelled", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status filter")
	})
}

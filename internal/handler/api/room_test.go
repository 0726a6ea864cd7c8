//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("", withFakeAuth(user.RoleOwner))
	g.GET("/rooms/availability", h.Availability)
	g.GET("/rooms/board", h.Board)
	g.GET("/rooms/:id", h.Get)
	g.POST("/rooms", h.Create)
	g.PATCH("/rooms/:id/status", h.SetStatus)
	g.POST("/room-types", h.CreateType)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestGet() {
	rb := builder.NewRoomBuilder().WithStatus("reserved")
	view := rb.BuildView()
	in := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	view.ReservationDate = &in

	s.Run("success: formats price and dates", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), rb.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+rb.ID.String(), nil, "token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("500000.00", response.PricePerNight)
		s.Equal("reserved", response.Status)
		s.Require().NotNil(response.ReservationDate)
		s.Equal("2024-01-08", *response.ReservationDate)
		s.Nil(response.CheckOutDate)
	})

	s.Run("error: 404 for unknown room", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), gomock.Any()).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+uuid.NewString(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	typeID := uuid.New()
	view := &queries.AvailabilityView{
		Types: []queries.TypeOptionView{{TypeID: typeID, TypeName: "Deluxe", FromPriceCents: 45000000, Available: 2}},
		Rooms: []queries.RoomOptionView{{ID: uuid.New(), Number: "201", PriceCents: 45000000, TypeName: "Deluxe"}},
	}

	s.Run("success: selected type narrows the rooms", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), typeID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability?roomTypeId="+typeID.String(), nil, "token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := resdto.AvailabilityResponse{
			Types: []resdto.TypeOptionResponse{{TypeID: typeID, TypeName: "Deluxe", FromPrice: "450000.00", Available: 2}},
			Rooms: []resdto.RoomOptionResponse{{ID: view.Rooms[0].ID, Number: "201", Price: "450000.00", TypeName: "Deluxe"}},
		}
		s.Empty(cmp.Diff(want, response))
	})

	s.Run("success: no type selected", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), uuid.Nil).
			Return(&queries.AvailabilityView{Types: view.Types, Rooms: []queries.RoomOptionView{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability", nil, "token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Types, 1)
		s.Empty(response.Rooms)
	})

	s.Run("error: 400 for malformed room type id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability?roomTypeId=deluxe", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RoomHandlerTestSuite) TestBoard() {
	day := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	view := &queries.BoardView{
		Date: day,
		Rooms: []queries.BoardEntryView{
			{RoomID: uuid.New(), Number: "101", TypeName: "Standard", StoredStatus: "available", EffectiveStatus: "reserved", Diverges: true},
		},
	}

	s.Run("success: parses the date and reports divergence", func() {
		s.mockQueries.EXPECT().Board(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, date *time.Time) (*queries.BoardView, error) {
				s.Require().NotNil(date)
				s.True(date.Equal(day))
				return view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/board?date=2024-01-09", nil, "token")

		var response resdto.BoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2024-01-09", response.Date)
		s.Require().Len(response.Rooms, 1)
		s.Equal(view.Rooms[0].RoomID, response.Rooms[0].ID)
		s.True(response.Rooms[0].Diverges)
	})

	s.Run("success: defaults to today", func() {
		s.mockQueries.EXPECT().Board(gomock.Any(), (*time.Time)(nil)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/board", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/board?date=tomorrow", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	rb := builder.NewRoomBuilder().WithNumber("301")
	body := map[string]any{"number": "301", "roomTypeId": rb.RoomTypeID, "pricePerNight": "500000"}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(),
			commands.RoomRequest{Number: "301", RoomTypeID: rb.RoomTypeID, PricePerNightCents: 50000000}, gomock.Any()).
			Return(rb.ID, nil)
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("301", response.Number)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "duplicate number", err: commands.ErrDuplicateRoomNumber, expectedStatus: http.StatusConflict},
			{name: "unknown room type", err: commands.ErrRoomTypeNotFound, expectedStatus: http.StatusNotFound},
			{name: "non-positive price", err: errs.Mark(errs.New("price per night must be positive"), commands.ErrDomainValidation), expectedStatus: http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "token")
				s.Equal(tc.expectedStatus, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestSetStatus() {
	rb := builder.NewRoomBuilder()

	s.Run("success: manual override returns the room", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), rb.ID, "cleaning", gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), rb.ID).Return(rb.WithStatus("cleaning").BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rooms/"+rb.ID.String()+"/status",
			map[string]string{"status": "cleaning"}, "token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cleaning", response.Status)
	})

	s.Run("error: 400 for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rooms/"+rb.ID.String()+"/status",
			map[string]string{"status": "flooded"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *RoomHandlerTestSuite) TestCreateType() {
	s.Run("success: returns the new id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateRoomType(gomock.Any(), commands.RoomTypeRequest{Name: "Suite", Description: "Two rooms"}, gomock.Any()).
			Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types",
			map[string]string{"name": "Suite", "description": "Two rooms"}, "token")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 409 for duplicate name", func() {
		s.mockCommands.EXPECT().CreateRoomType(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateRoomType)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types", map[string]string{"name": "Deluxe"}, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

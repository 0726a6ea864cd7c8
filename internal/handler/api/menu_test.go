//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/httptest"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
	mockQueries  *queriesmock.MockMenuQueries
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	h := api.NewMenuHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("", withFakeAuth(user.RoleStaff))
	g.GET("/menu-items", h.List)
	g.POST("/menu-items", h.Create)
	g.PUT("/menu-items/:id", h.Update)
	g.DELETE("/menu-items/:id", h.Delete)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func menuView(id uuid.UUID) *queries.MenuItemView {
	return &queries.MenuItemView{
		ID: id, Name: "Nasi Goreng", Category: "food", PriceCents: 4500000, Available: true,
		UpdatedAt: time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC),
	}
}

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: available=true narrows the list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).Return([]*queries.MenuItemView{menuView(uuid.New())}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu-items?available=true", nil, "token")

		var response []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("45000.00", response[0].Price)
	})

	s.Run("success: everything by default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return([]*queries.MenuItemView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu-items", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *MenuHandlerTestSuite) TestCreate() {
	s.Run("success: availability defaults to true", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.MenuItemRequest{
			Name: "Nasi Goreng", Category: "food", PriceCents: 4500000, Available: true,
		}, gomock.Any()).Return(id, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(menuView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu-items",
			map[string]string{"name": "Nasi Goreng", "category": "food", "price": "45000"}, "token")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.True(response.Available)
	})

	s.Run("error: 400 for an unknown category", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menu-items",
			map[string]string{"name": "Spa", "category": "service", "price": "10"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *MenuHandlerTestSuite) TestUpdateAndDelete() {
	id := uuid.New()

	s.Run("success: unavailable item is returned", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)
		view := menuView(id)
		view.Available = false
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/menu-items/"+id.String(),
			map[string]any{"name": "Nasi Goreng", "category": "food", "price": "45000", "available": false}, "token")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("success: delete returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menu-items/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, gomock.Any()).Return(commands.ErrMenuItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menu-items/"+id.String(), nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

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

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("", withFakeAuth(user.RoleOwner))
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.PATCH("/users/:id/role", h.ChangeRole)
	g.PATCH("/users/:id/active", h.SetActive)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: never-logged-in users have a null last login", func() {
		lastLogin := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)
		views := []*queries.UserView{
			{ID: uuid.New(), Email: "owner@hotel.test", FullName: "Owner", Role: "owner", IsActive: true, LastLogin: &lastLogin},
			{ID: uuid.New(), Email: "night@hotel.test", FullName: "Night Desk", Role: "staff", IsActive: false},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "token")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Require().NotNil(response[0].LastLogin)
		s.Equal("2024-01-09", *response[0].LastLogin)
		s.Nil(response[1].LastLogin)
		s.False(response[1].IsActive)
	})
}

func (s *UserHandlerTestSuite) TestCreate() {
	body := map[string]string{"email": "new@hotel.test", "fullName": "New Staff", "password": "password123", "role": "staff"}

	s.Run("success: returns 201 with the new id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateUserRequest{
			Email: "new@hotel.test", FullName: "New Staff", Password: "password123", Role: "staff",
		}, gomock.Any()).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 for a role outside the hierarchy", func() {
		req := map[string]string{"email": "new@hotel.test", "fullName": "New Staff", "password": "password123", "role": "admin"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", req, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 for a registered email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateEmail)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})
}

func (s *UserHandlerTestSuite) TestChangeRole() {
	id := uuid.New()
	url := "/users/" + id.String() + "/role"

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "role changed", err: nil, expectedStatus: http.StatusNoContent},
		{name: "owner demoting themselves", err: commands.ErrSelfModification, expectedStatus: http.StatusForbidden},
		{name: "unknown user", err: commands.ErrUserNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().ChangeRole(gomock.Any(), id, "viewer", gomock.Any()).Return(tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"role": "viewer"}, "token")
			s.Equal(tc.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func (s *UserHandlerTestSuite) TestSetActive() {
	id := uuid.New()
	url := "/users/" + id.String() + "/active"

	s.Run("success: false is a valid value", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), id, false, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]bool{"active": false}, "token")
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 when the flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/42/active", map[string]bool{"active": true}, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

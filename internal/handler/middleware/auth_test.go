//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/tests/common/httptest"
	usecasemock "hotel-frontdesk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	m := middleware.NewAuthMiddleware(s.validator)
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	}

	g := s.router.Group("", m.RequireAuth())
	g.GET("/read", whoami)
	g.POST("/write", m.RequireRoleAtLeast(user.RoleStaff), whoami)
	g.POST("/admin", m.RequireRoleAtLeast(user.RoleOwner), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: bearer token sets the user", func() {
		s.validator.EXPECT().ValidateToken("good").Return(userID, user.RoleViewer, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["id"])
		s.Equal("viewer", body["role"])
	})

	s.Run("success: cookie wins over the header", func() {
		s.validator.EXPECT().ValidateToken("from-cookie").Return(userID, user.RoleStaff, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/read", nil,
			[]*http.Cookie{{Name: "access_token", Value: "from-cookie"}}, "from-header")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 for a rejected token", func() {
		s.validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		name       string
		role       user.Role
		path       string
		expectCode int
	}{
		{name: "viewer cannot write", role: user.RoleViewer, path: "/write", expectCode: http.StatusForbidden},
		{name: "staff can write", role: user.RoleStaff, path: "/write", expectCode: http.StatusOK},
		{name: "owner can write", role: user.RoleOwner, path: "/write", expectCode: http.StatusOK},
		{name: "staff cannot manage accounts", role: user.RoleStaff, path: "/admin", expectCode: http.StatusForbidden},
		{name: "owner can manage accounts", role: user.RoleOwner, path: "/admin", expectCode: http.StatusOK},
		{name: "unknown role is refused", role: user.Role("admin"), path: "/write", expectCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.validator.EXPECT().ValidateToken("token").Return(uuid.New(), tc.role, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.path, nil, "token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

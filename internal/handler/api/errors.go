package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type statusRule struct {
	targets []error
	status  int
	message string
}

var statusRules = []statusRule{
	{
		targets: []error{reqdto.ErrInvalidDate, reqdto.ErrInvalidAmount, reqdto.ErrInvalidID,
			queries.ErrInvalidCursor, queries.ErrInvalidStatusFilter, queries.ErrInvalidDateRange},
		status: http.StatusBadRequest,
	},
	{
		targets: []error{commands.ErrInvalidCredentials, commands.ErrTokenValidation},
		status:  http.StatusUnauthorized,
		message: "Invalid credentials",
	},
	{
		targets: []error{commands.ErrSelfModification, commands.ErrUserInactive, queries.ErrUserInactive},
		status:  http.StatusForbidden,
	},
	{
		targets: []error{commands.ErrRoomNotFound, commands.ErrBookingNotFound, commands.ErrRoomTypeNotFound,
			commands.ErrMenuItemNotFound, commands.ErrUserNotFound, queries.ErrRoomNotFound,
			queries.ErrBookingNotFound, queries.ErrMenuItemNotFound, queries.ErrUserNotFound},
		status: http.StatusNotFound,
	},
	{
		targets: []error{commands.ErrRoomNotAvailable, commands.ErrBookingNotReservation, commands.ErrBookingNotCheckedIn,
			commands.ErrBookingAlreadyPaid, commands.ErrDuplicateRoomNumber, commands.ErrDuplicateRoomType,
			commands.ErrDuplicateEmail},
		status: http.StatusConflict,
	},
}

// classify maps a usecase error to a status and client message. Domain rule
// violations come first so their own message reaches the client.
func classify(err error) (int, string) {
	if errs.Is(err, commands.ErrDomainValidation) {
		return http.StatusUnprocessableEntity, errs.Cause(err).Error()
	}
	for _, rule := range statusRules {
		for _, target := range rule.targets {
			if !errs.Is(err, target) {
				continue
			}
			if rule.message != "" {
				return rule.status, rule.message
			}
			return rule.status, target.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := classify(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func abortMapping(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

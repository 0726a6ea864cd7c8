package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	cmds commands.LedgerCommands
	q    queries.LedgerQueries
}

func NewLedgerHandler(cmds commands.LedgerCommands, q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description Ledger entries between two dates, newest first. Defaults to the last 30 days.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/transactions [get]
func (h *LedgerHandler) List(c *gin.Context) {
	from, err := reqdto.ParseOptionalDate(c.Query("from"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	to, err := reqdto.ParseOptionalDate(c.Query("to"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	items, err := h.q.List(c.Request.Context(), from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTransactionList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Record transaction
// @Description Manual income or expense entry
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordTransactionRequest true "Transaction"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/transactions [post]
func (h *LedgerHandler) Record(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	id, err := h.cmds.Record(c.Request.Context(), cmd, actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

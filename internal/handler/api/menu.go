package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary List menu items
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param available query bool false "only items currently offered"
// @Success 200 {array} resdto.MenuItemResponse
// @Router /api/menu-items [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("available") == "true")
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMenuList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/menu-items [post]
func (h *MenuHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), cmd, actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithItem(c, http.StatusCreated, id)
}

// @Summary Update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/menu-items/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if err = h.cmds.Update(c.Request.Context(), id, cmd, actorID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithItem(c, http.StatusOK, id)
}

// @Summary Delete menu item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/menu-items/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actorID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) respondWithItem(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMenuItem(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(status, res)
}

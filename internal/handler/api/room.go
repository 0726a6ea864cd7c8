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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRoomList(rooms)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithRoom(c, http.StatusOK, id)
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /api/room-types [get]
func (h *RoomHandler) ListTypes(c *gin.Context) {
	types, err := h.q.ListRoomTypes(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRoomTypeList(types)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room type
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomTypeRequest true "Room type"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/room-types [post]
func (h *RoomHandler) CreateType(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := h.cmds.CreateRoomType(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Availability for a booking form
// @Description Room types that still have a free room, and the free rooms of the selected type
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomTypeId query string false "Selected room type"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	typeID := uuid.Nil
	if raw := c.Query("roomTypeId"); raw != "" {
		id, err := reqdto.ParseID(raw)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		typeID = id
	}
	view, err := h.q.Availability(c.Request.Context(), typeID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAvailability(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Room board
// @Description Stored and booking-derived status of every room on a date
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/board [get]
func (h *RoomHandler) Board(c *gin.Context) {
	date, err := reqdto.ParseOptionalDate(c.Query("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.Board(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBoard(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	id, err := h.cmds.CreateRoom(c.Request.Context(), cmd, actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithRoom(c, http.StatusCreated, id)
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if err = h.cmds.UpdateRoom(c.Request.Context(), id, cmd, actorID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithRoom(c, http.StatusOK, id)
}

// @Summary Override room status
// @Description Manual status change; booking dates are cleared when the room becomes available
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomStatusRequest true "Status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/status [patch]
func (h *RoomHandler) SetStatus(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.SetStatus(c.Request.Context(), id, req.Status, actorID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithRoom(c, http.StatusOK, id)
}

func (h *RoomHandler) respondWithRoom(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(status, res)
}

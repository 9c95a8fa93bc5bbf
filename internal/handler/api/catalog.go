package api

import (
	"net/http"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Create hotel
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.HotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req reqdto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.CreateHotel(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Create hotel failed")
		return
	}
	h.respondHotel(c, http.StatusCreated, id)
}

// @Summary Update hotel
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.HotelRequest true "Hotel"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotels/{id} [put]
func (h *CatalogHandler) UpdateHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.HotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if err = h.cmds.UpdateHotel(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUsecaseError(c, err, "Update hotel failed")
		return
	}
	h.respondHotel(c, http.StatusOK, id)
}

// @Summary Get hotel
// @Tags catalog
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /common/hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respondHotel(c, http.StatusOK, id)
}

func (h *CatalogHandler) respondHotel(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetHotel(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load hotel")
		return
	}
	resp, err := resdto.FromHotelView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render hotel", nil)
		return
	}
	c.JSON(status, resp)
}

// @Summary Search hotels
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param title query string false "Title substring"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.HotelResponse
// @Router /admin/hotels [get]
func (h *CatalogHandler) SearchHotels(c *gin.Context) {
	var query reqdto.SearchHotelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	views, err := h.q.SearchHotels(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search hotels")
		return
	}
	resp, err := resdto.FromHotelViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render hotels", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotel-rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Create room failed")
		return
	}
	h.respondRoom(c, http.StatusCreated, id, true)
}

// @Summary Update room
// @Description Omitted fields keep their value; an empty images array clears the gallery
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room patch"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotel-rooms/{id} [put]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if err = h.cmds.UpdateRoom(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithUsecaseError(c, err, "Update room failed")
		return
	}
	h.respondRoom(c, http.StatusOK, id, true)
}

// @Summary Get room
// @Description Disabled rooms are visible to admins only
// @Tags catalog
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /common/hotel-rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respondRoom(c, http.StatusOK, id, isAdmin(c))
}

func (h *CatalogHandler) respondRoom(c *gin.Context, status int, id uuid.UUID, includeDisabled bool) {
	view, err := h.q.GetRoom(c.Request.Context(), id, includeDisabled)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load room")
		return
	}
	resp, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render room", nil)
		return
	}
	c.JSON(status, resp)
}

// @Summary Search rooms
// @Tags catalog
// @Produce json
// @Param hotel query string false "Hotel ID"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /common/hotel-rooms [get]
func (h *CatalogHandler) SearchRooms(c *gin.Context) {
	var query reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	views, err := h.q.SearchRooms(c.Request.Context(), query.ToFilter(isAdmin(c)))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search rooms")
		return
	}
	resp, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render rooms", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func isAdmin(c *gin.Context) bool {
	role, ok := middleware.GetUserRole(c)
	return ok && role == user.RoleAdmin
}

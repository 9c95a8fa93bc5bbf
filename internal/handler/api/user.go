package api

import (
	"net/http"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Description Admins may create users with any role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	reg, role, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	id, err := h.cmds.CreateUser(c.Request.Context(), reg, role)
	if err != nil {
		abortWithUsecaseError(c, err, "Create user failed")
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Search users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email substring"
// @Param name query string false "Name substring"
// @Param contactPhone query string false "Phone substring"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.UserResponse
// @Router /admin/users [get]
func (h *UserHandler) SearchAll(c *gin.Context) {
	h.search(c, "")
}

// @Summary Search clients
// @Description Managers only see client accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email substring"
// @Param name query string false "Name substring"
// @Param contactPhone query string false "Phone substring"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.UserResponse
// @Router /manager/users [get]
func (h *UserHandler) SearchClients(c *gin.Context) {
	h.search(c, user.RoleClient.String())
}

func (h *UserHandler) search(c *gin.Context, role string) {
	var query reqdto.SearchUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	views, err := h.q.SearchUsers(c.Request.Context(), query.ToFilter(role))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search users")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

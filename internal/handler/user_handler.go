package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type userService interface {
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// UserHandler handles user endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// List godoc
// @Summary List users
// @Description List users by role, or look one up by username or email
// @Tags Users
// @Produce json
// @Param role query string false "Role filter (student, educator, admin)"
// @Param username query string false "Exact username"
// @Param email query string false "Exact email"
// @Success 200 {array} models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if username := c.Query("username"); username != "" {
		h.single(c, func() (*models.User, error) { return h.service.GetByUsername(ctx, username) })
		return
	}
	if email := c.Query("email"); email != "" {
		h.single(c, func() (*models.User, error) { return h.service.GetByEmail(ctx, email) })
		return
	}

	users, err := h.service.ListByRole(ctx, c.Query("role"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.single(c, func() (*models.User, error) { return h.service.Get(c.Request.Context(), id) })
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body models.CreateUserRequest true "Create user payload"
// @Success 201 {object} models.User
// @Failure 400 {object} response.ErrorBody
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

func (h *UserHandler) single(c *gin.Context, load func() (*models.User, error)) {
	user, err := load()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

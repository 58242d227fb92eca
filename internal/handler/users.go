package handler

import (
	"net/http"

	"github.com/jpstorm21/graphql-api/internal/dto"
	"github.com/jpstorm21/graphql-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UsersHandler exposes the user query and mutation as typed entry points.
type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// GetUsers GET /v1/users — every user carries its role eagerly attached.
func (h *UsersHandler) GetUsers(c *gin.Context) {
	resp, err := h.svc.GetUsers(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateUser POST /v1/users
func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req dto.UserData
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

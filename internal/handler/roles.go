package handler

import (
	"net/http"

	"github.com/jpstorm21/graphql-api/internal/apierror"
	"github.com/jpstorm21/graphql-api/internal/dto"
	"github.com/jpstorm21/graphql-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RolesHandler exposes the role queries and mutations as typed entry points.
type RolesHandler struct{ svc service.RoleService }

func NewRolesHandler(svc service.RoleService) *RolesHandler {
	return &RolesHandler{svc: svc}
}

// GetRoles GET /v1/roles
func (h *RolesHandler) GetRoles(c *gin.Context) {
	resp, err := h.svc.GetRoles(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRole POST /v1/roles
func (h *RolesHandler) CreateRole(c *gin.Context) {
	var req dto.RoleData
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRole(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EditRole PUT /v1/roles/:id
func (h *RolesHandler) EditRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.RoleData
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.EditRole(c.Request.Context(), id, req)
	if svcErr != nil {
		renderError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRole DELETE /v1/roles/:id — returns the removed record.
func (h *RolesHandler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, svcErr := h.svc.DeleteRole(c.Request.Context(), id)
	if svcErr != nil {
		renderError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

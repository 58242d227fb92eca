package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpstorm21/graphql-api/internal/apierror"
	"github.com/jpstorm21/graphql-api/internal/dto"
	"github.com/jpstorm21/graphql-api/internal/handler"
	"github.com/jpstorm21/graphql-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoleService returns canned results so tests exercise only the
// error-kind → HTTP status mapping and the response envelopes.
type stubRoleService struct {
	role *dto.RoleResponse
	err  error
}

func (s *stubRoleService) GetRoles(context.Context) ([]dto.RoleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.RoleResponse{*s.role}, nil
}
func (s *stubRoleService) GetRoleByID(context.Context, uuid.UUID) (*dto.RoleResponse, error) {
	return s.role, s.err
}
func (s *stubRoleService) GetRoleByName(context.Context, string) (*dto.RoleResponse, error) {
	return s.role, s.err
}
func (s *stubRoleService) CreateRole(context.Context, dto.RoleData) (*dto.RoleResponse, error) {
	return s.role, s.err
}
func (s *stubRoleService) EditRole(context.Context, uuid.UUID, dto.RoleData) (*dto.RoleResponse, error) {
	return s.role, s.err
}
func (s *stubRoleService) DeleteRole(context.Context, uuid.UUID) (*dto.RoleResponse, error) {
	return s.role, s.err
}

var _ service.RoleService = (*stubRoleService)(nil)

func adminRole() *dto.RoleResponse {
	name := "admin"
	return &dto.RoleResponse{ID: uuid.NewString(), Name: &name}
}

func rolesRouter(svc service.RoleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewRolesHandler(svc)
	r.GET("/v1/roles", h.GetRoles)
	r.POST("/v1/roles", h.CreateRole)
	r.PUT("/v1/roles/:id", h.EditRole)
	r.DELETE("/v1/roles/:id", h.DeleteRole)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRole_Created(t *testing.T) {
	r := rolesRouter(&stubRoleService{role: adminRole()})

	w := doRequest(t, r, http.MethodPost, "/v1/roles", `{"name":"admin"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RoleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", *resp.Name)
}

func TestCreateRole_KindStatusMapping(t *testing.T) {
	cases := []struct {
		descr  string
		err    error
		status int
		detail string
	}{
		{"validation", apierror.Validationf("name is undefined"), http.StatusBadRequest, "name is undefined"},
		{"conflict", apierror.Conflictf("role with name admin exists"), http.StatusConflict, "admin"},
		{"storage", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			r := rolesRouter(&stubRoleService{err: tc.err})

			w := doRequest(t, r, http.MethodPost, "/v1/roles", `{"name":"admin"}`)

			assert.Equal(t, tc.status, w.Code)
			var resp apierror.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Detail, tc.detail)
		})
	}
}

func TestEditRole_NotFound(t *testing.T) {
	r := rolesRouter(&stubRoleService{err: apierror.NotFoundf("role with id=%s does not exist", "x")})

	w := doRequest(t, r, http.MethodPut, "/v1/roles/"+uuid.NewString(), `{"name":"y"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditRole_InvalidID(t *testing.T) {
	r := rolesRouter(&stubRoleService{role: adminRole()})

	w := doRequest(t, r, http.MethodPut, "/v1/roles/not-a-uuid", `{"name":"y"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRole_ReturnsRemovedRecord(t *testing.T) {
	role := adminRole()
	r := rolesRouter(&stubRoleService{role: role})

	w := doRequest(t, r, http.MethodDelete, "/v1/roles/"+role.ID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.RoleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, role.ID, resp.ID)
}

func TestCreateRole_InvalidJSON(t *testing.T) {
	r := rolesRouter(&stubRoleService{role: adminRole()})

	w := doRequest(t, r, http.MethodPost, "/v1/roles", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubUserService struct {
	user *dto.UserResponse
	err  error
}

func (s *stubUserService) GetUsers(context.Context) ([]dto.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.UserResponse{*s.user}, nil
}
func (s *stubUserService) GetUserByRut(context.Context, string) (*dto.UserResponse, error) {
	return s.user, s.err
}
func (s *stubUserService) CreateUser(context.Context, dto.UserData) (*dto.UserResponse, error) {
	return s.user, s.err
}

var _ service.UserService = (*stubUserService)(nil)

func usersRouter(svc service.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewUsersHandler(svc)
	r.GET("/v1/users", h.GetUsers)
	r.POST("/v1/users", h.CreateUser)
	return r
}

func TestCreateUser_Created(t *testing.T) {
	role := adminRole()
	user := &dto.UserResponse{ID: uuid.NewString(), Name: "Ana", Rut: "1-9", Email: "a@x.com", Role: role}
	r := usersRouter(&stubUserService{user: user})

	w := doRequest(t, r, http.MethodPost, "/v1/users",
		`{"name":"Ana","rut":"1-9","password":"p1","email":"a@x.com","idRole":"`+role.ID+`"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Role)
	assert.Equal(t, "admin", *resp.Role.Name)
}

func TestCreateUser_ConflictStatus(t *testing.T) {
	r := usersRouter(&stubUserService{err: apierror.Conflictf("user with rut 1-9 exists")})

	w := doRequest(t, r, http.MethodPost, "/v1/users",
		`{"name":"Ana","rut":"1-9","password":"p1","email":"a@x.com","idRole":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUsers_OK(t *testing.T) {
	user := &dto.UserResponse{ID: uuid.NewString(), Name: "Ana"}
	r := usersRouter(&stubUserService{user: user})

	w := doRequest(t, r, http.MethodGet, "/v1/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"basecamp-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

// RegisterRoutes mounts login on r and account administration on admin.
// admin is expected to carry RequireAuth + RequireRole(RoleAdmin).
func RegisterRoutes(r gin.IRoutes, admin gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/auth/login", h.Login)

	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.Register)
	admin.PUT("/users/:id/role", h.ChangeRole)
	admin.DELETE("/users/:id", h.DeleteUser)
}

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary  Log in and receive a JWT
// @Tags     auth
// @Param    body body LoginRequest true "credentials"
// @Success  200 {object} map[string]string
// @Router   /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "id and password are required"))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierr.NewBody(apierr.CodeUnauthorized, "wrong id or password"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type RegisterRequest struct {
	ID          string  `json:"id" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Role        *string `json:"role,omitempty"` // defaults to member
}

type UserResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsDisabled  bool      `json:"is_disabled"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "id, display_name and password are required"))
		return
	}

	role := RoleMember
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}

	if err := h.svc.Register(c.Request.Context(), req.ID, req.DisplayName, req.Password, role); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyExists):
			c.JSON(http.StatusConflict, apierr.NewBody(apierr.CodeDuplicateKey, "id already exists"))
		case errors.Is(err, ErrInvalidRole):
			c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "role must be member, leader or admin"))
		default:
			c.JSON(http.StatusInternalServerError, apierr.NewBody(apierr.CodeInternal, "register failed"))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "role": role})
}

func (h *Handler) ListUsers(c *gin.Context) {
	accounts, err := h.svc.ListAccounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierr.FromErr(err))
		return
	}

	out := make([]UserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, UserResponse{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Role:        a.Role,
			IsDisabled:  a.IsDisabled,
			CreatedAt:   a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) ChangeRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "role is required"))
		return
	}

	err := h.svc.ChangeRole(c.Request.Context(), c.Param("id"), req.Role)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "role": req.Role})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, apierr.NewBody(apierr.CodeNotFound, "user not found"))
	case errors.Is(err, ErrInvalidRole):
		c.JSON(http.StatusBadRequest, apierr.NewBody(apierr.CodeInvalidArgument, "role must be member, leader or admin"))
	default:
		c.JSON(http.StatusInternalServerError, apierr.FromErr(err))
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, apierr.NewBody(apierr.CodeNotFound, "user not found"))
	default:
		c.JSON(http.StatusInternalServerError, apierr.FromErr(err))
	}
}

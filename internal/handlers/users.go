package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/restofront/apiserver/internal/services"
	"github.com/restofront/apiserver/internal/store"
)

// UserAdminHandler provides admin-only user management endpoints.
type UserAdminHandler struct {
	userService *services.UserService
}

func NewUserAdminHandler(userService *services.UserService) *UserAdminHandler {
	return &UserAdminHandler{userService: userService}
}

// UserAdminRouter registers admin user routes on the given router. Every
// route is behind the provided admin middleware.
func UserAdminRouter(r chi.Router, userService *services.UserService, adminOnly func(http.Handler) http.Handler) {
	handler := NewUserAdminHandler(userService)

	r.Use(adminOnly)
	r.Get("/users", handler.ListUsers)
	r.Put("/users/{userID}/role", handler.UpdateUserRole)
}

// ListUsers returns every user account.
func (h *UserAdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UpdateUserRole changes one user's role. A role outside the enumeration
// is rejected without touching the record.
func (h *UserAdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID < 1 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.userService.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid role")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update role")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

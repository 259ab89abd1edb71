package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/restofront/apiserver/internal/auth"
	"github.com/restofront/apiserver/internal/services"
	"github.com/restofront/apiserver/internal/store"
	"github.com/restofront/apiserver/types"
)

// AuthHandler provides login, registration, and current-user endpoints.
type AuthHandler struct {
	userService *services.UserService
	authn       *auth.Authenticator
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, authn *auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authn:       authn,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, authn *auth.Authenticator) {
	handler := NewAuthHandler(userService, authn)

	r.Post("/token", handler.Login)
	r.Post("/register", handler.Register)
	r.With(RequireAuth(authn)).Get("/me", handler.Me)
	r.With(RequireRole(authn.RequireRole(types.RoleAdmin))).Get("/admin-only", handler.AdminOnly)
}

// Login verifies form credentials and returns a bearer token. The form
// field is named "username" by OAuth2 convention but carries the email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	token, err := h.authn.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	user, err := h.userService.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusBadRequest, "email already in use")
		case errors.Is(err, services.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid role")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Me returns the current authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// AdminOnly is a trivial admin-gated route.
func (h *AuthHandler) AdminOnly(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "welcome, " + user.Name,
	})
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

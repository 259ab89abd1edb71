package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/restofront/apiserver/types"
)

type contextKey string

const contextUserKey contextKey = "user"

// ErrorResponse is the JSON body returned for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func userFromContext(ctx context.Context) (types.User, error) {
	user, ok := ctx.Value(contextUserKey).(types.User)
	if !ok {
		return types.User{}, errors.New("no authenticated user in context")
	}
	return user, nil
}

func withUser(ctx context.Context, user types.User) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

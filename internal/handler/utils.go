package handler

import (
	"errors"
	"net/http"

	"mindhaven/internal/pkg/auth"
	"mindhaven/internal/pkg/httputils"
	"mindhaven/internal/service"
)

type PongResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Ping the server
// @Description Ping the server
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Failure 404
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, 200, PongResponse{Message: "Pong"})
}

var errMissingToken = errors.New("missing auth token")

// authenticate resolves the current user from the Bearer header. The chat
// engine trusts this identity; credentials are only checked at login.
func authenticate(r *http.Request) (*auth.Claims, error) {
	tokenStr := r.Header.Get("Bearer")
	if tokenStr == "" {
		return nil, errMissingToken
	}
	return auth.ValidateToken(tokenStr)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Category errors carry readable messages, so they go to the client as-is;
// anything else is an internal failure the client gets no details about.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		httputils.ResponseError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		httputils.ResponseError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		httputils.ResponseError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httputils.ResponseError(w, http.StatusUnauthorized, err.Error())
	default:
		httputils.ResponseError(w, http.StatusInternalServerError, "internal server error")
	}
}

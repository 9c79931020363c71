package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"mindhaven/internal/pkg/auth"
	"mindhaven/internal/pkg/httputils"
	"mindhaven/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/register", h.registerUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", h.loginUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/profile", h.getProfile).Methods("GET", "OPTIONS")
	router.HandleFunc("/profile", h.updateProfile).Methods("PUT", "OPTIONS")
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// @Summary Register
// @Description Register an account
// @ID register
// @Accept json
// @Produce json
// @Success 201 {object} TokenResponse
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 409 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Param registerData body RegisterRequest true "Register data"
// @Router /register [post]
func (h *UserHandler) registerUser(w http.ResponseWriter, r *http.Request) {
	var request RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	r.Body.Close()

	user, err := h.userService.Register(r.Context(), request.Email, request.Name, request.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, TokenResponse{
		Token: token,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Description Log into an account
// @ID login
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Param loginData body LoginRequest true "Login data"
// @Router /login [post]
func (h *UserHandler) loginUser(w http.ResponseWriter, r *http.Request) {
	var request LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	r.Body.Close()

	user, err := h.userService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, TokenResponse{
		Token: token,
	})
}

// @Summary Profile
// @Description Current user's profile with authored message count
// @ID get-profile
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Success 200 {object} service.Profile
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, profile)
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// @Summary Edit profile
// @Description Update the current user's display name and bio
// @ID update-profile
// @Accept json
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param profileData body UpdateProfileRequest true "Profile data"
// @Success 204
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /profile [put]
func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var request UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.userService.UpdateProfile(r.Context(), claims.UserID, request.Name, request.Bio); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

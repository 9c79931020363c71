package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"mindhaven/internal/pkg/httputils"
	"mindhaven/internal/pkg/support"
)

// WellnessHandler serves the chatbot and emotion placeholder endpoints.
// Both are table lookups over the support package.
type WellnessHandler struct{}

func NewWellnessHandler() *WellnessHandler {
	return &WellnessHandler{}
}

func (h *WellnessHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat", h.processChat).Methods("POST", "OPTIONS")
	router.HandleFunc("/emotion", h.processEmotion).Methods("POST", "OPTIONS")
}

type chatRequest struct {
	Message string `json:"message"`
	Emotion string `json:"emotion"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// @Summary Chatbot
// @Description Canned supportive reply for a message or detected emotion
// @ID process-chat
// @Accept json
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param chatData body chatRequest true "Chat Data"
// @Success 200 {object} chatResponse
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Router /chat [post]
func (h *WellnessHandler) processChat(w http.ResponseWriter, r *http.Request) {
	if _, err := authenticate(r); err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var request chatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	input := request.Message
	if request.Emotion != "" {
		input = request.Emotion
	}

	httputils.ResponseJSON(w, http.StatusOK, chatResponse{Response: support.ReplyTo(input)})
}

type emotionResponse struct {
	Emotion string   `json:"emotion"`
	Therapy []string `json:"therapy"`
}

// @Summary Detect emotion
// @Description Placeholder emotion pick with therapy suggestions
// @ID process-emotion
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Success 200 {object} emotionResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Router /emotion [post]
func (h *WellnessHandler) processEmotion(w http.ResponseWriter, r *http.Request) {
	if _, err := authenticate(r); err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	emotion := support.PickEmotion()
	httputils.ResponseJSON(w, http.StatusOK, emotionResponse{
		Emotion: emotion,
		Therapy: support.TherapyFor(emotion),
	})
}

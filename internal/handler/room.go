package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"mindhaven/internal/pkg/httputils"
	"mindhaven/internal/service"
)

type RoomHandler struct {
	roomService         service.RoomService
	membershipService   service.MembershipService
	conversationService service.ConversationService
}

func NewRoomHandler(
	roomService service.RoomService,
	membershipService service.MembershipService,
	conversationService service.ConversationService,
) *RoomHandler {
	return &RoomHandler{
		roomService:         roomService,
		membershipService:   membershipService,
		conversationService: conversationService,
	}
}

func (h *RoomHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/community/rooms", h.listRooms).Methods("GET", "OPTIONS")
	router.HandleFunc("/community/rooms", h.createRoom).Methods("POST", "OPTIONS")
	router.HandleFunc("/community/room/{id}", h.getRoomDetail).Methods("GET", "OPTIONS")
	router.HandleFunc("/community/room/{id}/join", h.joinRoom).Methods("POST", "OPTIONS")
	router.HandleFunc("/community/room/{id}/leave", h.leaveRoom).Methods("POST", "OPTIONS")
	router.HandleFunc("/community/room/{id}/messages", h.sendMessage).Methods("POST", "OPTIONS")
}

// @Summary List rooms
// @Description List active community rooms with the caller's join status and member counts
// @ID list-rooms
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Success 200 {object} []model.RoomView
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/rooms [get]
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	rooms, err := h.roomService.ListRooms(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, rooms)
}

type createRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// @Summary Create room
// @Description Create a community room; the creator joins automatically
// @ID create-room
// @Accept json
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param roomData body createRoomRequest true "Room Data"
// @Success 201 {object} model.Room
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/rooms [post]
func (h *RoomHandler) createRoom(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var request createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	room, err := h.roomService.CreateRoom(r.Context(), request.Name, request.Description, claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, room)
}

// @Summary Room detail
// @Description Room metadata, member roster and chronological message history
// @ID room-detail
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param id path string true "Room ID"
// @Success 200 {object} model.RoomDetail
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/room/{id} [get]
func (h *RoomHandler) getRoomDetail(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	detail, err := h.conversationService.GetRoomDetail(r.Context(), mux.Vars(r)["id"], claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, detail)
}

type joinRoomResponse struct {
	AlreadyMember bool `json:"already_member"`
}

// @Summary Join room
// @Description Join a community room; joining twice is a no-op
// @ID join-room
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param id path string true "Room ID"
// @Success 200 {object} joinRoomResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/room/{id}/join [post]
func (h *RoomHandler) joinRoom(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	alreadyMember, err := h.membershipService.Join(r.Context(), mux.Vars(r)["id"], claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, joinRoomResponse{AlreadyMember: alreadyMember})
}

// @Summary Leave room
// @Description Leave a community room; leaving a room never joined is a no-op
// @ID leave-room
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param id path string true "Room ID"
// @Success 204
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/room/{id}/leave [post]
func (h *RoomHandler) leaveRoom(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.membershipService.Leave(r.Context(), mux.Vars(r)["id"], claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// @Summary Send message
// @Description Post a message to a room the caller is a member of
// @ID send-message
// @Accept json
// @Produce json
// @Param Bearer header string true "Auth Token"
// @Param id path string true "Room ID"
// @Param messageData body sendMessageRequest true "Message Data"
// @Success 201 {object} model.Message
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 403 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 500 {object} httputils.ErrorResponse
// @Router /community/room/{id}/messages [post]
func (h *RoomHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticate(r)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var request sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	message, err := h.conversationService.PostMessage(r.Context(), mux.Vars(r)["id"], claims.UserID, request.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, message)
}

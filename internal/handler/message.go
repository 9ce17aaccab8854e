package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/einvite/einvite-go/internal/model"
	"github.com/einvite/einvite-go/internal/service"
)

// MessageHandler handles HTTP requests for guestboard operations.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// HandleSubmit handles POST /api/messages requests.
func (h *MessageHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	insert, errMsg := messageFromRequest(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse(errMsg))
		return
	}

	message, err := h.service.Submit(r.Context(), insert)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.SubmitMessageResponse{
		Message: "Message submitted successfully",
		Data:    message,
	})
}

// HandleList handles GET /api/messages requests with optional limit and
// offset query parameters.
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 0)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit parameter"))
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid offset parameter"))
		return
	}

	resp, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func messageFromRequest(req model.MessageRequest) (model.InsertMessage, string) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	content := strings.TrimSpace(req.Content)

	switch {
	case name == "":
		return model.InsertMessage{}, "name is required"
	case email == "":
		return model.InsertMessage{}, "email is required"
	case content == "":
		return model.InsertMessage{}, "content is required"
	}

	return model.InsertMessage{Name: name, Email: email, Content: content}, ""
}

// queryInt parses a non-negative integer query parameter, falling back to
// def when the parameter is absent.
func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

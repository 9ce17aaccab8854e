package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/einvite/einvite-go/internal/model"
	"github.com/einvite/einvite-go/internal/service"
)

// RsvpHandler handles HTTP requests for RSVP operations.
type RsvpHandler struct {
	service *service.RsvpService
}

// NewRsvpHandler creates a new RsvpHandler.
func NewRsvpHandler(svc *service.RsvpService) *RsvpHandler {
	return &RsvpHandler{service: svc}
}

// HandleSubmit handles POST /api/rsvp requests. Resubmitting with an email
// that already has an RSVP updates the existing record and answers 200;
// a first submission answers 201.
func (h *RsvpHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	insert, err := rsvpFromRequest(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.service.Submit(r.Context(), insert)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if result.Created {
		writeJSON(w, http.StatusCreated, model.SubmitRsvpResponse{
			Message: "RSVP submitted successfully",
			Rsvp:    result.Rsvp,
		})
		return
	}

	writeJSON(w, http.StatusOK, model.SubmitRsvpResponse{
		Message: "RSVP updated successfully",
		Rsvp:    result.Rsvp,
	})
}

// HandleList handles GET /api/rsvp requests.
func (h *RsvpHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListWithStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleFindByEmail handles GET /api/rsvp/{email} requests.
func (h *RsvpHandler) HandleFindByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("email is required"))
		return
	}

	rsvp, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrRsvpNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("No RSVP found for this email"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.FindRsvpResponse{Rsvp: rsvp})
}

// rsvpFromRequest validates the request body and shapes it into the insert
// struct the service expects. Guests may send a single name or a
// firstName/lastName pair.
func rsvpFromRequest(req model.RsvpRequest) (model.InsertRsvp, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))
	}
	if name == "" {
		return model.InsertRsvp{}, errors.New("name is required")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return model.InsertRsvp{}, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.InsertRsvp{}, errors.New("a valid email is required")
	}

	if req.Attending == nil {
		return model.InsertRsvp{}, errors.New("attending is required")
	}
	if req.GuestCount != nil && *req.GuestCount < 0 {
		return model.InsertRsvp{}, errors.New("guestCount cannot be negative")
	}

	return model.InsertRsvp{
		Name:                name,
		Email:               email,
		Attending:           *req.Attending,
		GuestCount:          req.GuestCount,
		DietaryRestrictions: strings.TrimSpace(req.DietaryRestrictions),
		Message:             strings.TrimSpace(req.Message),
	}, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/protocol7/claudebook/internal/models"
	"github.com/protocol7/claudebook/internal/services"
	"github.com/protocol7/claudebook/internal/store"
	"github.com/protocol7/claudebook/pkg/httputil"
)

// MessageHandlers handles HTTP requests for the message log.
type MessageHandlers struct {
	messageService *services.MessageService
}

// NewMessageHandlers creates a new MessageHandlers instance.
func NewMessageHandlers(messageService *services.MessageService) *MessageHandlers {
	return &MessageHandlers{messageService: messageService}
}

// HandleListMessages handles GET /messages?limit=N.
func (h *MessageHandlers) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	limit := services.NormalizeLimit(r.URL.Query().Get("limit"))

	resp, err := h.messageService.ListMessages(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleCreateMessage handles POST /messages.
func (h *MessageHandlers) HandleCreateMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(body) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "Request body is required")
		return
	}

	var req models.CreateMessageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	message, err := h.messageService.CreateMessage(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, message)
}

// HandleDeleteMessage handles DELETE /messages/{id}. The route pattern
// restricts id to digits, so a parse failure can only mean an id too
// large to ever have been assigned.
func (h *MessageHandlers) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		httputil.RespondError(w, http.StatusNotFound, "Message not found")
		return
	}

	if err := h.messageService.DeleteMessage(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, models.DeleteMessageResponse{Deleted: id})
}

// HandleClearMessages handles DELETE /messages.
func (h *MessageHandlers) HandleClearMessages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.messageService.ClearMessages(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// respondServiceError maps service errors onto the wire error envelope:
// validation failures are 400, missing delete targets 404, everything
// else an internal 500 carrying the diagnostic.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		httputil.RespondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, store.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "Message not found")
	default:
		log.Printf("ERROR [MessageHandlers] %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
	}
}

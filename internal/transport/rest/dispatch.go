package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/service/dispatch"
)

type dispatchService interface {
	Create(ctx context.Context, input dispatch.CreateInput) (*domain.Dispatch, error)
	Get(ctx context.Context, dispatchID uuid.UUID) (*domain.DispatchDetails, error)
	Update(ctx context.Context, input dispatch.UpdateInput) (*domain.Dispatch, error)
	Send(ctx context.Context, dispatchID uuid.UUID) (*domain.Dispatch, error)
	UpdateStatus(ctx context.Context, input dispatch.UpdateStatusInput) (*domain.Dispatch, error)
	Forward(ctx context.Context, input dispatch.ForwardInput) (*domain.Dispatch, error)
	Comment(ctx context.Context, input dispatch.CommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, dispatchID uuid.UUID) error
}

// DispatchHandler serves the dispatch lifecycle endpoints.
type DispatchHandler struct {
	svc dispatchService
	log *slog.Logger
}

// NewDispatchHandler creates a DispatchHandler.
func NewDispatchHandler(svc dispatchService, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{svc: svc, log: logger.With("handler", "dispatch")}
}

// Create handles POST /dispatches.
func (h *DispatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDispatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), dispatch.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		AssigneeIDs: req.AssigneeIDs,
		Files:       req.Files,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDispatchResponse(*d))
}

// Get handles GET /dispatches/{id}.
func (h *DispatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	details, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailsResponse(details))
}

// Update handles PUT /dispatches/{id}.
func (h *DispatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateDispatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Update(r.Context(), dispatch.UpdateInput{
		DispatchID:  id,
		Title:       req.Title,
		Content:     req.Content,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDispatchResponse(*d))
}

// Send handles POST /dispatches/{id}/send.
func (h *DispatchHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Send(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDispatchResponse(*d))
}

// UpdateStatus handles PUT /dispatches/{id}/status.
func (h *DispatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.UpdateStatus(r.Context(), dispatch.UpdateStatusInput{DispatchID: id, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDispatchResponse(*d))
}

// Forward handles POST /dispatches/{id}/forward.
func (h *DispatchHandler) Forward(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req forwardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Forward(r.Context(), dispatch.ForwardInput{DispatchID: id, NewAssigneeID: req.NewAssigneeID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDispatchResponse(*d))
}

// Comment handles POST /dispatches/{id}/comments.
func (h *DispatchHandler) Comment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Comment(r.Context(), dispatch.CommentInput{DispatchID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Delete handles DELETE /dispatches/{id}.
func (h *DispatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

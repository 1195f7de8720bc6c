package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/service/shelf"
)

type shelfService interface {
	Create(ctx context.Context, input shelf.CreateInput) (*domain.Shelf, error)
	ListTopLevel(ctx context.Context) ([]*domain.ShelfNode, error)
	Get(ctx context.Context, shelfID uuid.UUID) (*domain.ShelfDetails, error)
	Update(ctx context.Context, input shelf.UpdateInput) (*domain.Shelf, error)
	Delete(ctx context.Context, shelfID uuid.UUID) error
	AddDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error
	RemoveDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error
}

// ShelfHandler serves the personal shelf endpoints.
type ShelfHandler struct {
	svc shelfService
	log *slog.Logger
}

// NewShelfHandler creates a ShelfHandler.
func NewShelfHandler(svc shelfService, logger *slog.Logger) *ShelfHandler {
	return &ShelfHandler{svc: svc, log: logger.With("handler", "shelf")}
}

// Create handles POST /shelves.
func (h *ShelfHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shelfRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), shelf.CreateInput{Name: req.Name, ParentID: req.ParentID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toShelfResponse(*s))
}

// List handles GET /shelves: the caller's top-level shelves with nested children.
func (h *ShelfHandler) List(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.ListTopLevel(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]shelfTreeResponse, 0, len(roots))
	for _, n := range roots {
		resp = append(resp, toShelfTree(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /shelves/{id}.
func (h *ShelfHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, shelfDetailsResponse{
		shelfTreeResponse: toShelfTree(details.ShelfNode),
		Dispatches:        toDispatchResponses(details.Dispatches),
	})
}

// Update handles PUT /shelves/{id}.
func (h *ShelfHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req shelfRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Update(r.Context(), shelf.UpdateInput{ShelfID: id, Name: req.Name, ParentID: req.ParentID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toShelfResponse(*s))
}

// Delete handles DELETE /shelves/{id}.
func (h *ShelfHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// AddDispatch handles POST /shelves/{id}/dispatches/{dispatchID}.
func (h *ShelfHandler) AddDispatch(w http.ResponseWriter, r *http.Request) {
	shelfID, dispatchID, err := membershipIDs(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.AddDispatch(r.Context(), shelfID, dispatchID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveDispatch handles DELETE /shelves/{id}/dispatches/{dispatchID}.
func (h *ShelfHandler) RemoveDispatch(w http.ResponseWriter, r *http.Request) {
	shelfID, dispatchID, err := membershipIDs(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveDispatch(r.Context(), shelfID, dispatchID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func membershipIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	shelfID, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	dispatchID, err := pathUUID(r, "dispatchID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return shelfID, dispatchID, nil
}

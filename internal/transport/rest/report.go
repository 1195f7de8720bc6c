package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/service/report"
)

type reportService interface {
	ListDispatches(ctx context.Context, input report.ListInput) (*domain.DispatchPage, error)
	AdminListDispatches(ctx context.Context, input report.AdminListInput) (*domain.DispatchPage, error)
	MyStats(ctx context.Context) (*domain.MyStats, error)
	SystemStats(ctx context.Context, topN int) (*domain.SystemStats, error)
}

// ReportHandler serves listings and statistics.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// List handles GET /dispatches.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r)
	input := report.ListInput{
		Status:    p.Status("status"),
		Direction: domain.Direction(r.URL.Query().Get("direction")),
		Search:    p.String("search"),
		ShelfID:   p.UUID("shelf_id"),
		SortBy:    domain.SortField(r.URL.Query().Get("sort_by")),
		SortDir:   domain.SortDir(r.URL.Query().Get("sort_dir")),
		Offset:    p.Int("skip", 0),
		Limit:     p.Int("limit", 0),
	}
	if err := p.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListDispatches(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// AdminList handles GET /admin/dispatches.
func (h *ReportHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r)
	input := report.AdminListInput{
		CreatorID:  p.Int64("creator_id"),
		AssigneeID: p.Int64("assignee_id"),
		Status:     p.Status("status"),
		Search:     p.String("search"),
		SortBy:     domain.SortField(r.URL.Query().Get("sort_by")),
		SortDir:    domain.SortDir(r.URL.Query().Get("sort_dir")),
		Offset:     p.Int("skip", 0),
		Limit:      p.Int("limit", 0),
	}
	if err := p.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.AdminListDispatches(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// MyStats handles GET /dispatches/stats/my.
func (h *ReportHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.MyStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, myStatsResponse{
		Incoming:     stats.Incoming,
		Outgoing:     stats.Outgoing,
		StatusCounts: stats.StatusCounts,
	})
}

// SystemStats handles GET /dispatches/stats/system.
func (h *ReportHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r)
	topN := p.Int("limit", 0)
	if err := p.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.SystemStats(r.Context(), topN)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, systemStatsResponse{
		TotalDispatches: stats.TotalDispatches,
		StatusCounts:    stats.StatusCounts,
		TopCreators:     toActivity(stats.TopCreators),
		TopAssignees:    toActivity(stats.TopAssignees),
	})
}

package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createDispatchRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	AssigneeIDs []int64  `json:"assignee_ids"`
	Files       []string `json:"files"`
}

type updateDispatchRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	AssigneeIDs *[]int64 `json:"assignee_ids"`
}

type updateStatusRequest struct {
	Status domain.DispatchStatus `json:"status"`
}

type forwardRequest struct {
	NewAssigneeID int64 `json:"new_assignee_id"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type shelfRequest struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type dispatchResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Content     string                `json:"content"`
	Status      domain.DispatchStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	CreatorID   int64                 `json:"creator_id"`
	AssigneeIDs []int64               `json:"assignee_ids"`
}

type fileResponse struct {
	ID         uuid.UUID `json:"id"`
	DispatchID uuid.UUID `json:"dispatch_id"`
	FileURL    string    `json:"file_url"`
	Filename   string    `json:"filename"`
}

type historyResponse struct {
	ID         uuid.UUID             `json:"id"`
	DispatchID uuid.UUID             `json:"dispatch_id"`
	Action     domain.DispatchAction `json:"action"`
	Details    *string               `json:"details"`
	Timestamp  time.Time             `json:"timestamp"`
	ActorID    int64                 `json:"actor_id"`
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	DispatchID uuid.UUID `json:"dispatch_id"`
	UserID     int64     `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type shelfResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	UserID   int64      `json:"user_id"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type dispatchDetailsResponse struct {
	dispatchResponse
	Files    []fileResponse    `json:"files"`
	History  []historyResponse `json:"history"`
	Comments []commentResponse `json:"comments"`
	Shelves  []shelfResponse   `json:"shelves"`
}

type shelfTreeResponse struct {
	shelfResponse
	Children []shelfTreeResponse `json:"children"`
}

type shelfDetailsResponse struct {
	shelfTreeResponse
	Dispatches []dispatchResponse `json:"dispatches"`
}

type pageResponse struct {
	Total int                `json:"total"`
	Items []dispatchResponse `json:"items"`
}

type myStatsResponse struct {
	Incoming     int                 `json:"incoming"`
	Outgoing     int                 `json:"outgoing"`
	StatusCounts domain.StatusCounts `json:"status_counts"`
}

type activityResponse struct {
	UserID int64 `json:"user_id"`
	Count  int   `json:"count"`
}

type systemStatsResponse struct {
	TotalDispatches int                 `json:"total_dispatches"`
	StatusCounts    domain.StatusCounts `json:"status_counts"`
	TopCreators     []activityResponse  `json:"top_creators"`
	TopAssignees    []activityResponse  `json:"top_assignees"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDispatchResponse(d domain.Dispatch) dispatchResponse {
	assignees := d.AssigneeIDs
	if assignees == nil {
		assignees = []int64{}
	}
	return dispatchResponse{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		CreatorID:   d.CreatorID,
		AssigneeIDs: assignees,
	}
}

func toDispatchResponses(ds []domain.Dispatch) []dispatchResponse {
	out := make([]dispatchResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDispatchResponse(d))
	}
	return out
}

func toDetailsResponse(d *domain.DispatchDetails) dispatchDetailsResponse {
	resp := dispatchDetailsResponse{
		dispatchResponse: toDispatchResponse(d.Dispatch),
		Files:            make([]fileResponse, 0, len(d.Files)),
		History:          make([]historyResponse, 0, len(d.History)),
		Comments:         make([]commentResponse, 0, len(d.Comments)),
		Shelves:          make([]shelfResponse, 0, len(d.Shelves)),
	}
	for _, f := range d.Files {
		resp.Files = append(resp.Files, fileResponse{ID: f.ID, DispatchID: f.DispatchID, FileURL: f.FileURL, Filename: f.Filename})
	}
	for _, h := range d.History {
		resp.History = append(resp.History, historyResponse{
			ID:         h.ID,
			DispatchID: h.DispatchID,
			Action:     h.Action,
			Details:    h.Details,
			Timestamp:  h.Timestamp,
			ActorID:    h.ActorID,
		})
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	for _, s := range d.Shelves {
		resp.Shelves = append(resp.Shelves, toShelfResponse(s))
	}
	return resp
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{ID: c.ID, DispatchID: c.DispatchID, UserID: c.UserID, Content: c.Content, CreatedAt: c.CreatedAt}
}

func toShelfResponse(s domain.Shelf) shelfResponse {
	return shelfResponse{ID: s.ID, Name: s.Name, UserID: s.UserID, ParentID: s.ParentID}
}

func toShelfTree(n *domain.ShelfNode) shelfTreeResponse {
	resp := shelfTreeResponse{
		shelfResponse: toShelfResponse(n.Shelf),
		Children:      make([]shelfTreeResponse, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		resp.Children = append(resp.Children, toShelfTree(c))
	}
	return resp
}

func toPageResponse(p *domain.DispatchPage) pageResponse {
	return pageResponse{Total: p.Total, Items: toDispatchResponses(p.Items)}
}

func toActivity(list []domain.UserActivity) []activityResponse {
	out := make([]activityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, activityResponse{UserID: a.UserID, Count: a.Count})
	}
	return out
}

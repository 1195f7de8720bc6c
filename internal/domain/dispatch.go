package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dispatch is a document routed from its creator to one or more assignees.
type Dispatch struct {
	ID          uuid.UUID
	Title       string
	Content     string
	Status      DispatchStatus
	CreatedAt   time.Time
	CreatorID   int64
	AssigneeIDs []int64
}

// HasAssignee reports whether userID is among the dispatch's assignees.
func (d *Dispatch) HasAssignee(userID int64) bool {
	for _, id := range d.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// DispatchFile is an externally stored file referenced by URL.
type DispatchFile struct {
	ID         uuid.UUID
	DispatchID uuid.UUID
	FileURL    string
	Filename   string
}

// NewDispatchFile derives the filename from the last path segment of fileURL.
func NewDispatchFile(fileURL string) DispatchFile {
	name := fileURL
	if i := strings.LastIndex(fileURL, "/"); i >= 0 {
		name = fileURL[i+1:]
	}
	return DispatchFile{FileURL: fileURL, Filename: name}
}

// HistoryEntry is one append-only audit record of a dispatch mutation.
type HistoryEntry struct {
	ID         uuid.UUID
	DispatchID uuid.UUID
	Action     DispatchAction
	Details    *string
	Timestamp  time.Time
	ActorID    int64
}

// Comment is a free-text note left on a dispatch by a participant.
type Comment struct {
	ID         uuid.UUID
	DispatchID uuid.UUID
	UserID     int64
	Content    string
	CreatedAt  time.Time
}

// DispatchDetails is a dispatch with its owned collections and the caller's
// shelves that contain it.
type DispatchDetails struct {
	Dispatch
	Files    []DispatchFile
	History  []HistoryEntry
	Comments []Comment
	Shelves  []Shelf
}

// UniqueUserIDs returns ids with duplicates removed, keeping first occurrence order.
func UniqueUserIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

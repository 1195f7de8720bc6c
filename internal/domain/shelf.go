package domain

import (
	"time"

	"github.com/google/uuid"
)

// Shelf is a user-owned folder for organizing dispatches.
type Shelf struct {
	ID        uuid.UUID
	UserID    int64
	Name      string
	ParentID  *uuid.UUID
	CreatedAt time.Time
}

// ShelfNode is a shelf with its descendants nested below it.
type ShelfNode struct {
	Shelf
	Children []*ShelfNode
}

// ShelfDetails is a shelf subtree plus the dispatches filed directly on it.
type ShelfDetails struct {
	*ShelfNode
	Dispatches []Dispatch
}

// BuildShelfForest nests shelves under their parents and returns the
// parentless ones. Input order is kept among siblings.
func BuildShelfForest(shelves []Shelf) []*ShelfNode {
	byParent := groupByParent(shelves)

	roots := make([]*ShelfNode, 0)
	for _, s := range shelves {
		if s.ParentID == nil {
			roots = append(roots, buildNode(s, byParent, map[uuid.UUID]bool{}))
		}
	}
	return roots
}

// BuildShelfSubtree nests all descendants of root found in shelves.
func BuildShelfSubtree(root Shelf, shelves []Shelf) *ShelfNode {
	return buildNode(root, groupByParent(shelves), map[uuid.UUID]bool{})
}

func groupByParent(shelves []Shelf) map[uuid.UUID][]Shelf {
	byParent := make(map[uuid.UUID][]Shelf)
	for _, s := range shelves {
		if s.ParentID != nil {
			byParent[*s.ParentID] = append(byParent[*s.ParentID], s)
		}
	}
	return byParent
}

// buildNode stops at shelves already on the path; parent cycles deeper than
// one level are not prevented on write.
func buildNode(s Shelf, byParent map[uuid.UUID][]Shelf, visited map[uuid.UUID]bool) *ShelfNode {
	visited[s.ID] = true
	node := &ShelfNode{Shelf: s, Children: make([]*ShelfNode, 0)}
	for _, child := range byParent[s.ID] {
		if visited[child.ID] {
			continue
		}
		node.Children = append(node.Children, buildNode(child, byParent, visited))
	}
	return node
}

package model

import "context"

// DirectoryStore lists users annotated with viewer-relative follow state.
type DirectoryStore interface {
	List(ctx context.Context, query DirectoryQuery) ([]DirectoryItem, int, error)
}

// DirectoryQuery describes a directory page request. Term is matched as a
// case-insensitive substring of the username; a nil ViewerID means the
// caller is anonymous and sees no follow state.
type DirectoryQuery struct {
	Limit    int
	Offset   int
	Term     string
	ViewerID *int64
}

// DirectoryItem is a derived listing entry over identity, profile and
// follow state. It is never persisted.
type DirectoryItem struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Photos   ProfilePhotos `json:"photos"`
	Followed bool          `json:"followed"`
}

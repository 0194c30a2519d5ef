package entity

import "time"

// Note is owned by exactly one user; UserID is part of every lookup.
type Note struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteUpdate carries a partial edit. Nil fields are left untouched.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// Empty reports whether no field was supplied.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil && u.IsPinned == nil
}

// HasTags reports whether every tag in want is present on n.
func (n *Note) HasTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, t := range n.Tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

package domain

import "context"

// Project owns the many-to-many assignment set. Assignments carry no
// attributes of their own, so they live in a plain join table.
type Project struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:191" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Users       []User `gorm:"many2many:project_users;constraint:OnDelete:CASCADE" json:"users"`
}

func (Project) TableName() string { return "projects" }

// Equal compares all visible fields; the assignment set is compared as a
// set (order-irrelevant). Test helper only.
func (p Project) Equal(o Project) bool {
	if p.ID != o.ID || p.Name != o.Name || p.Description != o.Description {
		return false
	}
	if len(p.Users) != len(o.Users) {
		return false
	}
	byID := make(map[int64]User, len(p.Users))
	for _, u := range p.Users {
		byID[u.ID] = u
	}
	for _, u := range o.Users {
		got, ok := byID[u.ID]
		if !ok || !got.Equal(u) {
			return false
		}
	}
	return true
}

type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	// FindByID returns the project with its assignment set populated.
	FindByID(ctx context.Context, id int64) (*Project, error)
	FindByName(ctx context.Context, name string) (*Project, error)
	// List does not populate assignment sets.
	List(ctx context.Context, offset, limit int) ([]Project, error)
	// UpdateFields overwrites name and description only; the assignment
	// set is a separate relation and is never touched here.
	UpdateFields(ctx context.Context, id int64, name, description string) error
	// AssignUser adds the user to the project's assignment set. Adding an
	// already-assigned user is a no-op. Either side missing is ErrNotFound.
	AssignUser(ctx context.Context, projectID, userID int64) error
	// RemoveUser removes the assignment matching the user id, if any.
	RemoveUser(ctx context.Context, projectID, userID int64) error
	Delete(ctx context.Context, id int64) error
}

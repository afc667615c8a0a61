// Package mem is an in-memory implementation of the persistence gateway
// with the same contract as the gorm repositories: insertion-order
// listing, empty page past the end, unique indexes on user email and
// project name, join rows cleaned up when either side is deleted. It
// backs the service and handler tests so they run without a database.
package mem

import (
	"context"
	"sync"

	"otigox-task/internal/domain"
)

type projectRow struct {
	id          int64
	name        string
	description string
	userIDs     []int64
}

// Store holds both entity sets behind one mutex so cross-entity behavior
// (cascade on delete, assignment lookups) stays atomic, mirroring the
// single relational database the gorm gateway talks to.
type Store struct {
	mu         sync.Mutex
	userSeq    int64
	projectSeq int64
	users      []domain.User
	projects   []projectRow
}

func NewStore() *Store { return &Store{} }

func (s *Store) Users() domain.UserRepository       { return &userRepo{s: s} }
func (s *Store) Projects() domain.ProjectRepository { return &projectRepo{s: s} }

// duplicate-key text mimics what the relational backends report; callers
// pattern-match on "unique".
func dupe(field string) error {
	return domain.Conflict(field + " must be unique: duplicate key value violates unique constraint")
}

func window[T any](items []T, offset, limit int) []T {
	out := []T{}
	if offset < 0 || offset >= len(items) || limit <= 0 {
		return out
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return append(out, items[offset:end]...)
}

// callers hold s.mu
func (s *Store) userIdx(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) projectIdx(id int64) int {
	for i := range s.projects {
		if s.projects[i].id == id {
			return i
		}
	}
	return -1
}

func (s *Store) resolveUsers(ids []int64) []domain.User {
	out := []domain.User{}
	for _, id := range ids {
		if i := s.userIdx(id); i >= 0 {
			out = append(out, s.users[i])
		}
	}
	return out
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == u.Email {
			return dupe("email")
		}
	}
	r.s.userSeq++
	u.ID = r.s.userSeq
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.s.userIdx(id); i >= 0 {
		u := r.s.users[i]
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByName(_ context.Context, name string, offset, limit int) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matches := []domain.User{}
	for _, u := range r.s.users {
		if u.Name == name {
			matches = append(matches, u)
		}
	}
	return window(matches, offset, limit), nil
}

func (r *userRepo) FindByNameAndEmail(_ context.Context, name, email string) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matches := []domain.User{}
	for _, u := range r.s.users {
		if u.Name == name && u.Email == email {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *userRepo) List(_ context.Context, offset, limit int) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return window(r.s.users, offset, limit), nil
}

func (r *userRepo) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.userIdx(u.ID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	for i := range r.s.users {
		if r.s.users[i].Email == u.Email && r.s.users[i].ID != u.ID {
			return dupe("email")
		}
	}
	r.s.users[idx] = *u
	return nil
}

func (r *userRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.userIdx(id)
	if idx < 0 {
		return false, nil
	}
	r.s.users = append(r.s.users[:idx], r.s.users[idx+1:]...)
	// referential integrity: drop join rows pointing at the user
	for i := range r.s.projects {
		kept := r.s.projects[i].userIDs[:0]
		for _, uid := range r.s.projects[i].userIDs {
			if uid != id {
				kept = append(kept, uid)
			}
		}
		r.s.projects[i].userIDs = kept
	}
	return true, nil
}

type projectRepo struct{ s *Store }

func (r *projectRepo) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.projects {
		if r.s.projects[i].name == p.Name {
			return dupe("project name")
		}
	}
	r.s.projectSeq++
	p.ID = r.s.projectSeq
	r.s.projects = append(r.s.projects, projectRow{
		id:          p.ID,
		name:        p.Name,
		description: p.Description,
	})
	return nil
}

func (r *projectRepo) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.projectIdx(id)
	if idx < 0 {
		return nil, nil
	}
	return r.s.toProject(r.s.projects[idx]), nil
}

func (r *projectRepo) FindByName(_ context.Context, name string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.projects {
		if r.s.projects[i].name == name {
			return r.s.toProject(r.s.projects[i]), nil
		}
	}
	return nil, nil
}

func (r *projectRepo) List(_ context.Context, offset, limit int) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Project{}
	for _, row := range window(r.s.projects, offset, limit) {
		out = append(out, domain.Project{
			ID:          row.id,
			Name:        row.name,
			Description: row.description,
		})
	}
	return out, nil
}

func (r *projectRepo) UpdateFields(_ context.Context, id int64, name, description string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.projectIdx(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	for i := range r.s.projects {
		if r.s.projects[i].name == name && r.s.projects[i].id != id {
			return dupe("project name")
		}
	}
	r.s.projects[idx].name = name
	r.s.projects[idx].description = description
	return nil
}

func (r *projectRepo) AssignUser(_ context.Context, projectID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.projectIdx(projectID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if r.s.userIdx(userID) < 0 {
		return domain.ErrNotFound
	}
	for _, uid := range r.s.projects[idx].userIDs {
		if uid == userID {
			return nil
		}
	}
	r.s.projects[idx].userIDs = append(r.s.projects[idx].userIDs, userID)
	return nil
}

func (r *projectRepo) RemoveUser(_ context.Context, projectID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := r.s.projectIdx(projectID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	kept := r.s.projects[idx].userIDs[:0]
	for _, uid := range r.s.projects[idx].userIDs {
		if uid != userID {
			kept = append(kept, uid)
		}
	}
	r.s.projects[idx].userIDs = kept
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if idx := r.s.projectIdx(id); idx >= 0 {
		r.s.projects = append(r.s.projects[:idx], r.s.projects[idx+1:]...)
	}
	return nil
}

// caller holds s.mu
func (s *Store) toProject(row projectRow) *domain.Project {
	return &domain.Project{
		ID:          row.id,
		Name:        row.name,
		Description: row.description,
		Users:       s.resolveUsers(row.userIDs),
	}
}

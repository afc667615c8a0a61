package service

import (
	"context"

	"otigox-task/internal/domain"
)

type ProjectService struct {
	repo domain.ProjectRepository
}

func NewProjectService(repo domain.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	p := &domain.Project{Name: name}
	if description != nil {
		p.Description = *description
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Users = []domain.User{}
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Users == nil {
		p.Users = []domain.User{}
	}
	return p, nil
}

// List intentionally leaves every assignment set empty; only a fetch by id
// populates users.
func (s *ProjectService) List(ctx context.Context, page, size int) ([]domain.Project, error) {
	offset, limit := pageWindow(page, size)
	projects, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	for i := range projects {
		projects[i].Users = []domain.User{}
	}
	return projects, nil
}

func (s *ProjectService) FindByName(ctx context.Context, name string) (*domain.Project, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Users == nil {
		p.Users = []domain.User{}
	}
	return p, nil
}

// Update is a partial merge: name and description are overwritten only
// when present, and the assignment set is never part of an update. A
// project update can therefore never empty its users.
func (s *ProjectService) Update(ctx context.Context, id int64, name, description *string) (*domain.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	newName, newDesc := p.Name, p.Description
	if name != nil {
		newName = *name
	}
	if description != nil {
		newDesc = *description
	}
	if err := s.repo.UpdateFields(ctx, id, newName, newDesc); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProjectService) Assign(ctx context.Context, projectID, userID int64) error {
	return s.repo.AssignUser(ctx, projectID, userID)
}

func (s *ProjectService) Remove(ctx context.Context, projectID, userID int64) error {
	return s.repo.RemoveUser(ctx, projectID, userID)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

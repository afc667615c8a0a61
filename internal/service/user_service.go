package service

import (
	"context"

	"otigox-task/internal/domain"
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// pageWindow applies the listing defaults (page 0, size 10) and turns the
// zero-based page index into an offset.
func pageWindow(page, size int) (offset, limit int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return page * size, size
}

func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	u := &domain.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, page, size int) ([]domain.User, error) {
	offset, limit := pageWindow(page, size)
	users, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) FindByName(ctx context.Context, name string, page, size int) ([]domain.User, error) {
	offset, limit := pageWindow(page, size)
	users, err := s.repo.FindByName(ctx, name, offset, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *UserService) FindByNameAndEmail(ctx context.Context, name, email string) ([]domain.User, error) {
	users, err := s.repo.FindByNameAndEmail(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Replace persists the incoming payload wholesale under the given id.
// Omitted fields are wiped, which is what distinguishes PUT from PATCH.
func (s *UserService) Replace(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	u := &domain.User{ID: id, Name: name, Email: email}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Patch overwrites only the fields present in the request. Absence means
// "leave as-is", never "set to empty".
func (s *UserService) Patch(ctx context.Context, id int64, name, email *string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if email != nil {
		u.Email = *email
	}
	if name != nil {
		u.Name = *name
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

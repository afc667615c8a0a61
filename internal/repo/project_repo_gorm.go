package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"otigox-task/internal/domain"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	return dupErr(r.db.WithContext(ctx).Create(p).Error, "project name")
}

func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).Preload("Users").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) FindByName(ctx context.Context, name string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).Preload("Users").First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) List(ctx context.Context, offset, limit int) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Order("id").Offset(offset).Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepo) UpdateFields(ctx context.Context, id int64, name, description string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Project{ID: id}).
		Updates(map[string]any{"name": name, "description": description}).Error
	return dupErr(err, "project name")
}

// AssignUser locks the owning project row for the duration of the
// transaction so a concurrent assignment serialized after our read cannot
// be lost. Append on a many-to-many is an upsert, so re-assigning is a
// no-op rather than a duplicate.
func (r *ProjectRepo) AssignUser(ctx context.Context, projectID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		var u domain.User
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		return tx.Model(&p).Association("Users").Append(&u)
	})
}

// RemoveUser matches the assignment by user id. Removing a user that is
// not assigned is a no-op, not an error.
func (r *ProjectRepo) RemoveUser(ctx context.Context, projectID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		return tx.Model(&p).Association("Users").Delete(&domain.User{ID: userID})
	})
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	// Select(Associations) clears the join rows together with the project.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&domain.Project{ID: id}).Error
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"otigox-task/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return dupErr(r.db.WithContext(ctx).Create(u).Error, "email")
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByName(ctx context.Context, name string, offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id").Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepo) FindByNameAndEmail(ctx context.Context, name, email string) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("name = ? AND email = ?", name, email).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Order("id").Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	return dupErr(r.db.WithContext(ctx).Save(u).Error, "email")
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	return res.RowsAffected > 0, res.Error
}

package domain

import "context"

type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:64" json:"name"`
	Email string `gorm:"uniqueIndex;size:191" json:"email"`
}

func (User) TableName() string { return "users" }

// Equal compares all visible fields. Used by tests to compare created
// against retrieved entities, not for identity.
func (u User) Equal(o User) bool {
	return u.ID == o.ID && u.Name == o.Name && u.Email == o.Email
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByName(ctx context.Context, name string, offset, limit int) ([]User, error)
	FindByNameAndEmail(ctx context.Context, name, email string) ([]User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Update(ctx context.Context, u *User) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

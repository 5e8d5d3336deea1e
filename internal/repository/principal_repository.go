package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/model"
)

// PrincipalRepository persists one principal variant. The admin and user
// implementations are backed by disjoint tables; the auth service is written
// once against this interface and instantiated per variant.
type PrincipalRepository interface {
	Create(ctx context.Context, p *model.Principal) error
	FindByEmail(ctx context.Context, email string) (*model.Principal, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a repository over the admins table.
func NewAdminRepository(db *gorm.DB) PrincipalRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin. A unique-index violation on email surfaces as
// gorm.ErrDuplicatedKey.
func (r *adminRepository) Create(ctx context.Context, p *model.Principal) error {
	admin := model.Admin{Principal: *p}
	if err := r.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	*p = admin.Principal
	return nil
}

// FindByEmail finds an admin by email.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Principal, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin.Principal, nil
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository over the users table.
func NewUserRepository(db *gorm.DB) PrincipalRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A unique-index violation on email surfaces as
// gorm.ErrDuplicatedKey.
func (r *userRepository) Create(ctx context.Context, p *model.Principal) error {
	user := model.User{Principal: *p}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}
	*p = user.Principal
	return nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.Principal, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user.Principal, nil
}

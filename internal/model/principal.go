package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the shape shared by both authenticated identity variants.
// Admins and users live in disjoint tables and are never unified; the same
// email may exist once per variant.
type Principal struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Principal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Admin is a course-creating principal.
type Admin struct {
	Principal
}

// User is a course-buying principal.
type User struct {
	Principal
}

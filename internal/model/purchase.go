package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is an append-only record of a user buying a course. The compound
// unique index makes the at-most-one-purchase-per-pair invariant a storage
// guarantee rather than a best-effort application check.
type Purchase struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_user_course"`
	CourseID  uuid.UUID `json:"courseId" gorm:"type:char(36);not null;uniqueIndex:idx_user_course"`
	Course    *Course   `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

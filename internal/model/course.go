package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseImage points at the externally stored course image. Both fields come
// from the object-storage collaborator and are required.
type CourseImage struct {
	ExternalID string `json:"public_id" gorm:"column:image_external_id;size:255;not null"`
	URL        string `json:"url" gorm:"column:image_url;size:512;not null"`
}

// Course is a purchasable course. CreatorID anchors ownership: only the
// admin that created a course may update or delete it.
type Course struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string      `json:"title" gorm:"size:255;not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	Price       float64     `json:"price" gorm:"not null"`
	Image       CourseImage `json:"image" gorm:"embedded"`
	CreatorID   uuid.UUID   `json:"creatorId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

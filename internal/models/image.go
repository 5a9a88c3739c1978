package models

import (
	"time"
)

// Image is the stored handle for an Imgur-hosted attachment. The deletehash
// is what lets us retire the remote file later; it never leaves the server.
type Image struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	URL        string    `gorm:"not null" json:"url"`
	PublicID   string    `gorm:"size:32" json:"publicId"`
	DeleteHash string    `gorm:"size:32" json:"-"`
	UploadedBy uint      `gorm:"index" json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

package models

import (
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:2000;not null" json:"description"`
	AuthorID    uint      `gorm:"not null;index" json:"authorId"`
	Author      User      `json:"author"`
	Likes       int       `gorm:"default:0" json:"likes"`
	LikedBy     []User    `gorm:"many2many:post_likes" json:"likedBy"`
	ImageID     *uint     `json:"imageId,omitempty"`
	Image       *Image    `json:"image,omitempty"`
	Comments    []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Rendered markdown, filled on reads, never stored.
	DescriptionHTML string `gorm:"-" json:"descriptionHtml,omitempty"`
}

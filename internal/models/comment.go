package models

import (
	"time"
)

// Sentiment labels. Unknown is what the classifier reports when it had to
// degrade; it is resolved to a real sentiment before persistence and never
// reaches the database.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
	SentimentUnknown  = "Unknown"
)

type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"size:500;not null" json:"content"`
	Sentiment string         `gorm:"size:20;not null" json:"sentiment"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	User      User           `json:"user"`
	PostID    uint           `gorm:"not null;index" json:"postId"`
	Replies   []CommentReply `gorm:"foreignKey:CommentID" json:"replies"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type CommentReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:500;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `json:"user"`
	CommentID uint      `gorm:"not null;index" json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

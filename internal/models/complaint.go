package models

import (
	"time"
)

// Complaint severity labels, also the candidate set sent to the zero-shot
// classifier.
const (
	SeverityModerate = "Moderate"
	SeverityHigh     = "High"
	SeverityUrgent   = "Urgent"
)

// Complaint lifecycle. open is initial, resolved is terminal; there is no
// reopening.
const (
	ComplaintOpen     = "open"
	ComplaintResolved = "resolved"
)

type UserComplaint struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	OrderID     string           `gorm:"size:50;not null" json:"orderId"`
	ProductType string           `gorm:"size:100;not null" json:"productType"`
	Description string           `gorm:"size:1000;not null" json:"description"`
	UserID      uint             `gorm:"not null;index" json:"userId"`
	User        User             `json:"user"`
	Severity    string           `gorm:"size:20;default:'Moderate';not null" json:"severity"`
	Status      string           `gorm:"size:20;default:'open';not null" json:"status"`
	Replies     []ComplaintReply `gorm:"foreignKey:ComplaintID" json:"replies"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type ComplaintReply struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"size:500;not null" json:"content"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	User        User      `json:"user"`
	ComplaintID uint      `gorm:"not null;index" json:"complaintId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

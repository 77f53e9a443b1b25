package models

import "gorm.io/gorm"

// Notification types, one per domain event
const (
	NotificationEnrollment = "ENROLLMENT"
	NotificationAssignment = "ASSIGNMENT"
	NotificationSubmission = "SUBMISSION"
	NotificationGrade      = "GRADE"
)

// Notification rows are created by the notifier only, never directly by a client.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Type    string `json:"type"`
	Content string `json:"content"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
	User    User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

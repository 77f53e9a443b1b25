package models

import (
	"time"

	"gorm.io/gorm"
)

type Assignment struct {
	gorm.Model
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      time.Time `json:"due_date"`
	Course       Course    `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

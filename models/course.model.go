package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"` // e.g. "8 weeks"
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	IsDeleted   bool   `gorm:"default:false"`
	Teacher     User   `json:"-" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
}

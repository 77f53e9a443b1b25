package models

import "gorm.io/gorm"

type Material struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
	Course   Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

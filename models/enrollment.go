package models

import (
	"gorm.io/gorm"
)

type Enrollment struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"not null;uniqueIndex:idx_student_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_student_course"`
	Student   User   `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course    Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

type Submission struct {
	gorm.Model
	AssignmentID uint       `json:"assignment_id" gorm:"not null;uniqueIndex:idx_assignment_student"`
	StudentID    uint       `json:"student_id" gorm:"not null;uniqueIndex:idx_assignment_student"`
	Content      string     `json:"content"`
	FileURL      string     `json:"file_url"`
	Assignment   Assignment `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
	Student      User       `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

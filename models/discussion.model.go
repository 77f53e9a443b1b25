package models

import "gorm.io/gorm"

type Discussion struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id" gorm:"index"` // nil for top-level posts
	Course   Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

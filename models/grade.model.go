package models

import "gorm.io/gorm"

type Grade struct {
	gorm.Model
	SubmissionID uint       `json:"submission_id" gorm:"uniqueIndex;not null"`
	Grade        int        `json:"grade"` // 0-100, validated before insert
	Feedback     string     `json:"feedback"`
	Submission   Submission `json:"-" gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

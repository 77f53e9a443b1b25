package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type User struct {
	gorm.Model
	ProfileImage    string     `gorm:"default:''"`
	Name            string     `gorm:"default:''"`
	Email           string     `gorm:"uniqueIndex;not null"`
	Role            string     `gorm:"not null"` // TEACHER or STUDENT, fixed at signup
	Password        string     `gorm:"not null" json:"-"`
	IsEmailVerified bool       `gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `gorm:"default:false"`
}

package notifier

import (
	"fmt"
	"log"

	"lms/models"

	"gorm.io/gorm"
)

// Pusher is the live-delivery side of the notifier; satisfied by realtime.Hub.
type Pusher interface {
	Push(userID uint, payload interface{}) bool
}

// Service turns domain events into persisted notifications plus a
// best-effort push. The row is written first, so a missed push still
// leaves the notification readable through the listing endpoint.
type Service struct {
	db  *gorm.DB
	hub Pusher
}

func New(db *gorm.DB, hub Pusher) *Service {
	return &Service{db: db, hub: hub}
}

// std is the process-wide notifier, created once at startup. The connection
// hub is only reachable through it, never directly from controllers.
var std *Service

// Init wires the default notifier. Called from main and from test setup.
func Init(db *gorm.DB, hub Pusher) {
	std = New(db, hub)
}

// Default returns the notifier configured by Init.
func Default() *Service {
	return std
}

// pushMessage is the frame shape sent over a live connection.
type pushMessage struct {
	Type string               `json:"type"`
	Data *models.Notification `json:"data"`
}

// Notify persists a notification and attempts delivery. Delivery failure is
// not an error; only the insert failing is.
func (s *Service) Notify(userID uint, notifType, content string) (*models.Notification, error) {
	notification := models.Notification{
		UserID:  userID,
		Type:    notifType,
		Content: content,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}

	s.hub.Push(userID, pushMessage{Type: "notification", Data: &notification})

	return &notification, nil
}

// NotifyEnrollment tells the student their enrollment went through.
func (s *Service) NotifyEnrollment(studentID uint, courseTitle string) {
	content := fmt.Sprintf("You are now enrolled in %q.", courseTitle)
	if _, err := s.Notify(studentID, models.NotificationEnrollment, content); err != nil {
		log.Printf("Failed to create enrollment notification for user %d: %v", studentID, err)
	}
}

// NotifyNewAssignment fans one notification out per enrolled student.
// The batch is not atomic: a failure mid-iteration leaves the earlier
// notifications in place and skips the rest of that student only.
func (s *Service) NotifyNewAssignment(courseID uint, courseTitle, assignmentTitle string) {
	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		log.Printf("Failed to load enrollments for assignment fan-out (course %d): %v", courseID, err)
		return
	}

	content := fmt.Sprintf("New assignment %q in %q.", assignmentTitle, courseTitle)
	for _, enrollment := range enrollments {
		if _, err := s.Notify(enrollment.StudentID, models.NotificationAssignment, content); err != nil {
			log.Printf("Failed to create assignment notification for user %d: %v", enrollment.StudentID, err)
		}
	}
}

// NotifySubmission tells the course teacher a student handed something in.
func (s *Service) NotifySubmission(teacherID uint, studentName, assignmentTitle string) {
	content := fmt.Sprintf("%s submitted %q.", studentName, assignmentTitle)
	if _, err := s.Notify(teacherID, models.NotificationSubmission, content); err != nil {
		log.Printf("Failed to create submission notification for user %d: %v", teacherID, err)
	}
}

// NotifyGrade tells the student their submission was graded.
func (s *Service) NotifyGrade(studentID uint, assignmentTitle string, grade int) {
	content := fmt.Sprintf("Your submission for %q was graded: %d/100.", assignmentTitle, grade)
	if _, err := s.Notify(studentID, models.NotificationGrade, content); err != nil {
		log.Printf("Failed to create grade notification for user %d: %v", studentID, err)
	}
}

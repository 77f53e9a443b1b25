package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the assignment due-date reminder scheduler
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing assignment reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind students about assignments due soon
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily assignment reminder check...")
		ProcessDueAssignments()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Scheduler started - runs daily at 9 AM")
}

// ProcessDueAssignments emails every enrolled student who has not submitted
// an assignment that is due within the next 48 hours.
func ProcessDueAssignments() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var dueAssignments []models.Assignment
	if err := db.
		Where("due_date BETWEEN ? AND ?", now, twoDaysFromNow).
		Preload("Course").
		Find(&dueAssignments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching due assignments: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d assignments due soon", len(dueAssignments))

	for _, assignment := range dueAssignments {
		var enrollments []models.Enrollment
		if err := db.
			Where("course_id = ?", assignment.CourseID).
			Preload("Student").
			Find(&enrollments).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching enrollments for course %d: %v", assignment.CourseID, err)
			continue
		}

		for _, enrollment := range enrollments {
			var submitted int64
			db.Model(&models.Submission{}).
				Where("assignment_id = ? AND student_id = ?", assignment.ID, enrollment.StudentID).
				Count(&submitted)
			if submitted > 0 {
				continue
			}

			SendAssignmentReminderEmail(
				enrollment.Student.Email,
				enrollment.Student.Name,
				assignment.Title,
				assignment.Course.Title,
				assignment.DueDate.Format("Jan 2, 2006 at 3:04 PM"),
			)
		}
	}
}

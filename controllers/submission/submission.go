package submissionController

import (
	"errors"

	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	"lms/notifier"
	submissionValidator "lms/validators/submission"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSubmission records a student's answer to an assignment. The student
// must be enrolled in the assignment's course and can submit at most once.
func CreateSubmission(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(uint)
	reqData := c.Locals("validatedSubmission").(*submissionValidator.CreateSubmissionRequest)

	db := database.Database.Db

	var assignment models.Assignment
	if err := db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	if !guard.IsEnrolledStudent(db, identity.UserID, assignment.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	// Check for an existing submission
	var existing models.Submission
	if err := db.Where("assignment_id = ? AND student_id = ?", assignmentID, identity.UserID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this assignment!", nil)
	}

	submission := models.Submission{
		AssignmentID: assignmentID,
		StudentID:    identity.UserID,
		Content:      reqData.Content,
		FileURL:      reqData.FileURL,
	}

	// The unique (assignment_id, student_id) index backstops the race
	// between the check above and this insert.
	if err := db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this assignment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	var course models.Course
	if err := db.First(&course, assignment.CourseID).Error; err == nil {
		var student models.User
		db.First(&student, identity.UserID)
		notifier.Default().NotifySubmission(course.TeacherID, student.Name, assignment.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully.", submission)
}

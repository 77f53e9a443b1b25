package assignmentController

import (
	"errors"
	"log"

	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	"lms/notifier"
	assignmentValidator "lms/validators/assignment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateAssignment creates an assignment in a course owned by the caller and
// fans a notification out to every enrolled student.
func CreateAssignment(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedAssignment").(*assignmentValidator.CreateAssignmentRequest)

	db := database.Database.Db

	course, err := guard.FindCourse(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.IsTeacherOwner(identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course teacher can create assignments!", nil)
	}

	assignment := models.Assignment{
		CourseID:     courseID,
		Title:        reqData.Title,
		Instructions: reqData.Instructions,
		DueDate:      reqData.ParsedDueDate,
	}

	if err := db.Create(&assignment).Error; err != nil {
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	notifier.Default().NotifyNewAssignment(courseID, course.Title, assignment.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully.", assignment)
}

// GetAssignmentDetail returns the assignment with its submissions. The owning
// teacher sees every submission with student identity and grade; an enrolled
// student sees only their own. 404 is reported before any permission check.
func GetAssignmentDetail(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(uint)
	db := database.Database.Db

	var assignment models.Assignment
	if err := db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	course, err := guard.FindCourse(db, assignment.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.CanAccessCourse(db, identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this assignment!", nil)
	}

	query := db.Where("assignment_id = ?", assignment.ID).Preload("Student")
	if !guard.IsTeacherOwner(identity, course) {
		// Students only ever see their own submission
		query = query.Where("student_id = ?", identity.UserID)
	}

	var submissions []models.Submission
	if err := query.Order("created_at asc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	submissionViews := make([]fiber.Map, 0, len(submissions))
	for _, submission := range submissions {
		view := fiber.Map{
			"id":           submission.ID,
			"content":      submission.Content,
			"file_url":     submission.FileURL,
			"submitted_at": submission.CreatedAt,
			"student": fiber.Map{
				"id":    submission.Student.ID,
				"name":  submission.Student.Name,
				"email": submission.Student.Email,
			},
		}

		var grade models.Grade
		err := db.Where("submission_id = ?", submission.ID).First(&grade).Error
		switch {
		case err == nil:
			view["grade"] = grade
		case errors.Is(err, gorm.ErrRecordNotFound):
			view["grade"] = nil
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch grade!", nil)
		}

		submissionViews = append(submissionViews, view)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully.", fiber.Map{
		"assignment":   assignment,
		"course_title": course.Title,
		"submissions":  submissionViews,
	})
}

// GetUserAssignments lists assignments scoped to the caller: a student gets
// assignments across enrolled courses with their own submission status, a
// teacher gets assignments across owned courses with submission counts.
func GetUserAssignments(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	if identity.Role == models.RoleTeacher {
		var assignments []models.Assignment
		if err := db.
			Joins("JOIN courses ON courses.id = assignments.course_id").
			Where("courses.teacher_id = ? AND courses.is_deleted = ?", identity.UserID, false).
			Preload("Course").
			Order("assignments.due_date asc").
			Find(&assignments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
		}

		response := make([]fiber.Map, 0, len(assignments))
		for _, assignment := range assignments {
			var submissionCount int64
			db.Model(&models.Submission{}).Where("assignment_id = ?", assignment.ID).Count(&submissionCount)
			response = append(response, fiber.Map{
				"assignment":       assignment,
				"course_title":     assignment.Course.Title,
				"submission_count": submissionCount,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully.", response)
	}

	var assignments []models.Assignment
	if err := db.
		Joins("JOIN enrollments ON enrollments.course_id = assignments.course_id").
		Where("enrollments.student_id = ?", identity.UserID).
		Preload("Course").
		Order("assignments.due_date asc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	response := make([]fiber.Map, 0, len(assignments))
	for _, assignment := range assignments {
		var submission models.Submission
		submitted := db.Where("assignment_id = ? AND student_id = ?", assignment.ID, identity.UserID).
			First(&submission).Error == nil
		response = append(response, fiber.Map{
			"assignment":   assignment,
			"course_title": assignment.Course.Title,
			"submitted":    submitted,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully.", response)
}

package gradeController

import (
	"errors"

	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	"lms/notifier"
	gradeValidator "lms/validators/grade"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateGrade grades a submission. Only the teacher who owns the submission's
// course may grade, the value is an integer in [0,100], and a submission can
// be graded at most once.
func CreateGrade(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := c.Locals("submissionID").(uint)
	reqData := c.Locals("validatedGrade").(*gradeValidator.CreateGradeRequest)

	db := database.Database.Db

	var submission models.Submission
	if err := db.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submission!", nil)
	}

	var assignment models.Assignment
	if err := db.First(&assignment, submission.AssignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	course, err := guard.FindCourse(db, assignment.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.IsTeacherOwner(identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course teacher can grade submissions!", nil)
	}

	// Check for an existing grade
	var existing models.Grade
	if err := db.Where("submission_id = ?", submissionID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This submission has already been graded!", nil)
	}

	grade := models.Grade{
		SubmissionID: submissionID,
		Grade:        *reqData.Grade,
		Feedback:     reqData.Feedback,
	}

	// The unique submission_id index rejects the concurrent second grader.
	if err := db.Create(&grade).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This submission has already been graded!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	notifier.Default().NotifyGrade(submission.StudentID, assignment.Title, grade.Grade)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submission graded successfully.", grade)
}

// gradeRow is the flat shape scanned out of the grade list joins.
type gradeRow struct {
	GradeID         uint   `json:"grade_id"`
	Grade           int    `json:"grade"`
	Feedback        string `json:"feedback"`
	AssignmentID    uint   `json:"assignment_id"`
	AssignmentTitle string `json:"assignment_title"`
	CourseTitle     string `json:"course_title"`
	StudentID       uint   `json:"student_id"`
	StudentName     string `json:"student_name"`
}

// GetUserGrades lists grades scoped to the caller: a student sees their own
// grades, a teacher sees every grade across their owned courses.
func GetUserGrades(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	query := db.Model(&models.Grade{}).
		Select(`grades.id as grade_id, grades.grade, grades.feedback,
			assignments.id as assignment_id, assignments.title as assignment_title,
			courses.title as course_title,
			users.id as student_id, users.name as student_name`).
		Joins("JOIN submissions ON submissions.id = grades.submission_id").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Joins("JOIN users ON users.id = submissions.student_id").
		Order("grades.created_at desc")

	if identity.Role == models.RoleTeacher {
		query = query.Where("courses.teacher_id = ?", identity.UserID)
	} else {
		query = query.Where("submissions.student_id = ?", identity.UserID)
	}

	var rows []gradeRow
	if err := query.Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch grades!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grades fetched successfully.", rows)
}

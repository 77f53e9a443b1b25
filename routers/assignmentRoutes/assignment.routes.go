package assignmentRoutes

import (
	assignmentController "lms/controllers/assignment"
	gradeController "lms/controllers/grade"
	submissionController "lms/controllers/submission"
	"lms/middleware"
	"lms/models"
	assignmentValidator "lms/validators/assignment"
	gradeValidator "lms/validators/grade"
	submissionValidator "lms/validators/submission"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up assignment, submission and grading routes
func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/assignment", middleware.JWTMiddleware)

	assignmentGroup.Get("/:id", assignmentValidator.AssignmentID(), assignmentController.GetAssignmentDetail)
	assignmentGroup.Post("/:id/submission", middleware.RequireRole(models.RoleStudent), assignmentValidator.AssignmentID(), submissionValidator.CreateSubmission(), submissionController.CreateSubmission)

	submissionGroup := app.Group("/submission", middleware.JWTMiddleware)

	submissionGroup.Post("/:id/grade", middleware.RequireRole(models.RoleTeacher), gradeValidator.SubmissionID(), gradeValidator.CreateGrade(), gradeController.CreateGrade)
}

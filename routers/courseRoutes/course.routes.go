package courseRoutes

import (
	assignmentController "lms/controllers/assignment"
	courseController "lms/controllers/course"
	discussionController "lms/controllers/discussion"
	materialController "lms/controllers/material"
	"lms/middleware"
	"lms/models"
	assignmentValidator "lms/validators/assignment"
	courseValidator "lms/validators/course"
	discussionValidator "lms/validators/discussion"
	materialValidator "lms/validators/material"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course-scoped routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	// Course creation and listing
	courseGroup.Post("/", middleware.RequireRole(models.RoleTeacher), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Get("/list", courseController.GetCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), courseController.GetCourseDetail)
	courseGroup.Get("/:id/students", courseValidator.CourseID(), courseController.GetCourseStudents)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.RequireRole(models.RoleStudent), courseValidator.CourseID(), courseController.EnrollInCourse)

	// Assignments
	courseGroup.Post("/:id/assignment", middleware.RequireRole(models.RoleTeacher), courseValidator.CourseID(), assignmentValidator.CreateAssignment(), assignmentController.CreateAssignment)

	// Discussion board
	courseGroup.Post("/:id/discussion", courseValidator.CourseID(), discussionValidator.CreateDiscussion(), discussionController.CreateDiscussion)
	courseGroup.Get("/:id/discussions", courseValidator.CourseID(), discussionController.GetCourseDiscussions)

	// Course materials
	courseGroup.Post("/:id/material", middleware.RequireRole(models.RoleTeacher), courseValidator.CourseID(), materialValidator.CreateMaterial(), materialController.CreateMaterial)
	courseGroup.Get("/:id/materials", courseValidator.CourseID(), materialController.GetCourseMaterials)
}

package userRoutes

import (
	assignmentController "lms/controllers/assignment"
	authController "lms/controllers/auth"
	courseController "lms/controllers/course"
	gradeController "lms/controllers/grade"
	notificationController "lms/controllers/notification"
	"lms/middleware"
	notificationValidator "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the caller-scoped listing routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", authController.Profile)
	userGroup.Get("/enrollments", courseController.GetEnrollments)
	userGroup.Get("/assignments", assignmentController.GetUserAssignments)
	userGroup.Get("/grades", gradeController.GetUserGrades)

	userGroup.Get("/notifications", notificationController.GetNotifications)
	userGroup.Get("/notifications/unread/count", notificationController.GetUnreadCount)
	userGroup.Patch("/notifications/:id/read", notificationValidator.NotificationID(), notificationController.MarkNotificationRead)
}

package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/send/otp", authValidator.SendOTP(), authController.SendOTP)
	authGroup.Patch("/verify/otp", authValidator.VerifyOTP(), authController.VerifyOTP)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistoryList)
}

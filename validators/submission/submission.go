package submissionValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateSubmissionRequest struct {
	Content string `json:"content" validate:"required"`
	FileURL string `json:"file_url" validate:"omitempty,url"`
}

// CreateSubmission validator middleware
func CreateSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Content = strings.TrimSpace(reqData.Content)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

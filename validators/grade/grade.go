package gradeValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateGradeRequest struct {
	Grade    *int   `json:"grade" validate:"required,gte=0,lte=100"`
	Feedback string `json:"feedback"`
}

// CreateGrade validator middleware. The grade must be an integer in [0,100];
// a pointer distinguishes a missing grade from a legitimate zero.
func CreateGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGradeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}

// SubmissionID validates the :id path parameter and stores it as a uint
func SubmissionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		submissionIDStr := strings.TrimSpace(c.Params("id"))
		if submissionIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Submission ID is required!", nil)
		}

		submissionID, err := strconv.Atoi(submissionIDStr)
		if err != nil || submissionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		c.Locals("submissionID", uint(submissionID))
		return c.Next()
	}
}

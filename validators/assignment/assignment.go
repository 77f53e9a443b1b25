package assignmentValidator

import (
	"strconv"
	"strings"
	"time"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateAssignmentRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Instructions string `json:"instructions"`
	DueDate      string `json:"due_date" validate:"required"`

	ParsedDueDate time.Time `json:"-"`
}

// CreateAssignment validator middleware
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		if reqData.DueDate != "" {
			dueDate, err := time.Parse(time.RFC3339, reqData.DueDate)
			if err != nil {
				errors["due_date"] = "due_date must be an RFC3339 timestamp!"
			} else {
				reqData.ParsedDueDate = dueDate
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// AssignmentID validates the :id path parameter and stores it as a uint
func AssignmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignmentIDStr := strings.TrimSpace(c.Params("id"))
		if assignmentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Assignment ID is required!", nil)
		}

		assignmentID, err := strconv.Atoi(assignmentIDStr)
		if err != nil || assignmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assignment ID!", nil)
		}

		c.Locals("assignmentID", uint(assignmentID))
		return c.Next()
	}
}

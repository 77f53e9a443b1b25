package discussionValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateDiscussionRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID *uint  `json:"parent_id"`
}

// CreateDiscussion validator middleware
func CreateDiscussion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDiscussionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Content = strings.TrimSpace(reqData.Content)

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if reqData.ParentID != nil && *reqData.ParentID == 0 {
			errors["parent_id"] = "Invalid parent discussion ID!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDiscussion", reqData)
		return c.Next()
	}
}

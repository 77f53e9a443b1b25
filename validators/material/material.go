package materialValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateMaterialRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=2"`
	FileURL  string `json:"file_url" form:"file_url" validate:"omitempty,url"`
	FileType string `json:"file_type" form:"file_type"`
}

// CreateMaterial validator middleware. Accepts JSON with an external file_url
// or a multipart form carrying the file itself; the controller handles the upload.
func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMaterialRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

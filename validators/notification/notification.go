package notificationValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the :id path parameter and stores it as a uint
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		notificationIDStr := strings.TrimSpace(c.Params("id"))
		if notificationIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Notification ID is required!", nil)
		}

		notificationID, err := strconv.Atoi(notificationIDStr)
		if err != nil || notificationID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Notification ID!", nil)
		}

		c.Locals("notificationID", uint(notificationID))
		return c.Next()
	}
}

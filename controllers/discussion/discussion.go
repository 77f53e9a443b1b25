package discussionController

import (
	"errors"

	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	discussionValidator "lms/validators/discussion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateDiscussion posts to a course discussion board. The poster must be the
// course's teacher or an enrolled student; replies must reference a parent in
// the same course.
func CreateDiscussion(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedDiscussion").(*discussionValidator.CreateDiscussionRequest)

	db := database.Database.Db

	course, err := guard.FindCourse(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.CanAccessCourse(db, identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	}

	if reqData.ParentID != nil {
		var parent models.Discussion
		if err := db.First(&parent, *reqData.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ValidationErrorResponse(c, map[string]string{"parent_id": "Parent discussion not found!"})
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch parent discussion!", nil)
		}
		if parent.CourseID != courseID {
			return middleware.ValidationErrorResponse(c, map[string]string{"parent_id": "Parent discussion belongs to another course!"})
		}
		// Threads are one level deep; a reply cannot be a parent
		if parent.ParentID != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"parent_id": "Replies can only target a top-level discussion!"})
		}
	}

	discussion := models.Discussion{
		CourseID: courseID,
		UserID:   identity.UserID,
		Content:  reqData.Content,
		ParentID: reqData.ParentID,
	}

	if err := db.Create(&discussion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post discussion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Discussion posted successfully.", discussion)
}

// GetCourseDiscussions returns the course board as top-level posts with
// nested replies, oldest first.
func GetCourseDiscussions(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	course, err := guard.FindCourse(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.CanAccessCourse(db, identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	}

	var discussions []models.Discussion
	if err := db.Where("course_id = ?", courseID).Preload("User").
		Order("created_at asc").Find(&discussions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discussions!", nil)
	}

	// Single pass to group replies under their parents
	replies := make(map[uint][]fiber.Map)
	var topLevel []fiber.Map
	for _, discussion := range discussions {
		view := fiber.Map{
			"id":          discussion.ID,
			"content":     discussion.Content,
			"author_id":   discussion.UserID,
			"author_name": discussion.User.Name,
			"author_role": discussion.User.Role,
			"created_at":  discussion.CreatedAt,
		}
		if discussion.ParentID != nil {
			replies[*discussion.ParentID] = append(replies[*discussion.ParentID], view)
		} else {
			topLevel = append(topLevel, view)
		}
	}
	for _, view := range topLevel {
		id := view["id"].(uint)
		if nested, ok := replies[id]; ok {
			view["replies"] = nested
		} else {
			view["replies"] = []fiber.Map{}
		}
	}
	if topLevel == nil {
		topLevel = []fiber.Map{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussions fetched successfully.", topLevel)
}

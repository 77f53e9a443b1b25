package materialController

import (
	"log"
	"path/filepath"
	"strings"

	"lms/config"
	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	materialValidator "lms/validators/material"

	"github.com/gofiber/fiber/v2"
)

// CreateMaterial attaches course material. The owning teacher can either
// upload a file (multipart) or link an external file_url.
func CreateMaterial(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedMaterial").(*materialValidator.CreateMaterialRequest)

	db := database.Database.Db

	course, err := guard.FindCourse(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !guard.IsTeacherOwner(identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course teacher can upload materials!", nil)
	}

	fileURL := reqData.FileURL
	fileType := reqData.FileType

	// Multipart upload takes precedence over an external link
	if file, err := c.FormFile("file"); err == nil {
		storedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving uploaded file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
		}

		fileURL = utils.GetFileURL(storedName)
		if fileType == "" {
			fileType = strings.TrimPrefix(filepath.Ext(file.Filename), ".")
		}
	}

	if fileURL == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "Either a file or a file_url is required!"})
	}

	material := models.Material{
		CourseID: courseID,
		Title:    reqData.Title,
		FileURL:  fileURL,
		FileType: fileType,
	}

	if err := db.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material uploaded successfully.", material)
}

// GetCourseMaterials lists a course's materials for the teacher or an
// enrolled student.
func GetCourseMaterials(c *fiber.Ctx) error {
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

	var materials []models.Material
	if err := db.Where("course_id = ?", courseID).Order("created_at desc").Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully.", materials)
}

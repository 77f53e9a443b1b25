package courseController

import (
	"log"

	"lms/database"
	"lms/guard"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		TeacherID:   identity.UserID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// GetCourses lists the caller's courses: owned courses for a teacher, the full
// catalog with an enrolled flag for a student (so they can pick what to join).
func GetCourses(c *fiber.Ctx) error {
	identity, ok := guard.FromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	if identity.Role == models.RoleTeacher {
		var courses []models.Course
		if err := db.Where("teacher_id = ? AND is_deleted = ?", identity.UserID, false).
			Order("created_at desc").Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
	}

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("student_id = ?", identity.UserID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}
	enrolled := make(map[uint]bool, len(enrollments))
	for _, enrollment := range enrollments {
		enrolled[enrollment.CourseID] = true
	}

	response := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		response = append(response, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"duration":    course.Duration,
			"teacher_id":  course.TeacherID,
			"is_enrolled": enrolled[course.ID],
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", response)
}

// GetCourseDetail returns the course aggregate for the owning teacher or an
// enrolled student. Missing course is 404, failed guard is 403, in that order.
func GetCourseDetail(c *fiber.Ctx) error {
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

	var teacher models.User
	if err := db.First(&teacher, course.TeacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	var studentCount, assignmentCount, materialCount int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&studentCount)
	db.Model(&models.Assignment{}).Where("course_id = ?", course.ID).Count(&assignmentCount)
	db.Model(&models.Material{}).Where("course_id = ?", course.ID).Count(&materialCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", fiber.Map{
		"course":           course,
		"teacher_name":     teacher.Name,
		"student_count":    studentCount,
		"assignment_count": assignmentCount,
		"material_count":   materialCount,
	})
}

// GetCourseStudents returns the enrolled roster. Owning teacher only.
func GetCourseStudents(c *fiber.Ctx) error {
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

	if !guard.IsTeacherOwner(identity, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course teacher can view the roster!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ?", courseID).Preload("Student").
		Order("created_at asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	students := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		students = append(students, fiber.Map{
			"id":          enrollment.Student.ID,
			"name":        enrollment.Student.Name,
			"email":       enrollment.Student.Email,
			"enrolled_at": enrollment.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully.", students)
}

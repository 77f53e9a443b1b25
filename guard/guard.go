package guard

import (
	"errors"

	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Identity is the authenticated caller, as set by the JWT middleware.
type Identity struct {
	UserID uint
	Role   string
}

// FromCtx pulls the caller identity out of the request context.
// Returns false when the JWT middleware did not run or the token was bad.
func FromCtx(c *fiber.Ctx) (Identity, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return Identity{}, false
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return Identity{}, false
	}
	return Identity{UserID: userID, Role: role}, true
}

// FindCourse loads a course by ID. Returns (nil, nil) when the course does not
// exist so callers can report 404 before any permission check.
func FindCourse(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// IsTeacherOwner reports whether the caller is a teacher who owns the course.
// A teacher who does not own the course has no elevated visibility into it.
func IsTeacherOwner(identity Identity, course *models.Course) bool {
	return identity.Role == models.RoleTeacher && course.TeacherID == identity.UserID
}

// IsEnrolledStudent reports whether an enrollment row exists for (userID, courseID).
func IsEnrolledStudent(db *gorm.DB, userID, courseID uint) bool {
	var count int64
	db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", userID, courseID).
		Count(&count)
	return count > 0
}

// CanAccessCourse gates every read of a course-scoped resource:
// the owning teacher or an enrolled student, nobody else.
func CanAccessCourse(db *gorm.DB, identity Identity, course *models.Course) bool {
	if IsTeacherOwner(identity, course) {
		return true
	}
	if identity.Role == models.RoleStudent {
		return IsEnrolledStudent(db, identity.UserID, course.ID)
	}
	return false
}

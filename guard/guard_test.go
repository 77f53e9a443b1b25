package guard_test

import (
	"testing"

	"lms/guard"
	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestIsTeacherOwner(t *testing.T) {
	_, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	other := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")

	assert.True(t, guard.IsTeacherOwner(guard.Identity{UserID: teacher.ID, Role: teacher.Role}, &course))
	assert.False(t, guard.IsTeacherOwner(guard.Identity{UserID: other.ID, Role: other.Role}, &course))
	// A student whose ID happens to match the teacher's still fails the role check
	assert.False(t, guard.IsTeacherOwner(guard.Identity{UserID: teacher.ID, Role: student.Role}, &course))
}

func TestIsEnrolledStudent(t *testing.T) {
	_, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")

	assert.False(t, guard.IsEnrolledStudent(db, student.ID, course.ID))

	testutil.Enroll(t, db, student.ID, course.ID)

	assert.True(t, guard.IsEnrolledStudent(db, student.ID, course.ID))
	assert.False(t, guard.IsEnrolledStudent(db, teacher.ID, course.ID))
}

func TestCanAccessCourse(t *testing.T) {
	_, db, _ := testutil.SetupApp(t)

	owner := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	otherTeacher := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.RoleTeacher)
	enrolled := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	outsider := testutil.CreateUser(t, db, "Dave", "dave@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, owner.ID, "Intro")
	testutil.Enroll(t, db, enrolled.ID, course.ID)

	assert.True(t, guard.CanAccessCourse(db, guard.Identity{UserID: owner.ID, Role: owner.Role}, &course))
	assert.True(t, guard.CanAccessCourse(db, guard.Identity{UserID: enrolled.ID, Role: enrolled.Role}, &course))

	// A teacher who does not own the course gets no elevated visibility
	assert.False(t, guard.CanAccessCourse(db, guard.Identity{UserID: otherTeacher.ID, Role: otherTeacher.Role}, &course))
	assert.False(t, guard.CanAccessCourse(db, guard.Identity{UserID: outsider.ID, Role: outsider.Role}, &course))
}

func TestFindCourseMissing(t *testing.T) {
	_, db, _ := testutil.SetupApp(t)

	course, err := guard.FindCourse(db, 9999)
	assert.NoError(t, err)
	assert.Nil(t, course)
}

package gradeController_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCreateGrade(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)
	assignment := testutil.CreateAssignment(t, db, course.ID, "Homework 1")
	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "answer"}
	assert.NoError(t, db.Create(&submission).Error)

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/submission/%d/grade", submission.ID), testutil.TokenFor(t, teacher),
		map[string]interface{}{"grade": 87, "feedback": "Good"})
	assert.Equal(t, http.StatusCreated, code)

	var grade models.Grade
	assert.NoError(t, db.Where("submission_id = ?", submission.ID).First(&grade).Error)
	assert.Equal(t, 87, grade.Grade)
	assert.Equal(t, "Good", grade.Feedback)

	// The student gets a persisted grade notification
	var notification models.Notification
	assert.NoError(t, db.Where("user_id = ? AND type = ?", student.ID, models.NotificationGrade).
		First(&notification).Error)
	assert.False(t, notification.IsRead)
}

func TestGradeOutOfRangeRejected(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)
	assignment := testutil.CreateAssignment(t, db, course.ID, "Homework 1")
	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "answer"}
	assert.NoError(t, db.Create(&submission).Error)

	path := fmt.Sprintf("/submission/%d/grade", submission.ID)
	token := testutil.TokenFor(t, teacher)

	for _, bad := range []interface{}{101, -1} {
		code, _ := testutil.DoRequest(t, app, http.MethodPost, path, token,
			map[string]interface{}{"grade": bad})
		assert.Equal(t, http.StatusUnprocessableEntity, code, "grade %v must be rejected", bad)
	}

	// Missing grade is rejected too; zero is a legitimate value
	code, _ := testutil.DoRequest(t, app, http.MethodPost, path, token,
		map[string]interface{}{"feedback": "no grade"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = testutil.DoRequest(t, app, http.MethodPost, path, token,
		map[string]interface{}{"grade": 0})
	assert.Equal(t, http.StatusCreated, code)
}

func TestSecondGradeConflicts(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)
	assignment := testutil.CreateAssignment(t, db, course.ID, "Homework 1")
	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "answer"}
	assert.NoError(t, db.Create(&submission).Error)

	path := fmt.Sprintf("/submission/%d/grade", submission.ID)
	token := testutil.TokenFor(t, teacher)

	code, _ := testutil.DoRequest(t, app, http.MethodPost, path, token,
		map[string]interface{}{"grade": 87})
	assert.Equal(t, http.StatusCreated, code)

	code, _ = testutil.DoRequest(t, app, http.MethodPost, path, token,
		map[string]interface{}{"grade": 90})
	assert.Equal(t, http.StatusConflict, code)

	var count int64
	db.Model(&models.Grade{}).Where("submission_id = ?", submission.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestNonOwnerTeacherCannotGrade(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	owner := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	otherTeacher := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, owner.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)
	assignment := testutil.CreateAssignment(t, db, course.ID, "Homework 1")
	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "answer"}
	assert.NoError(t, db.Create(&submission).Error)

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/submission/%d/grade", submission.ID), testutil.TokenFor(t, otherTeacher),
		map[string]interface{}{"grade": 50})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUserGradesScopedLists(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	carol := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	dave := testutil.CreateUser(t, db, "Dave", "dave@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, carol.ID, course.ID)
	testutil.Enroll(t, db, dave.ID, course.ID)
	assignment := testutil.CreateAssignment(t, db, course.ID, "Homework 1")

	for i, studentID := range []uint{carol.ID, dave.ID} {
		submission := models.Submission{AssignmentID: assignment.ID, StudentID: studentID, Content: "answer"}
		assert.NoError(t, db.Create(&submission).Error)
		grade := models.Grade{SubmissionID: submission.ID, Grade: 80 + i}
		assert.NoError(t, db.Create(&grade).Error)
	}

	// A student sees only their own grade
	code, resp := testutil.DoRequest(t, app, http.MethodGet, "/user/grades", testutil.TokenFor(t, carol), nil)
	assert.Equal(t, http.StatusOK, code)
	rows := resp.Data.([]interface{})
	assert.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.EqualValues(t, 80, row["grade"])
	assert.Equal(t, "Homework 1", row["assignment_title"])

	// The teacher sees every grade in their courses
	code, resp = testutil.DoRequest(t, app, http.MethodGet, "/user/grades", testutil.TokenFor(t, teacher), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data.([]interface{}), 2)
}

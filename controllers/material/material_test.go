package materialController_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCreateMaterialWithLink(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")

	code, resp := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/material", course.ID), testutil.TokenFor(t, teacher),
		map[string]string{
			"title":     "Week 1 slides",
			"file_url":  "https://cdn.example.com/slides-w1.pdf",
			"file_type": "pdf",
		})
	assert.Equal(t, http.StatusCreated, code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "https://cdn.example.com/slides-w1.pdf", data["file_url"])

	var count int64
	db.Model(&models.Material{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateMaterialRequiresFileOrURL(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/material", course.ID), testutil.TokenFor(t, teacher),
		map[string]string{"title": "Empty material"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestCreateMaterialNonOwnerForbidden(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	owner := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	otherTeacher := testutil.CreateUser(t, db, "Bob", "bob@example.com", models.RoleTeacher)
	course := testutil.CreateCourse(t, db, owner.ID, "Intro")

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/material", course.ID), testutil.TokenFor(t, otherTeacher),
		map[string]string{"title": "Hijacked", "file_url": "https://example.com/x.pdf"})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGetCourseMaterialsAccess(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	outsider := testutil.CreateUser(t, db, "Eve", "eve@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)

	material := models.Material{CourseID: course.ID, Title: "Syllabus", FileURL: "https://example.com/syllabus.pdf"}
	assert.NoError(t, db.Create(&material).Error)

	path := fmt.Sprintf("/course/%d/materials", course.ID)

	code, resp := testutil.DoRequest(t, app, http.MethodGet, path, testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data.([]interface{}), 1)

	code, _ = testutil.DoRequest(t, app, http.MethodGet, path, testutil.TokenFor(t, outsider), nil)
	assert.Equal(t, http.StatusForbidden, code)
}

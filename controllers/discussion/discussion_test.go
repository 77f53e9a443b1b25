package discussionController_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestDiscussionThread(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)

	postPath := fmt.Sprintf("/course/%d/discussion", course.ID)

	code, resp := testutil.DoRequest(t, app, http.MethodPost, postPath, testutil.TokenFor(t, student),
		map[string]interface{}{"content": "When is office hours?"})
	assert.Equal(t, http.StatusCreated, code)
	parent := resp.Data.(map[string]interface{})
	parentID := uint(parent["ID"].(float64))

	code, _ = testutil.DoRequest(t, app, http.MethodPost, postPath, testutil.TokenFor(t, teacher),
		map[string]interface{}{"content": "Thursdays at 3pm.", "parent_id": parentID})
	assert.Equal(t, http.StatusCreated, code)

	code, resp = testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/course/%d/discussions", course.ID), testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)

	topLevel := resp.Data.([]interface{})
	assert.Len(t, topLevel, 1)
	thread := topLevel[0].(map[string]interface{})
	assert.Equal(t, "When is office hours?", thread["content"])
	replies := thread["replies"].([]interface{})
	assert.Len(t, replies, 1)
	reply := replies[0].(map[string]interface{})
	assert.Equal(t, "Thursdays at 3pm.", reply["content"])
	assert.Equal(t, models.RoleTeacher, reply["author_role"])
}

func TestDiscussionOutsiderForbidden(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	outsider := testutil.CreateUser(t, db, "Eve", "eve@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/discussion", course.ID), testutil.TokenFor(t, outsider),
		map[string]interface{}{"content": "Let me in"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/course/%d/discussions", course.ID), testutil.TokenFor(t, outsider), nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestReplyToReplyRejected(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	course := testutil.CreateCourse(t, db, teacher.ID, "Intro")
	testutil.Enroll(t, db, student.ID, course.ID)

	topLevel := models.Discussion{CourseID: course.ID, UserID: student.ID, Content: "Question"}
	assert.NoError(t, db.Create(&topLevel).Error)
	reply := models.Discussion{CourseID: course.ID, UserID: teacher.ID, Content: "Answer", ParentID: &topLevel.ID}
	assert.NoError(t, db.Create(&reply).Error)

	// Threads are one level deep, so a reply cannot be a parent
	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/discussion", course.ID), testutil.TokenFor(t, student),
		map[string]interface{}{"content": "nested follow-up", "parent_id": reply.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// Every accepted post is visible on the board
	code, resp := testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/course/%d/discussions", course.ID), testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)
	threads := resp.Data.([]interface{})
	assert.Len(t, threads, 1)
	replies := threads[0].(map[string]interface{})["replies"].([]interface{})
	assert.Len(t, replies, 1)

	var count int64
	db.Model(&models.Discussion{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestReplyToForeignParentRejected(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	teacher := testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)
	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	courseA := testutil.CreateCourse(t, db, teacher.ID, "Course A")
	courseB := testutil.CreateCourse(t, db, teacher.ID, "Course B")
	testutil.Enroll(t, db, student.ID, courseA.ID)
	testutil.Enroll(t, db, student.ID, courseB.ID)

	foreign := models.Discussion{CourseID: courseB.ID, UserID: teacher.ID, Content: "B topic"}
	assert.NoError(t, db.Create(&foreign).Error)

	code, _ := testutil.DoRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/discussion", courseA.ID), testutil.TokenFor(t, student),
		map[string]interface{}{"content": "cross-course reply", "parent_id": foreign.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

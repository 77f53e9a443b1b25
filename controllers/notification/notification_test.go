package notificationController_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/models"
	"lms/notifier"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestNotificationDurability(t *testing.T) {
	app, db, hub := testutil.SetupApp(t)

	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)

	// No live connection: the push is dropped but the row persists
	_, err := notifier.Default().Notify(student.ID, models.NotificationGrade, "Graded: 87/100")
	assert.NoError(t, err)
	assert.Equal(t, 0, hub.PushCount(student.ID))

	code, resp := testutil.DoRequest(t, app, http.MethodGet, "/user/notifications",
		testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)

	data := resp.Data.(map[string]interface{})
	notifications := data["notifications"].([]interface{})
	assert.Len(t, notifications, 1)
	first := notifications[0].(map[string]interface{})
	assert.Equal(t, false, first["is_read"])
	assert.Equal(t, models.NotificationGrade, first["type"])
}

func TestMarkNotificationRead(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)
	other := testutil.CreateUser(t, db, "Dave", "dave@example.com", models.RoleStudent)

	created, err := notifier.Default().Notify(student.ID, models.NotificationEnrollment, "Enrolled.")
	assert.NoError(t, err)

	// Another user's notification reads as missing, not forbidden
	code, _ := testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/user/notifications/%d/read", created.ID), testutil.TokenFor(t, other), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/user/notifications/%d/read", created.ID), testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)

	var stored models.Notification
	assert.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, stored.IsRead)
}

func TestUnreadCount(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	student := testutil.CreateUser(t, db, "Carol", "carol@example.com", models.RoleStudent)

	for i := 0; i < 3; i++ {
		_, err := notifier.Default().Notify(student.ID, models.NotificationAssignment, "New assignment.")
		assert.NoError(t, err)
	}
	created, err := notifier.Default().Notify(student.ID, models.NotificationGrade, "Graded.")
	assert.NoError(t, err)
	assert.NoError(t, db.Model(created).Update("is_read", true).Error)

	code, resp := testutil.DoRequest(t, app, http.MethodGet, "/user/notifications/unread/count",
		testutil.TokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)
	data := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 3, data["count"])
}

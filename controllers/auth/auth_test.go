package authController_test

import (
	"net/http"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSignupAndLogin(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	code, resp := testutil.DoRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
		"role":     "TEACHER",
	})
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, resp.Status)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, models.RoleTeacher, user.Role)

	code, resp = testutil.DoRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, code)
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// A login must leave an audit row behind
	var trackings int64
	db.Model(&models.LoginTracking{}).Where("user_id = ?", user.ID).Count(&trackings)
	assert.EqualValues(t, 1, trackings)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)

	code, resp := testutil.DoRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password123",
		"role":     "STUDENT",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, resp.Status)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	app, _, _ := testutil.SetupApp(t)

	code, _ := testutil.DoRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "password123",
		"role":     "ADMIN",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db, _ := testutil.SetupApp(t)

	testutil.CreateUser(t, db, "Alice", "alice@example.com", models.RoleTeacher)

	code, _ := testutil.DoRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProfileRequiresToken(t *testing.T) {
	app, _, _ := testutil.SetupApp(t)

	code, _ := testutil.DoRequest(t, app, http.MethodGet, "/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

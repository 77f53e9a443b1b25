// Package testutil wires an in-memory application instance for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/notifier"
	assignmentRoutes "lms/routers/assignmentRoutes"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter int64

// RecordingHub satisfies notifier.Pusher and records every push so tests can
// assert on live-delivery behavior without opening real sockets.
type RecordingHub struct {
	mu        sync.Mutex
	Connected map[uint]bool
	Pushes    map[uint][]interface{}
}

func NewRecordingHub() *RecordingHub {
	return &RecordingHub{
		Connected: make(map[uint]bool),
		Pushes:    make(map[uint][]interface{}),
	}
}

func (h *RecordingHub) Push(userID uint, payload interface{}) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.Connected[userID] {
		return false
	}
	h.Pushes[userID] = append(h.Pushes[userID], payload)
	return true
}

// PushCount returns how many pushes were delivered to a user.
func (h *RecordingHub) PushCount(userID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Pushes[userID])
}

// SetupApp builds a Fiber app with all routes mounted over a fresh in-memory
// sqlite database. The global database/config/notifier state is swapped for
// the duration of the test.
func SetupApp(t *testing.T) (*fiber.App, *gorm.DB, *RecordingHub) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A shared in-memory db lives as long as one connection is open;
	// a single connection keeps it stable across handler goroutines.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	hub := NewRecordingHub()
	notifier.Init(db, hub)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)

	return app, db, hub
}

// CreateUser inserts a user with the password "password123".
func CreateUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// TokenFor returns a signed JWT for the user.
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// CreateCourse inserts a course owned by the teacher.
func CreateCourse(t *testing.T, db *gorm.DB, teacherID uint, title string) models.Course {
	t.Helper()

	course := models.Course{Title: title, Description: "test course", Duration: "4 weeks", TeacherID: teacherID}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

// Enroll inserts an enrollment row directly.
func Enroll(t *testing.T, db *gorm.DB, studentID, courseID uint) models.Enrollment {
	t.Helper()

	enrollment := models.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to create enrollment: %v", err)
	}
	return enrollment
}

// CreateAssignment inserts an assignment directly.
func CreateAssignment(t *testing.T, db *gorm.DB, courseID uint, title string) models.Assignment {
	t.Helper()

	assignment := models.Assignment{
		CourseID:     courseID,
		Title:        title,
		Instructions: "do the thing",
		DueDate:      time.Now().Add(7 * 24 * time.Hour),
	}
	if err := db.Create(&assignment).Error; err != nil {
		t.Fatalf("failed to create assignment: %v", err)
	}
	return assignment
}

// Response is the decoded JSON envelope every handler returns.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// DoRequest performs a JSON request against the app and decodes the envelope.
func DoRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded Response
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", string(raw), err)
		}
	}
	return resp.StatusCode, decoded
}

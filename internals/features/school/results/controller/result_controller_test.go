package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school_backend/internals/configs"
	"school_backend/internals/constants"
	announcementModel "school_backend/internals/features/school/announcements/model"
	resultModel "school_backend/internals/features/school/results/model"
	studentModel "school_backend/internals/features/school/students/model"
	teacherModel "school_backend/internals/features/school/teachers/model"
	authService "school_backend/internals/features/users/auth/service"
	userModel "school_backend/internals/features/users/user/model"
	helper "school_backend/internals/helpers"
	routes "school_backend/internals/route"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.AccessTokenTTL = time.Hour

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&announcementModel.AnnouncementModel{},
		&resultModel.ResultModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	routes.SetupRoutes(app, db)
	return app, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := authService.CreateAccessToken("admin", constants.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func seedStudent(t *testing.T, db *gorm.DB, roll string, dob time.Time) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{
		RollNumber:  roll,
		FirstName:   "Ravi",
		LastName:    "Kumar",
		DateOfBirth: dob,
		ClassName:   "6",
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func TestSaveExamResults_EndToEnd(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)
	student := seedStudent(t, db, "R-100", time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC))

	// unauthenticated save is rejected before any handler runs
	resp := doJSON(t, app, fiber.MethodPost, "/api/results/admin/save",
		`{"studentId":1,"examType":"final","academicYear":"2024","results":[]}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := `{"studentId":` + jsonID(student.ID) + `,"examType":"final","academicYear":"2024",
		"results":[{"subject":"Math","marksObtained":85,"totalMarks":100}]}`
	resp = doJSON(t, app, fiber.MethodPost, "/api/results/admin/save", body, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved []map[string]any
	decodeBody(t, resp, &saved)
	require.Len(t, saved, 1)
	assert.Equal(t, "A", saved[0]["grade"])
	assert.Equal(t, "Math", saved[0]["subject"])

	// saving again for the same key replaces the old set
	body = `{"studentId":` + jsonID(student.ID) + `,"examType":"final","academicYear":"2024",
		"results":[{"subject":"Math","marksObtained":45,"totalMarks":100}]}`
	resp = doJSON(t, app, fiber.MethodPost, "/api/results/admin/save", body, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &saved)
	require.Len(t, saved, 1)
	assert.Equal(t, "D", saved[0]["grade"])

	var count int64
	require.NoError(t, db.Model(&resultModel.ResultModel{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveExamResults_MissingStudent(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/results/admin/save",
		`{"studentId":424242,"examType":"final","academicYear":"2024",
		  "results":[{"subject":"Math","marksObtained":85,"totalMarks":100}]}`, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope helper.ApiResponse
	decodeBody(t, resp, &envelope)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Student not found", envelope.Message)

	var count int64
	require.NoError(t, db.Model(&resultModel.ResultModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveExamResults_MissingResultsList(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)
	student := seedStudent(t, db, "R-400", time.Date(2011, 3, 9, 0, 0, 0, 0, time.UTC))

	body := `{"studentId":` + jsonID(student.ID) + `,"examType":"final","academicYear":"2024",
		"results":[{"subject":"Math","marksObtained":85,"totalMarks":100}]}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/results/admin/save", body, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// a payload without the results key must not touch the stored set
	resp = doJSON(t, app, fiber.MethodPost, "/api/results/admin/save",
		`{"studentId":`+jsonID(student.ID)+`,"examType":"final","academicYear":"2024"}`, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&resultModel.ResultModel{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// an explicit empty list is a deliberate clear
	resp = doJSON(t, app, fiber.MethodPost, "/api/results/admin/save",
		`{"studentId":`+jsonID(student.ID)+`,"examType":"final","academicYear":"2024","results":[]}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.Model(&resultModel.ResultModel{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetByStudent_NonNumericID(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/results/student/abc", "", token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminRoutes_ExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	configs.AccessTokenTTL = -time.Minute
	expired, err := authService.CreateAccessToken("admin", constants.RoleAdmin)
	require.NoError(t, err)
	configs.AccessTokenTTL = time.Hour

	resp := doJSON(t, app, fiber.MethodGet, "/api/results/admin/all", "", expired)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLookup_MatchesBothFields(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)

	dob := time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC)
	first := seedStudent(t, db, "R-200", dob)
	seedStudent(t, db, "R-201", dob) // same birthday, different roll

	body := `{"studentId":` + jsonID(first.ID) + `,"examType":"final","academicYear":"2024",
		"results":[{"subject":"Math","marksObtained":91,"totalMarks":100}]}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/results/admin/save", body, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/results/lookup?rollNumber=R-200&dob=2011-06-01", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Student struct {
			RollNumber string `json:"rollNumber"`
		} `json:"student"`
		Results []map[string]any `json:"results"`
	}
	decodeBody(t, resp, &payload)
	assert.Equal(t, "R-200", payload.Student.RollNumber)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "A+", payload.Results[0]["grade"])

	// wrong dob for that roll number misses
	resp = doJSON(t, app, fiber.MethodGet, "/api/results/lookup?rollNumber=R-200&dob=2011-06-02", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteResult_Absent(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/results/9999", "", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddAndUpdateSingleResult(t *testing.T) {
	app, db := newTestApp(t)
	token := adminToken(t)
	student := seedStudent(t, db, "R-300", time.Date(2010, 1, 15, 0, 0, 0, 0, time.UTC))

	resp := doJSON(t, app, fiber.MethodPost, "/api/results",
		`{"student":{"id":`+jsonID(student.ID)+`},"subject":"Science","examType":"midterm",
		  "marksObtained":72,"totalMarks":100,"academicYear":"2024"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Equal(t, "B+", created["grade"])

	id := jsonID(uint(created["id"].(float64)))
	resp = doJSON(t, app, fiber.MethodPut, "/api/results/"+id,
		`{"subject":"Science","examType":"midterm","marksObtained":55,"totalMarks":100,
		  "academicYear":"2024"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "C", updated["grade"])

	// missing student reference on add
	resp = doJSON(t, app, fiber.MethodPost, "/api/results",
		`{"subject":"Science","examType":"midterm","marksObtained":72,"totalMarks":100}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func jsonID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
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

	token, err := authService.CreateAccessToken("admin", constants.RoleAdmin)
	require.NoError(t, err)
	return app, db, token
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

func TestTeachers_PublicListOrderedByName(t *testing.T) {
	app, _, token := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/teachers",
		`{"name":"Meena Joshi","designation":"PGT","subject":"Physics","section":"upper-primary"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/teachers",
		`{"name":"Arun Patel","designation":"TGT","subject":"Math","section":"primary"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// listing is public and alphabetical by name
	resp = doJSON(t, app, fiber.MethodGet, "/api/teachers", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "Arun Patel", listed[0]["name"])
	assert.Equal(t, "Meena Joshi", listed[1]["name"])
}

func TestTeachers_SectionValidated(t *testing.T) {
	app, _, token := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/teachers",
		`{"name":"X","section":"secondary"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTeachers_UpdateAndDelete(t *testing.T) {
	app, _, token := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/teachers",
		`{"name":"Meena Joshi","subject":"Physics"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/teachers/1",
		`{"name":"Meena Joshi","subject":"Chemistry","section":"upper-primary"}`, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Chemistry", updated["subject"])

	resp = doJSON(t, app, fiber.MethodDelete, "/api/teachers/1", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/teachers/1", "", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// mutation without a token is rejected
	resp = doJSON(t, app, fiber.MethodPost, "/api/teachers", `{"name":"X"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/constants"
	announcementController "school_backend/internals/features/school/announcements/controller"
	resultController "school_backend/internals/features/school/results/controller"
	studentController "school_backend/internals/features/school/students/controller"
	teacherController "school_backend/internals/features/school/teachers/controller"
	authController "school_backend/internals/features/users/auth/controller"
	authMw "school_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	authCtrl := authController.NewAuthController(db)
	studentCtrl := studentController.NewStudentController(db)
	teacherCtrl := teacherController.NewTeacherController(db)
	announcementCtrl := announcementController.NewAnnouncementController(db)
	resultCtrl := resultController.NewResultController(db)

	api := app.Group("/api")

	// public and admin routes share path prefixes (e.g. GET vs POST
	// /api/teachers), so the auth chain is attached per route rather
	// than per group
	authed := authMw.AuthMiddleware()
	adminOnly := authMw.OnlyRoles(constants.AdminOnly...)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	api.Post("/auth/login", authCtrl.Login)
	api.Get("/results/lookup", resultCtrl.Lookup)
	api.Get("/teachers", teacherCtrl.GetAllTeachers)
	api.Get("/announcements", announcementCtrl.GetAll)
	api.Get("/announcements/:id", announcementCtrl.GetByID)

	// ===================== AUTHENTICATED =====================
	api.Get("/auth/me", authed, authCtrl.Me)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	api.Get("/students", authed, adminOnly, studentCtrl.GetAllStudents)
	api.Get("/students/roll/:rollNumber", authed, adminOnly, studentCtrl.GetByRollNumber)
	api.Get("/students/class/:className", authed, adminOnly, studentCtrl.GetByClass)
	api.Get("/students/:id", authed, adminOnly, studentCtrl.GetStudent)
	api.Post("/students", authed, adminOnly, studentCtrl.CreateStudent)
	api.Put("/students/:id", authed, adminOnly, studentCtrl.UpdateStudent)
	api.Delete("/students/:id", authed, adminOnly, studentCtrl.DeleteStudent)

	api.Post("/teachers", authed, adminOnly, teacherCtrl.AddTeacher)
	api.Put("/teachers/:id", authed, adminOnly, teacherCtrl.UpdateTeacher)
	api.Delete("/teachers/:id", authed, adminOnly, teacherCtrl.DeleteTeacher)

	api.Post("/announcements", authed, adminOnly, announcementCtrl.Create)
	api.Put("/announcements/:id", authed, adminOnly, announcementCtrl.Update)
	api.Delete("/announcements/:id", authed, adminOnly, announcementCtrl.Delete)

	api.Get("/results/admin/all", authed, adminOnly, resultCtrl.GetAll)
	api.Post("/results/admin/save", authed, adminOnly, resultCtrl.SaveExamResults)
	api.Get("/results/student/:studentId", authed, adminOnly, resultCtrl.GetByStudent)
	api.Post("/results", authed, adminOnly, resultCtrl.AddResult)
	api.Put("/results/:id", authed, adminOnly, resultCtrl.UpdateResult)
	api.Delete("/results/:id", authed, adminOnly, resultCtrl.DeleteResult)
}

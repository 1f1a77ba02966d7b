package routes

import (
	"erpoffice/handlers"
	"erpoffice/middleware"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)
	auth.Post("/forgot-password", handlers.RequestPasswordReset)
	auth.Post("/reset-password/:token", handlers.ResetPassword)

	// Self-service profile
	api.Get("/me", middleware.RequireAuth(), handlers.Me)

	// ----- ADMIN USERS CRUD -----
	adminUsers := api.Group("/admin/users", middleware.RequireAuth(), middleware.RequireAdmin())
	adminUsers.Post("/", handlers.AdminCreateUser)
	adminUsers.Get("/", handlers.AdminListUsers) // ?page=&limit=&role=&q=
	adminUsers.Get("/:id", handlers.AdminGetUserByID)
	adminUsers.Put("/:id", handlers.AdminUpdateUser)
	adminUsers.Delete("/:id", handlers.AdminDeleteUser)

	// Attendance
	attendance := api.Group("/attendance", middleware.RequireAuth())
	attendance.Post("/check-in", handlers.CheckIn)
	attendance.Post("/check-out", handlers.CheckOut)
	attendance.Get("/me", handlers.MyAttendance) // ?from=&to=

	adminAttendance := api.Group("/admin/attendance", middleware.RequireAuth(), middleware.RequireAdmin())
	adminAttendance.Get("/dashboard/today", handlers.AdminAttendanceDashboardToday)
	adminAttendance.Post("/:id/approve", handlers.AdminApproveAttendance)
	adminAttendance.Get("/export.csv", handlers.AdminAttendanceExportCSV)
	adminAttendance.Get("/export.xlsx", handlers.AdminAttendanceExportXLSX)
	adminAttendance.Get("/", handlers.AdminAttendanceReport) // ?from=&to=&employeeId=

	// Leaves
	leaves := api.Group("/leaves", middleware.RequireAuth())
	leaves.Post("/apply", handlers.ApplyLeave)
	leaves.Get("/me", handlers.MyLeaves)
	leaves.Get("/document/:id", handlers.LeaveDocumentURL)
	leaves.Get("/admin", middleware.RequireAdmin(), handlers.AdminListLeaves)
	leaves.Put("/admin/:id/status", middleware.RequireAdmin(), handlers.AdminUpdateLeaveStatus)

	// Tasks
	tasks := api.Group("/tasks", middleware.RequireAuth())
	tasks.Get("/", handlers.ListTasks)
	tasks.Post("/", handlers.CreateTask)
	tasks.Put("/:id", handlers.ToggleTask)
	tasks.Delete("/:id", handlers.DeleteTask)
}

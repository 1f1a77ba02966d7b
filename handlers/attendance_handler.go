package handlers

import (
	"time"

	"erpoffice/config"
	"erpoffice/middleware"
	"erpoffice/models"
	"erpoffice/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/attendance/check-in
func CheckIn(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	now := time.Now()
	y, m, d := now.Date()
	record := models.Attendance{
		UserID:    claims.UserID,
		WorkDate:  time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		CheckInAt: now,
		Status:    models.AttendancePending,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already checked in today."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Check-in recorded successfully."})
}

// POST /api/attendance/check-out
func CheckOut(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	today := time.Now().Format("2006-01-02")

	var record models.Attendance
	err := config.DB.Where("user_id = ? AND work_date = ?", claims.UserID, today).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Check-in record for today not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	now := time.Now()
	record.CheckOutAt = &now
	if err := config.DB.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message":      "Check-out successful.",
		"checkOutTime": record.CheckOutAt,
	})
}

type attendanceHistoryRow struct {
	CheckInAt  time.Time               `json:"check_in_at"`
	CheckOutAt *time.Time              `json:"check_out_at"`
	Status     models.AttendanceStatus `json:"status"`
	ApprovedAt *time.Time              `json:"approved_at"`
}

// GET /api/attendance/me?from=&to=
func MyAttendance(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	from := c.Query("from")
	to := c.Query("to")

	var rows []attendanceHistoryRow
	err := config.DB.Model(&models.Attendance{}).
		Select("check_in_at, check_out_at, status, approved_at").
		Where("user_id = ? AND work_date BETWEEN ? AND ?", claims.UserID, from, to).
		Order("check_in_at DESC").
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(rows)
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"erpoffice/config"
	"erpoffice/middleware"
	"erpoffice/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type dashboardRow struct {
	ID         uint                    `json:"id"`
	Name       string                  `json:"name"`
	EmployeeID string                  `json:"employee_id"`
	Role       models.Role             `json:"role"`
	CheckedIn  bool                    `json:"checked_in"`
	Status     models.AttendanceStatus `json:"status"`
	CheckInAt  *time.Time              `json:"check_in_at"`
	CheckOutAt *time.Time              `json:"check_out_at"`
}

// GET /api/admin/attendance/dashboard/today
func AdminAttendanceDashboardToday(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var rows []dashboardRow
	err := config.DB.Table("users u").
		Select(`u.id, u.name, u.employee_id, u.role,
			CASE WHEN a.check_in_at IS NOT NULL THEN TRUE ELSE FALSE END AS checked_in,
			a.status, a.check_in_at, a.check_out_at`).
		Joins("LEFT JOIN attendance a ON u.id = a.user_id AND a.work_date = ?", today).
		Where("u.active = ? AND u.deleted_at IS NULL", true).
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error."})
	}

	return c.JSON(rows)
}

// POST /api/admin/attendance/:id/approve
func AdminApproveAttendance(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	attendanceID := c.Params("id")

	res := config.DB.Model(&models.Attendance{}).
		Where("id = ?", attendanceID).
		Updates(map[string]any{
			"status":      models.AttendanceApproved,
			"approved_by": claims.UserID,
			"approved_at": time.Now(),
		})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found."})
	}

	return c.JSON(fiber.Map{"message": "Attendance approved successfully."})
}

type attendanceReportRow struct {
	ID         uint                    `json:"id"`
	Name       string                  `json:"name"`
	EmployeeID string                  `json:"employee_id"`
	Role       models.Role             `json:"role"`
	CheckInAt  time.Time               `json:"check_in_at"`
	CheckOutAt *time.Time              `json:"check_out_at"`
	Status     models.AttendanceStatus `json:"status"`
}

func queryAttendanceReport(from, to, employeeID string) ([]attendanceReportRow, error) {
	tx := config.DB.Table("attendance a").
		Select("a.id, u.name, u.employee_id, u.role, a.check_in_at, a.check_out_at, a.status").
		Joins("JOIN users u ON a.user_id = u.id").
		Where("a.work_date BETWEEN ? AND ?", from, to)
	if employeeID != "" {
		tx = tx.Where("u.employee_id = ?", employeeID)
	}

	var rows []attendanceReportRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GET /api/admin/attendance?from=&to=&employeeId=
func AdminAttendanceReport(c *fiber.Ctx) error {
	rows, err := queryAttendanceReport(c.Query("from"), c.Query("to"), c.Query("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(rows)
}

var reportHeader = []string{"id", "name", "employee_id", "role", "check_in_at", "check_out_at", "status"}

func reportRowStrings(r attendanceReportRow) []string {
	checkOut := ""
	if r.CheckOutAt != nil {
		checkOut = r.CheckOutAt.Format(time.RFC3339)
	}
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Name,
		r.EmployeeID,
		string(r.Role),
		r.CheckInAt.Format(time.RFC3339),
		checkOut,
		string(r.Status),
	}
}

// GET /api/admin/attendance/export.csv?from=&to=&employeeId=
func AdminAttendanceExportCSV(c *fiber.Ctx) error {
	rows, err := queryAttendanceReport(c.Query("from"), c.Query("to"), c.Query("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeader); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	for _, r := range rows {
		if err := w.Write(reportRowStrings(r)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance_report.csv"`)
	return c.Send(buf.Bytes())
}

// GET /api/admin/attendance/export.xlsx?from=&to=&employeeId=
func AdminAttendanceExportXLSX(c *fiber.Ctx) error {
	rows, err := queryAttendanceReport(c.Query("from"), c.Query("to"), c.Query("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		for col, v := range reportRowStrings(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "attendance_report.xlsx"))
	return c.Send(buf.Bytes())
}

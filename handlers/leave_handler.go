package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"erpoffice/config"
	leavedto "erpoffice/dto/leaves"
	"erpoffice/middleware"
	"erpoffice/models"
	"erpoffice/utils"
	"erpoffice/utils/events"
	"erpoffice/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/leaves/apply (multipart: startDate, endDate, reason, document?)
func ApplyLeave(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req leavedto.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	// The document is optional and only present on multipart submissions.
	var documentKey *string
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if fileHeader, err := c.FormFile("document"); err == nil {
			ext := filepath.Ext(fileHeader.Filename)
			if ext != ".pdf" && ext != ".jpg" && ext != ".png" && ext != ".jpeg" {
				return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "only PDF and image documents are allowed", nil)
			}

			key := fmt.Sprintf("leave_documents/%d/%s%s", claims.UserID, uuid.NewString(), ext)
			if _, err := storage.UploadFile(c.Context(), fileHeader, key); err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to upload document", err.Error())
			}
			documentKey = &key
		}
	}

	start, end := req.Dates()
	leave := models.Leave{
		UserID:      claims.UserID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      models.LeavePending,
		DocumentKey: documentKey,
	}

	if err := config.DB.Create(&leave).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to submit leave application", err.Error())
	}

	events.Publish(events.LeaveEvent{
		Type:         events.LeaveSubmitted,
		Leave:        leave,
		EmployeeName: claims.EmployeeID,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Leave application submitted successfully."})
}

// GET /api/leaves/me
func MyLeaves(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var leaves []models.Leave
	if err := config.DB.Where("user_id = ?", claims.UserID).Order("id DESC").Find(&leaves).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(leaves)
}

type adminLeaveRow struct {
	models.Leave
	EmployeeName  string `json:"employee_name"`
	EmployeeID    string `json:"employee_id"`
	EmployeeEmail string `json:"employee_email"`
}

// GET /api/leaves/admin?from=&to=&employeeId=
func AdminListLeaves(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	employeeID := c.Query("employeeId")

	tx := config.DB.Table("leaves l").
		Select("l.*, u.name AS employee_name, u.employee_id, u.email AS employee_email").
		Joins("JOIN users u ON l.user_id = u.id").
		Where("l.deleted_at IS NULL")
	if from != "" {
		tx = tx.Where("l.start_date >= ?", from)
	}
	if to != "" {
		tx = tx.Where("l.end_date <= ?", to)
	}
	if employeeID != "" {
		tx = tx.Where("u.employee_id = ?", employeeID)
	}

	var rows []adminLeaveRow
	if err := tx.Order("l.id DESC").Scan(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(rows)
}

// PUT /api/leaves/admin/:id/status
func AdminUpdateLeaveStatus(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	leaveID := c.Params("id")

	var req leavedto.UpdateLeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	status := models.LeaveStatus(req.Status)
	if !status.IsDecision() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status provided. Must be APPROVED or REJECTED."})
	}

	var leave models.Leave
	if err := config.DB.First(&leave, "id = ?", leaveID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	now := time.Now()
	leave.Status = status
	leave.ApprovedBy = &claims.UserID
	leave.ApprovedAt = &now
	if err := config.DB.Save(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	var applicant models.User
	if err := config.DB.First(&applicant, "id = ?", leave.UserID).Error; err == nil {
		events.Publish(events.LeaveEvent{
			Type:          events.LeaveDecided,
			Leave:         leave,
			EmployeeName:  applicant.Name,
			ApplicantRole: applicant.Role,
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Leave request %s successfully.", lower(status)),
		"leave":   leave,
	})
}

// GET /api/leaves/document/:id
func LeaveDocumentURL(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var leave models.Leave
	if err := config.DB.First(&leave, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	// Owners see their own documents; admins see all of them.
	if leave.UserID != claims.UserID && claims.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	if leave.DocumentKey == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No document attached to this leave request."})
	}

	url, err := storage.GetPresignedURL(*leave.DocumentKey)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{"url": url})
}

func lower(s models.LeaveStatus) string {
	switch s {
	case models.LeaveApproved:
		return "approved"
	case models.LeaveRejected:
		return "rejected"
	default:
		return "updated"
	}
}

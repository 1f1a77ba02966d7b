package handlers

import (
	"time"

	"erpoffice/config"
	taskdto "erpoffice/dto/tasks"
	"erpoffice/middleware"
	"erpoffice/models"
	"erpoffice/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/tasks
func ListTasks(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var tasks []models.Task
	if err := config.DB.Where("user_id = ?", claims.UserID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(tasks)
}

// POST /api/tasks
func CreateTask(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req taskdto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "dueDate must be a valid date (YYYY-MM-DD)", nil)
		}
		dueDate = &parsed
	}

	task := models.Task{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Category:    req.Category,
		Priority:    req.Priority,
	}

	if err := config.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// PUT /api/tasks/:id
func ToggleTask(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req taskdto.ToggleTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res := config.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", c.Params("id"), claims.UserID).
		Update("completed", req.Completed)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found or you do not have permission."})
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(task)
}

// DELETE /api/tasks/:id
func DeleteTask(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	res := config.DB.Where("id = ? AND user_id = ?", c.Params("id"), claims.UserID).Delete(&models.Task{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found or you do not have permission."})
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully."})
}

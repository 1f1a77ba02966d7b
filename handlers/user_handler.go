package handlers

import (
	"strconv"
	"strings"

	"erpoffice/config"
	userdto "erpoffice/dto/users"
	"erpoffice/middleware"
	"erpoffice/models"
	"erpoffice/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/me
func Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"name":       user.Name,
		"employeeId": user.EmployeeID,
		"role":       user.Role,
	})
}

// POST /api/admin/users
func AdminCreateUser(c *fiber.Ctx) error {
	var req userdto.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	passwordHash, err := utils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user := models.User{
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         req.Role,
		Active:       true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "employee id or email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create user", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "user created successfully", userdto.NewAdminUserResponse(user))
}

// GET /api/admin/users/:id
func AdminGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "user retrieved successfully", userdto.NewAdminUserResponse(user))
}

// GET /api/admin/users?page=&limit=&role=&q=
func AdminListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	role := strings.TrimSpace(c.Query("role", ""))
	q := strings.TrimSpace(c.Query("q", ""))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	tx := config.DB.Model(&models.User{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			config.DB.Where("employee_id LIKE ?", like).
				Or("name LIKE ?", like).
				Or("email LIKE ?", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count users", err.Error())
	}

	var users []models.User
	if err := tx.Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve users", err.Error())
	}

	responses := make([]userdto.AdminUserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userdto.NewAdminUserResponse(users[i]))
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "users retrieved successfully", responses, meta)
}

// PUT /api/admin/users/:id (partial)
func AdminUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	var req userdto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if req.IsEmpty() {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "no fields provided for update", nil)
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = normalizeEmail(req.Email)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil {
		pwd := strings.TrimSpace(*req.Password)
		if pwd != "" {
			hash, err := utils.HashPassword(pwd)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
			}
			user.PasswordHash = hash
		}
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "employee id or email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update user", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "user updated successfully", userdto.NewAdminUserResponse(user))
}

// DELETE /api/admin/users/:id
func AdminDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete user", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "user deleted successfully", nil)
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

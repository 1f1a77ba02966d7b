// Package handlers wires the HTTP surface to the database.
//
// Auth notes: sessions are stateless JWTs, so logout is client-side token
// disposal and early revocation is not supported. There is no lockout or
// rate limit on failed logins; that gap is inherited from the product
// requirements, not a design choice made here.
package handlers

import (
	"encoding/json"
	"log"
	"net/mail"
	"strings"
	"time"

	"erpoffice/config"
	"erpoffice/dto"
	"erpoffice/models"
	"erpoffice/utils"
	"erpoffice/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	invalidCredentialsMsg = "Invalid credentials."
	forgotPasswordMsg     = "If a user with that email exists, a password reset link has been sent."
	resetTokenInvalidMsg  = "Password reset token is invalid or has expired."
)

// Compared against when the employee id is unknown, so the unknown-id and
// wrong-password paths cost one bcrypt verification each.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login issues a session token for a valid employee-id/password pair. Unknown
// id and wrong password are indistinguishable in both response and timing.
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	var user models.User
	err := config.DB.Where("employee_id = ?", req.EmployeeID).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("login lookup error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
		utils.CheckPassword(dummyPasswordHash, req.Password)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": invalidCredentialsMsg})
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": invalidCredentialsMsg})
	}

	token, _, err := utils.GenerateAccessToken(user)
	if err != nil {
		log.Printf("login token error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(dto.LoginResponse{Token: token, Role: string(user.Role)})
}

// Logout exists for API symmetry; the client discards its token.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully."})
}

// RequestPasswordReset stores a reset ticket and mails the raw token when the
// email belongs to an account. The response is identical either way, and mail
// delivery runs off the request path so its failure can only ever be logged.
func RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email format"})
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(fiber.Map{"message": forgotPasswordMsg})
		}
		log.Printf("forgot-password lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	rawToken, tokenHash, err := utils.GenerateResetToken()
	if err != nil {
		log.Printf("forgot-password token generation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	authCfg := config.LoadAuthConfig()
	expiry := time.Now().Add(authCfg.ResetTokenTTL)

	res := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_reset_token":   tokenHash,
			"password_reset_expires": expiry,
		})
	if res.Error != nil {
		log.Printf("forgot-password store error: %v", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	resetLink := utils.BuildResetLink(authCfg.ResetURLBase, rawToken)
	toEmail := req.Email
	go func() {
		mailClient := mailer.NewClient(config.LoadEmailConfig())
		if err := mailClient.SendPasswordResetEmail(toEmail, resetLink); err != nil {
			log.Printf("failed to send password reset email: %v", err)
		}
	}()

	return c.JSON(fiber.Map{"message": forgotPasswordMsg})
}

// ResetPassword consumes a reset ticket. Match, expiry check, field clearing
// and the password write happen in one guarded UPDATE, so a concurrent
// attempt with the same token finds no matching row.
func ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var req dto.ResetPasswordRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password is required."})
	}

	newHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("reset-password hash error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	tokenHash := utils.HashResetToken(token)

	res := config.DB.Model(&models.User{}).
		Where("password_reset_token = ? AND password_reset_expires > ?", tokenHash, time.Now()).
		Updates(map[string]any{
			"password_hash":          newHash,
			"password_reset_token":   nil,
			"password_reset_expires": nil,
		})
	if res.Error != nil {
		log.Printf("reset-password update error: %v", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": resetTokenInvalidMsg})
	}

	return c.JSON(fiber.Map{"message": "Password has been reset successfully."})
}

package users

import (
	"net/mail"
	"strings"
	"time"

	"erpoffice/models"
)

type AdminUserCreateRequest struct {
	EmployeeID string      `json:"employeeId"`
	Name       string      `json:"name"`
	Email      *string     `json:"email"`
	Password   string      `json:"password"`
	Role       models.Role `json:"role"`
}

// AdminUserUpdateRequest is a patch: nil fields are left untouched. This
// replaces dynamic SQL assembly with one conditional assignment per field.
type AdminUserUpdateRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
	Active   *bool        `json:"active"`
}

type AdminUserResponse struct {
	ID         uint        `json:"id"`
	EmployeeID string      `json:"employeeId"`
	Name       string      `json:"name"`
	Email      *string     `json:"email"`
	Role       models.Role `json:"role"`
	Active     bool        `json:"active"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

func (r *AdminUserCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.EmployeeID) == "" {
		errors["employeeId"] = "employeeId is required"
	}
	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if !r.Role.IsValid() {
		errors["role"] = "role must be EMPLOYEE or ADMIN"
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			errors["email"] = "invalid email format"
		}
	}

	return errors
}

func (r *AdminUserUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Password != nil {
		pwd := strings.TrimSpace(*r.Password)
		if pwd != "" && len(pwd) < 8 {
			errors["password"] = "password must be at least 8 characters"
		}
	}
	if r.Role != nil && !r.Role.IsValid() {
		errors["role"] = "role must be EMPLOYEE or ADMIN"
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			errors["email"] = "invalid email format"
		}
	}

	return errors
}

func (r *AdminUserUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil && r.Role == nil && r.Active == nil
}

func NewAdminUserResponse(user models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:         user.ID,
		EmployeeID: user.EmployeeID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Active:     user.Active,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  user.UpdatedAt.Format(time.RFC3339),
	}
}

package handlers_test

import (
	"os"
	"testing"

	"erpoffice/config"
	"erpoffice/models"
	"erpoffice/routes"
	"erpoffice/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupMockDB swaps config.DB for a GORM handle over sqlmock for the duration
// of the test. Default transactions are disabled so each logical operation is
// exactly one expected statement.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gdb
	t.Cleanup(func() {
		config.DB = prev
		sqlDB.Close()
	})

	return mock
}

func newTestApp() *fiber.App {
	app := fiber.New()
	routes.Register(app)
	return app
}

func tokenFor(t *testing.T, userID uint, role models.Role) string {
	t.Helper()
	user := models.User{EmployeeID: "E100", Name: "Test Employee", Role: role}
	user.ID = userID
	token, _, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)
	return token
}

func userColumns() []string {
	return []string{"id", "employee_id", "name", "email", "password_hash", "role", "active"}
}

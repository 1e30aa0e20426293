package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/config"
	"github.com/barberbook/barbershop-api/internal/handlers"
)

// bcrypt of "admin123".
const adminHash = "$2b$10$4KgtMtSuHpcWFrM8kJFKe.5Pm9sEePB6e4oDj2mvzXPJExqKt9CX6"

func authRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	h := handlers.NewAuthHandler(gdb, &config.Config{JWTSecret: "test-secret"})

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, mock
}

func TestRegister(t *testing.T) {
	t.Run("success returns token and client role", func(t *testing.T) {
		r, mock := authRouter(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WithArgs("new@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		w := doJSON(t, r, http.MethodPost, "/api/auth/register",
			`{"email":"New@Example.com ","password":"secret1","fullName":"New Client","phone":"555-0100"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				ID       uint   `json:"id"`
				Email    string `json:"email"`
				FullName string `json:"fullName"`
				Role     string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Account created successfully", resp.Message)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, uint(5), resp.User.ID)
		assert.Equal(t, "new@example.com", resp.User.Email)
		assert.Equal(t, "client", resp.User.Role)
		assert.NotContains(t, w.Body.String(), "password")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		r, mock := authRouter(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WithArgs("taken@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		w := doJSON(t, r, http.MethodPost, "/api/auth/register",
			`{"email":"taken@example.com","password":"secret1","fullName":"Someone"}`)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email_already_registered")
	})

	t.Run("invalid email", func(t *testing.T) {
		r, _ := authRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/register",
			`{"email":"not-an-email","password":"secret1","fullName":"Someone"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_email")
	})

	t.Run("short password", func(t *testing.T) {
		r, _ := authRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/register",
			`{"email":"new@example.com","password":"abc","fullName":"Someone"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "role"}).
			AddRow(1, "admin@barbershop.com", adminHash, "Admin", "admin")
	}

	t.Run("success", func(t *testing.T) {
		r, mock := authRouter(t)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(userRows())

		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"Admin@Barbershop.com","password":"admin123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		r, mock := authRouter(t)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(userRows())

		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"admin@barbershop.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		r, mock := authRouter(t)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"ghost@example.com","password":"whatever"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := authRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"a@b.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

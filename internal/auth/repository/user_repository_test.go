package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// newMockDB wires GORM to a sqlmock connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password", "created_at", "updated_at"}
}

func TestFindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "hash", time.Now(), time.Now())
		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).WillReturnRows(rows)

		user, err := repo.FindByEmail("john@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user yields nil, not error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.FindByEmail("nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConsumeVerificationToken(t *testing.T) {
	now := time.Now()

	t.Run("valid token is consumed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "hash", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE verification_token =`).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		user, err := repo.ConsumeVerificationToken("tokenhash", now)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotNil(t, user.VerifiedAt)
		assert.Nil(t, user.VerificationToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown or expired hash yields nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE verification_token =`).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.ConsumeVerificationToken("badhash", now)
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("raced consumption affects no rows and yields nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "hash", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE verification_token =`).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		user, err := repo.ConsumeVerificationToken("tokenhash", now)
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConsumeResetToken(t *testing.T) {
	now := time.Now()

	t.Run("valid token sets password and clears fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "oldhash", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE reset_password_token =`).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		user, err := repo.ConsumeResetToken("tokenhash", now, "newhash")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "newhash", user.Password)
		assert.Nil(t, user.ResetPasswordToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("raced consumption yields nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow("user-1", "John", "john@example.com", "oldhash", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE reset_password_token =`).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		user, err := repo.ConsumeResetToken("tokenhash", now, "newhash")
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

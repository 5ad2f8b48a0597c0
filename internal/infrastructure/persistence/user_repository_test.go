package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// newMockUserRepository creates a GormUserRepository with a mocked SQL connection
func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func TestGormUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock, mockDB := newMockUserRepository(t)
	defer mockDB.Close()

	user, err := identity.NewUser("ada@example.com", "password1", identity.RoleStudent, "Ada Lovelace")
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	err = repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "email", "role", "full_name", "status"}).
			AddRow(userID, "ada@example.com", "student", "Ada Lovelace", "active")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(rows)

		user, err := repo.FindByID(context.Background(), userID)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.True(t, user.IsStudent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs(userID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.FindByID(context.Background(), userID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "email", "role", "full_name", "status"}).
			AddRow(userID, "ada@example.com", "student", "Ada Lovelace", "active")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ada@example.com", 1).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "Ada@Example.COM")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty email short-circuits to ErrNotFound", func(t *testing.T) {
		repo, _, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		user, err := repo.FindByEmail(context.Background(), "")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestGormUserRepository_FindByIDs(t *testing.T) {
	t.Run("returns users for the given IDs", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		id1 := uuid.New()
		id2 := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "email", "role", "full_name", "status"}).
			AddRow(id1, "ada@example.com", "student", "Ada Lovelace", "active").
			AddRow(id2, "grace@example.com", "student", "Grace Hopper", "active")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id IN \(\$1,\$2\)`).
			WithArgs(id1, id2).
			WillReturnRows(rows)

		users, err := repo.FindByIDs(context.Background(), []uuid.UUID{id1, id2})

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input avoids the query entirely", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		users, err := repo.FindByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock, mockDB := newMockUserRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE LOWER\(email\) = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	exists, err := repo.ExistsByEmail(context.Background(), "Ada@Example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
)

// newMockEmployeeRepository creates a GormEmployeeRepository with a mocked SQL connection
func newMockEmployeeRepository(t *testing.T) (*GormEmployeeRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormEmployeeRepository(gormDB), mock, mockDB
}

func TestGormEmployeeRepository_FindByID(t *testing.T) {
	t.Run("finds existing employee", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		employeeID := uuid.New()
		deptID := uuid.New()
		positionID := uuid.New()
		hireDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"id", "employee_number", "last_name", "first_name",
			"department_id", "position_id", "employment_type", "hire_date", "email",
		}).AddRow(employeeID, "EMP0001", "田中", "太郎", deptID, positionID, "regular", hireDate, "tanaka@example.com")

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(employeeID, 1).
			WillReturnRows(rows)

		employee, err := repo.FindByID(context.Background(), employeeID)

		assert.NoError(t, err)
		require.NotNil(t, employee)
		assert.Equal(t, employeeID, employee.ID)
		assert.Equal(t, "EMP0001", employee.EmployeeNumber)
		assert.Equal(t, "田中", employee.LastName)
		assert.Equal(t, directory.EmploymentRegular, employee.EmploymentType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing employee", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		employeeID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(employeeID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		employee, err := repo.FindByID(context.Background(), employeeID)

		assert.Nil(t, employee)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEmployeeRepository_ExistsByEmail(t *testing.T) {
	t.Run("returns true when a row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE email = \$1`).
			WithArgs("tanaka@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByEmail(context.Background(), "tanaka@example.com")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByEmail(context.Background(), "nobody@example.com")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEmployeeRepository_MaxGeneratedSeq(t *testing.T) {
	t.Run("returns highest numeric suffix", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"employee_number"}).
			AddRow("EMP0001").
			AddRow("EMP0042").
			AddRow("EMP0007")

		mock.ExpectQuery(`SELECT "employee_number" FROM "employees" WHERE employee_number LIKE \$1`).
			WithArgs("EMP%").
			WillReturnRows(rows)

		seq, err := repo.MaxGeneratedSeq(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), seq)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips manually assigned numbers sharing the prefix", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"employee_number"}).
			AddRow("EMP0003").
			AddRow("EMP-LEGACY").
			AddRow("EMPX99")

		mock.ExpectQuery(`SELECT "employee_number" FROM "employees" WHERE employee_number LIKE \$1`).
			WithArgs("EMP%").
			WillReturnRows(rows)

		seq, err := repo.MaxGeneratedSeq(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), seq)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero for an empty table", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "employee_number" FROM "employees" WHERE employee_number LIKE \$1`).
			WithArgs("EMP%").
			WillReturnRows(sqlmock.NewRows([]string{"employee_number"}))

		seq, err := repo.MaxGeneratedSeq(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), seq)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEmployeeRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockEmployeeRepository(t)
		defer mockDB.Close()

		employeeID := uuid.New()

		mock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
			WithArgs(employeeID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), employeeID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package employee_test

import (
	"context"
	"testing"
	"time"

	"go-staffhub/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return gormDB, mock
}

func sampleEmployee() *employee.Employee {
	return &employee.Employee{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		EmployeeCode:  "EMP-001",
		Name:          "Budi Santoso",
		Email:         "budi.santoso@example.com",
		MobileNo:      "+628111222333",
		Salary:        12500000,
		Gender:        "male",
		DOB:           time.Date(1991, 4, 17, 0, 0, 0, 0, time.UTC),
		Address1:      "Jl. Sudirman No. 1",
		Address2:      "Lantai 5",
		Password:      "$2a$12$notarealhash",
		Type:          "full-time",
		ProfilePic:    "https://cdn.example.com/employee-profiles/budi.jpg",
		AccountNo:     "1234567890",
		PFAccountNo:   "PF-0099",
		IsActive:      true,
		DepartmentID:  uuid.New(),
		DesignationID: uuid.New(),
		BankCodeID:    uuid.New(),
		CityID:        uuid.New(),
		StateID:       uuid.New(),
	}
}

func TestRepository_WithTx(t *testing.T) {
	t.Run("Create Runs On The Caller Transaction", func(t *testing.T) {
		gormDB, poolMock := newGormDB(t)

		// Separate connection owning the transaction. The INSERT must land
		// here, not on the pool the repository was constructed with.
		txConn, txMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer txConn.Close()

		txMock.ExpectBegin()
		txMock.ExpectExec(`INSERT INTO "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		txMock.ExpectCommit()

		tx, err := txConn.Begin()
		assert.NoError(t, err)

		repo := employee.NewRepository(gormDB).WithTx(tx)
		assert.NoError(t, repo.Create(context.Background(), sampleEmployee()))
		assert.NoError(t, tx.Commit())

		assert.NoError(t, txMock.ExpectationsWereMet())
		assert.NoError(t, poolMock.ExpectationsWereMet())
	})

	t.Run("Rollback Discards The Employee Row", func(t *testing.T) {
		gormDB, poolMock := newGormDB(t)

		txConn, txMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer txConn.Close()

		txMock.ExpectBegin()
		txMock.ExpectExec(`INSERT INTO "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		txMock.ExpectRollback()

		tx, err := txConn.Begin()
		assert.NoError(t, err)

		repo := employee.NewRepository(gormDB).WithTx(tx)
		assert.NoError(t, repo.Create(context.Background(), sampleEmployee()))
		assert.NoError(t, tx.Rollback())

		assert.NoError(t, txMock.ExpectationsWereMet())
		assert.NoError(t, poolMock.ExpectationsWereMet())
	})

	t.Run("Without Transaction The Pool Is Used", func(t *testing.T) {
		gormDB, poolMock := newGormDB(t)

		poolMock.ExpectExec(`INSERT INTO "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := employee.NewRepository(gormDB)
		assert.NoError(t, repo.Create(context.Background(), sampleEmployee()))

		assert.NoError(t, poolMock.ExpectationsWereMet())
	})
}

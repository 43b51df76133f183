package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-staffhub/internal/department"
	departmentMock "go-staffhub/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestDepartmentService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	cacheKey := department.GetDepartmentOptionsKey(companyID)

	t.Run("Hit Cache - Harus ambil data dari Redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectedResp := []department.DepartmentResponse{
			{ID: "dept-1", Name: "Engineering", CompanyID: companyID},
			{ID: "dept-2", Name: "Finance", CompanyID: companyID},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redisMock.ExpectGet(cacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expectedResp, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("Miss Cache - Query DB lalu isi Redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		depts := []department.Department{
			{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Name: "Engineering"},
		}
		expectedResp := []department.DepartmentResponse{
			{ID: depts[0].ID.String(), Name: "Engineering", CompanyID: companyID},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(depts, nil)
		deps.redisMock.ExpectSet(cacheKey, jsonResp, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expectedResp, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("DB Error Propagates", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(nil, assert.AnError)

		_, err := deps.service.GetOptions(ctx, companyID)
		assert.Error(t, err)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	cacheKey := department.GetDepartmentOptionsKey(companyID)

	t.Run("Success Create - Invalidates Options Cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, dept *department.Department) error {
				assert.Equal(t, "People Ops", dept.Name)
				assert.Equal(t, companyID, dept.CompanyID.String())
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(cacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "People Ops"})

		assert.NoError(t, err)
		assert.Equal(t, "People Ops", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("Create Fails - Rolls Back, Cache Untouched", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(assert.AnError)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "People Ops"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

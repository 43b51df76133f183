package designation_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-staffhub/internal/designation"
	designationMock "go-staffhub/internal/designation/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   designation.Service
	repo      *designationMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()
	repo := designationMock.NewMockRepository(ctrl)

	svc := designation.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestDesignationService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	cacheKey := designation.GetDesignationOptionsKey(companyID)

	t.Run("Hit Cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectedResp := []designation.DesignationResponse{
			{ID: "desig-1", Name: "Backend Engineer", CompanyID: companyID},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redisMock.ExpectGet(cacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expectedResp, resp)
	})

	t.Run("Miss Cache - Query DB lalu isi Redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		desigs := []designation.Designation{
			{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Name: "Backend Engineer"},
		}
		expectedResp := []designation.DesignationResponse{
			{ID: desigs[0].ID.String(), Name: "Backend Engineer", CompanyID: companyID},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(desigs, nil)
		deps.redisMock.ExpectSet(cacheKey, jsonResp, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expectedResp, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestDesignationService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	cacheKey := designation.GetDesignationOptionsKey(companyID)

	t.Run("Success Create - Invalidates Options Cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(cacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, designation.CreateDesignationRequest{Name: "Data Analyst"})

		assert.NoError(t, err)
		assert.Equal(t, "Data Analyst", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

package designation

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const DesignationOptionsKeyPrefix = "designations:options:"

func GetDesignationOptionsKey(companyID string) string {
	return DesignationOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateDesignationRequest) (DesignationResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]DesignationResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateDesignationRequest,
) (DesignationResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig := &Designation{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: uuid.MustParse(companyID),
	}

	if err := qtx.Create(ctx, desig); err != nil {
		return DesignationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	if s.rdb != nil {
		cacheKey := GetDesignationOptionsKey(companyID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Printf("ERROR: failed to invalidate cache for key %s: %v", cacheKey, err)
		}
	}

	return mapToResponse(*desig), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]DesignationResponse, error) {
	cacheKey := GetDesignationOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DesignationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		desigs, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(desigs)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]DesignationResponse), nil
}

func mapToResponse(desig Designation) DesignationResponse {
	return DesignationResponse{
		ID:        desig.ID.String(),
		Name:      desig.Name,
		CompanyID: desig.CompanyID.String(),
	}
}

func mapToListResponse(desigs []Designation) []DesignationResponse {
	res := make([]DesignationResponse, len(desigs))
	for i, d := range desigs {
		res[i] = mapToResponse(d)
	}
	return res
}

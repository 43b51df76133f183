package designation

import (
	"context"
	"database/sql"

	"go-staffhub/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, desig *Designation) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Designation, error)
	FindByNameAndCompany(ctx context.Context, companyID string, name string) (*Designation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction. The session
// carries a cloned statement; rebinding its ConnPool never touches the pool
// the parent repository runs on.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb := r.db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) Create(ctx context.Context, desig *Designation) error {
	return r.db.WithContext(ctx).Create(desig).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Designation, error) {
	var desigs []Designation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Find(&desigs).Error
	return desigs, err
}

func (r *repository) FindByNameAndCompany(ctx context.Context, companyID string, name string) (*Designation, error) {
	var desig Designation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&desig, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmailOrMobile(ctx context.Context, email, mobile string) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	SetRefreshToken(ctx context.Context, id string, refreshToken *string) error
	CompareAndSwapRefreshToken(ctx context.Context, id string, expected, next string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction, so a Create
// issued here commits or rolls back together with the outbox row. The session
// carries a cloned statement; rebinding its ConnPool never touches the pool
// the parent repository runs on.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb := r.db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByEmailOrMobile(ctx context.Context, email, mobile string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("email = ? OR mobile_no = ?", email, mobile).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) SetRefreshToken(ctx context.Context, id string, refreshToken *string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("refresh_token", refreshToken).Error
}

// CompareAndSwapRefreshToken rotates the slot only when the stored value
// still equals expected. The conditional UPDATE is a single atomic statement,
// so two racing refreshes can never both win.
func (r *repository) CompareAndSwapRefreshToken(ctx context.Context, id string, expected, next string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND refresh_token = ?", id, expected).
		Update("refresh_token", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

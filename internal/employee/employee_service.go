package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"go-staffhub/internal/bank"
	"go-staffhub/internal/department"
	"go-staffhub/internal/designation"
	employeeerrors "go-staffhub/internal/employee/errors"
	"go-staffhub/internal/events"
	"go-staffhub/internal/messaging/kafka"
	"go-staffhub/internal/region"
	"go-staffhub/internal/shared/contextutil"
	"go-staffhub/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest, profilePic io.Reader, filename string) (EmployeeResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	deptRepo  department.Repository
	desigRepo designation.Repository
	bankRepo  bank.Repository
	regions   region.Repository
	uploader  storage.Uploader
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	deptRepo department.Repository,
	desigRepo designation.Repository,
	bankRepo bank.Repository,
	regions region.Repository,
	uploader storage.Uploader,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		deptRepo:  deptRepo,
		desigRepo: desigRepo,
		bankRepo:  bankRepo,
		regions:   regions,
		uploader:  uploader,
		outbox:    outbox,
		logger:    l,
	}
}

// resolvedRefs holds the reference rows looked up from human-readable names.
type resolvedRefs struct {
	state       *region.State
	city        *region.City
	bankCode    *bank.BankCode
	department  *department.Department
	designation *designation.Designation
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
	profilePic io.Reader,
	filename string,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	if err := validateRequired(req); err != nil {
		return EmployeeResponse{}, err
	}
	if len(req.Password) < 6 {
		return EmployeeResponse{}, employeeerrors.ErrPasswordTooShort
	}
	if profilePic == nil {
		return EmployeeResponse{}, employeeerrors.ErrProfilePicRequired
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(req.Salary), 64)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		logger.Warn("create employee invalid dob",
			zap.String("dob", req.DOB),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDOB
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("create employee email pre-check failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapPersistError(err)
	}
	if exists {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	refs, err := s.resolveRefs(ctx, companyID, req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	// Upload only after every validation has passed, so a rejected request
	// never leaves an orphaned image behind.
	profilePicURL, err := s.uploader.UploadImage(ctx, profilePic, filename)
	if err != nil {
		logger.Error("create employee profile pic upload failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrProfilePicUploadFailed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		EmployeeCode:  req.EmployeeCode,
		Name:          req.Name,
		Email:         req.Email,
		MobileNo:      req.MobileNo,
		Salary:        salary,
		Gender:        req.Gender,
		DOB:           dob,
		Address1:      req.Address1,
		Address2:      req.Address2,
		Password:      string(hashed),
		Type:          req.Type,
		ProfilePic:    profilePicURL,
		AccountNo:     req.AccountNo,
		PFAccountNo:   req.PFAccountNo,
		IsActive:      true,
		DepartmentID:  refs.department.ID,
		DesignationID: refs.designation.ID,
		BankCodeID:    refs.bankCode.ID,
		CityID:        refs.city.ID,
		StateID:       refs.state.ID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapPersistError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.EmployeeCode,
			CompanyID:    companyID,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("created_by", contextutil.GetEmployeeID(ctx)),
	)

	return mapToResponse(*empl, refs), nil
}

// resolveRefs mirrors the two lookup phases: state+bank have no dependency on
// each other and run concurrently, then department+designation (both scoped
// to the caller's company) run concurrently as well.
func (s *service) resolveRefs(ctx context.Context, companyID string, req CreateEmployeeRequest) (*resolvedRefs, error) {
	refs := &resolvedRefs{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		state, err := s.regions.FindStateByName(gctx, req.StateName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrInvalidStateName
			}
			return err
		}
		refs.state = state

		city, err := s.regions.FindCityByStateAndName(gctx, state.ID.String(), req.CityName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrInvalidCityName
			}
			return err
		}
		refs.city = city
		return nil
	})
	g.Go(func() error {
		bc, err := s.bankRepo.FindByCode(gctx, req.BankCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrInvalidBankCode
			}
			return err
		}
		refs.bankCode = bc
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		dept, err := s.deptRepo.FindByNameAndCompany(gctx, companyID, req.DepartmentName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrInvalidDepartmentName
			}
			return err
		}
		refs.department = dept
		return nil
	})
	g.Go(func() error {
		desig, err := s.desigRepo.FindByNameAndCompany(gctx, companyID, req.DesignationName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrInvalidDesignationName
			}
			return err
		}
		refs.designation = desig
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return refs, nil
}

func validateRequired(req CreateEmployeeRequest) error {
	fields := []string{
		req.EmployeeCode,
		req.Name,
		req.Email,
		req.MobileNo,
		req.Salary,
		req.Gender,
		req.DOB,
		req.Address1,
		req.Address2,
		req.Password,
		req.Type,
		req.AccountNo,
		req.PFAccountNo,
		req.BankCode,
		req.StateName,
		req.CityName,
		req.DepartmentName,
		req.DesignationName,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return employeeerrors.ErrAllFieldsRequired
		}
	}
	return nil
}

func mapToResponse(empl Employee, refs *resolvedRefs) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		Name:         empl.Name,
		Email:        empl.Email,
		MobileNo:     empl.MobileNo,
		Salary:       empl.Salary,
		Gender:       empl.Gender,
		Type:         empl.Type,
		ProfilePic:   empl.ProfilePic,
		AccountNo:    empl.AccountNo,
		PFAccountNo:  empl.PFAccountNo,
		IsActive:     empl.IsActive,
	}
	if refs != nil {
		if refs.department != nil {
			resp.Department = refs.department.Name
		}
		if refs.designation != nil {
			resp.Designation = refs.designation.Name
		}
		if refs.state != nil {
			resp.State = refs.state.StateName
		}
		if refs.city != nil {
			resp.City = refs.city.CityName
		}
		if refs.bankCode != nil {
			resp.BankCode = &BankCodeResponse{
				Code:     refs.bankCode.Code,
				BankName: refs.bankCode.BankName,
			}
		}
	}
	return resp
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service is the transactional unit of work for the employee/personnel-file
// pair. Creating, updating and deleting an employee always touches both
// records under a single scope so a partial failure never leaves them
// inconsistent.
type Service struct {
	repo   Repository
	files  FileCoordinator
	scopes ScopeManager
}

// UseCase is the surface exposed to callers outside the core.
type UseCase interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	UpdateEmployee(ctx context.Context, e *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	FindEmployeeByNationalID(ctx context.Context, nationalID string) (*Employee, error)
	SearchEmployeesByName(ctx context.Context, text string) ([]*Employee, error)
}

// NewService creates a Service.
func NewService(repo Repository, files FileCoordinator, scopes ScopeManager) *Service {
	return &Service{repo: repo, files: files, scopes: scopes}
}

// CreateEmployee inserts the employee and its personnel file as one atomic
// unit. The employee row goes first so its generated id exists for the file's
// foreign key.
func (s *Service) CreateEmployee(ctx context.Context, e *Employee) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	if err := s.ensureNationalIDNotTaken(ctx, e.NationalID, 0); err != nil {
		return err
	}
	if e.File == nil {
		return ErrFileRequired
	}

	scope, err := s.scopes.Open(ctx)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	defer scope.Close(ctx)

	if err := scope.Begin(ctx); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	txCtx := scope.Context(ctx)
	if err := s.repo.Create(txCtx, e); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	if e.ID <= 0 {
		return fmt.Errorf("create employee: %w", ErrMissingGeneratedID)
	}
	if err := s.files.CreateInTx(txCtx, e.File, e.ID); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	if err := scope.Commit(ctx); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// UpdateEmployee updates both records under one scope. The employee can only
// be updated once its file exists, so both ids are required up front.
func (s *Service) UpdateEmployee(ctx context.Context, e *Employee) error {
	if e == nil || e.ID <= 0 {
		return ErrInvalidID
	}
	if e.File == nil || e.File.ID <= 0 {
		return ErrFileIDRequired
	}
	if err := validateEmployee(e); err != nil {
		return err
	}
	if err := s.ensureNationalIDNotTaken(ctx, e.NationalID, e.ID); err != nil {
		return err
	}

	scope, err := s.scopes.Open(ctx)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	defer scope.Close(ctx)

	if err := scope.Begin(ctx); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	txCtx := scope.Context(ctx)
	if err := s.files.UpdateInTx(txCtx, e.File); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if err := s.repo.Update(txCtx, e); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	if err := scope.Commit(ctx); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// DeleteEmployee soft-deletes the pair, file first so the child is gone
// before the parent.
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.File == nil {
		return ErrFileIntegrity
	}

	scope, err := s.scopes.Open(ctx)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	defer scope.Close(ctx)

	if err := scope.Begin(ctx); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	txCtx := scope.Context(ctx)
	if err := s.files.DeleteInTx(txCtx, existing.File.ID); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if err := s.repo.SoftDelete(txCtx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	if err := scope.Commit(ctx); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// GetEmployee returns the hydrated employee or ErrEmployeeNotFound.
func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

// ListEmployees returns all non-deleted employees with their files.
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.FindAll(ctx)
}

// FindEmployeeByNationalID looks up the unique national identifier.
func (s *Service) FindEmployeeByNationalID(ctx context.Context, nationalID string) (*Employee, error) {
	if strings.TrimSpace(nationalID) == "" {
		return nil, ErrInvalidNationalID
	}
	return s.repo.FindByNationalID(ctx, strings.TrimSpace(nationalID))
}

// SearchEmployeesByName matches the substring against first and last names.
func (s *Service) SearchEmployeesByName(ctx context.Context, text string) ([]*Employee, error) {
	return s.repo.SearchByName(ctx, text)
}

func (s *Service) ensureNationalIDNotTaken(ctx context.Context, nationalID string, selfID int64) error {
	existing, err := s.repo.FindByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrNationalIDAlreadyExists
	}
	return nil
}

func validateEmployee(e *Employee) error {
	if e == nil {
		return ErrNilEmployee
	}

	firstName := strings.TrimSpace(e.FirstName)
	if firstName == "" {
		return ErrInvalidFirstName
	}
	e.FirstName = firstName

	lastName := strings.TrimSpace(e.LastName)
	if lastName == "" {
		return ErrInvalidLastName
	}
	e.LastName = lastName

	nationalID := strings.TrimSpace(e.NationalID)
	if nationalID == "" {
		return ErrInvalidNationalID
	}
	e.NationalID = nationalID

	return nil
}

package personnelfile

import (
	"context"
	"errors"
	"strings"
)

const (
	numberMaxLength   = 20
	categoryMaxLength = 30
	notesMaxLength    = 255
)

// Service applies the business rules of the personnel file. Every write is
// logically part of an employee's transaction, so the standalone create and
// delete variants are disabled and the real write paths are the *InTx
// methods driven by the employee coordinator.
type Service struct {
	repo Repository
}

// UseCase is the surface exposed to callers outside the core.
type UseCase interface {
	CreateFile(ctx context.Context, file *PersonnelFile) error
	UpdateFile(ctx context.Context, file *PersonnelFile) error
	DeleteFile(ctx context.Context, id int64) error
	GetFile(ctx context.Context, id int64) (*PersonnelFile, error)
	ListFiles(ctx context.Context) ([]*PersonnelFile, error)
	ListFilesByStatus(ctx context.Context, status Status) ([]*PersonnelFile, error)
}

// NewService creates a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateFile always fails: a personnel file has no meaning without an owning
// employee. Create the employee and the file is inserted with it.
func (s *Service) CreateFile(_ context.Context, _ *PersonnelFile) error {
	return ErrStandaloneCreate
}

// DeleteFile always fails: deletion must originate from the owning employee
// so both records are removed together.
func (s *Service) DeleteFile(_ context.Context, _ int64) error {
	return ErrStandaloneDelete
}

// CreateInTx inserts a file under the employee coordinator's transaction
// scope, using the employee id the parent just obtained.
func (s *Service) CreateInTx(ctx context.Context, file *PersonnelFile, employeeID int64) error {
	if err := validateFile(file); err != nil {
		return err
	}
	if err := s.ensureNumberNotTaken(ctx, file.Number, 0); err != nil {
		return err
	}
	return s.repo.Create(ctx, file, employeeID)
}

// UpdateInTx updates a file under the employee coordinator's transaction scope.
func (s *Service) UpdateInTx(ctx context.Context, file *PersonnelFile) error {
	if file == nil || file.ID <= 0 {
		return ErrInvalidID
	}
	if err := validateFile(file); err != nil {
		return err
	}
	if err := s.ensureNumberNotTaken(ctx, file.Number, file.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, file)
}

// UpdateFile is the standalone variant for flows that touch the file but not
// the employee row. Same validation as UpdateInTx.
func (s *Service) UpdateFile(ctx context.Context, file *PersonnelFile) error {
	return s.UpdateInTx(ctx, file)
}

// DeleteInTx soft-deletes a file under the employee coordinator's transaction
// scope.
func (s *Service) DeleteInTx(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.repo.SoftDelete(ctx, id)
}

// GetFile returns the file or ErrFileNotFound.
func (s *Service) GetFile(ctx context.Context, id int64) (*PersonnelFile, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

// ListFiles returns all non-deleted files.
func (s *Service) ListFiles(ctx context.Context) ([]*PersonnelFile, error) {
	return s.repo.FindAll(ctx)
}

// ListFilesByStatus returns all non-deleted files with the given contractual
// status.
func (s *Service) ListFilesByStatus(ctx context.Context, status Status) ([]*PersonnelFile, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.FindByStatus(ctx, status)
}

func (s *Service) ensureNumberNotTaken(ctx context.Context, number string, selfID int64) error {
	existing, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrNumberAlreadyExists
	}
	return nil
}

func validateFile(file *PersonnelFile) error {
	if file == nil {
		return ErrNilFile
	}

	number := strings.TrimSpace(file.Number)
	if number == "" || len(number) > numberMaxLength {
		return ErrInvalidNumber
	}
	file.Number = number

	if !isValidStatus(file.Status) {
		return ErrInvalidStatus
	}
	if len(file.Category) > categoryMaxLength {
		return ErrInvalidCategory
	}
	if len(file.Notes) > notesMaxLength {
		return ErrInvalidNotes
	}
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

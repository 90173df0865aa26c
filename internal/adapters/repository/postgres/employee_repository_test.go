package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

var employeeColumns = []string{
	"id", "first_name", "last_name", "national_id", "email", "hired_at", "area",
	"f_id", "f_employee_id", "f_number", "f_category", "f_status", "f_opened_at", "f_notes",
}

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateEmployeePgError(pgErr), employee.ErrNationalIDAlreadyExists) {
		t.Fatalf("expected unique violation to map to ErrNationalIDAlreadyExists")
	}

	otherErr := errors.New("random")
	if translateEmployeePgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_Create_AssignsGeneratedID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	e := &employee.Employee{
		FirstName:  "Ana",
		LastName:   "Gomez",
		NationalID: "30111222",
		Email:      "ana.gomez@example.com",
		HiredAt:    &hired,
		Area:       "Accounting",
	}

	query := regexp.QuoteMeta(`
        INSERT INTO employees (first_name, last_name, national_id, email, hired_at, area)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `)

	mock.ExpectQuery(query).
		WithArgs("Ana", "Gomez", "30111222", "ana.gomez@example.com", hired, "Accounting").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if e.ID != 42 {
		t.Fatalf("expected generated id 42, got %d", e.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Create_DuplicateNationalID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("Ana", "Gomez", "30111222", nil, nil, nil).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	e := &employee.Employee{FirstName: "Ana", LastName: "Gomez", NationalID: "30111222"}
	err = repo.Create(context.Background(), e)
	if !errors.Is(err, employee.ErrNationalIDAlreadyExists) {
		t.Fatalf("expected ErrNationalIDAlreadyExists, got %v", err)
	}
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec("UPDATE employees").
		WithArgs("Ana", "Gomez", "30111222", nil, nil, nil, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	e := &employee.Employee{ID: 42, FirstName: "Ana", LastName: "Gomez", NationalID: "30111222"}
	err = repo.Update(context.Background(), e)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_SoftDelete(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(`UPDATE employees SET deleted = TRUE WHERE id = $1 AND deleted = FALSE`)

	mock.ExpectExec(query).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	if err := repo.SoftDelete(context.Background(), 42); err != nil {
		t.Fatalf("SoftDelete returned error: %v", err)
	}

	// Already-deleted rows match nothing and surface as not found.
	mock.ExpectExec(query).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	if err := repo.SoftDelete(context.Background(), 42); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_FindByID_HydratesFile(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	opened := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(employeeColumns).AddRow(
		int64(42), "Ana", "Gomez", "30111222", "ana.gomez@example.com", hired, "Accounting",
		int64(7), int64(42), "L-001", "administrative", string(personnelfile.StatusActive), opened, "initial intake",
	)

	mock.ExpectQuery(regexp.QuoteMeta(employeeSelectBase)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if found.ID != 42 || found.NationalID != "30111222" {
		t.Fatalf("unexpected employee %+v", found)
	}
	if found.HiredAt == nil || !found.HiredAt.Equal(hired) {
		t.Fatalf("unexpected hired date %v", found.HiredAt)
	}
	if found.File == nil {
		t.Fatalf("expected hydrated file")
	}
	if found.File.ID != 7 || found.File.EmployeeID != 42 || found.File.Number != "L-001" {
		t.Fatalf("unexpected file %+v", found.File)
	}
	if found.File.Status != personnelfile.StatusActive {
		t.Fatalf("unexpected status %s", found.File.Status)
	}
}

func TestEmployeeRepository_FindByID_WithoutFile(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	rows := pgxmock.NewRows(employeeColumns).AddRow(
		int64(42), "Ana", "Gomez", "30111222", nil, nil, nil,
		nil, nil, nil, nil, nil, nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta(employeeSelectBase)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.File != nil {
		t.Fatalf("expected nil file for orphan row, got %+v", found.File)
	}
	if found.Email != "" || found.HiredAt != nil {
		t.Fatalf("expected zero values for NULL columns, got %+v", found)
	}
}

func TestEmployeeRepository_FindByNationalID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(employeeSelectBase)).
		WithArgs("99999999").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByNationalID(context.Background(), "99999999")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_SearchByName_BlankSkipsQuery(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	results, err := repo.SearchByName(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchByName returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("blank search must not hit the database: %v", err)
	}
}

func TestEmployeeRepository_SearchByName_UsesPattern(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	rows := pgxmock.NewRows(employeeColumns).AddRow(
		int64(1), "Ana", "Gomez", "30111222", nil, nil, nil,
		int64(7), int64(1), "L-001", nil, string(personnelfile.StatusActive), nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta(employeeSelectBase)).
		WithArgs("%gom%").
		WillReturnRows(rows)

	results, err := repo.SearchByName(context.Background(), " gom ")
	if err != nil {
		t.Fatalf("SearchByName returned error: %v", err)
	}
	if len(results) != 1 || results[0].LastName != "Gomez" {
		t.Fatalf("unexpected results %+v", results)
	}
}

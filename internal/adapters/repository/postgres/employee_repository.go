package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
	pgdb "github.com/santiagovOK/legajos/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Every read joins the non-deleted personnel file so one round trip yields a
// hydrated employee. The join is a LEFT JOIN: an employee whose file is
// missing still comes back, with a nil File, so the coordinator can report
// the broken invariant instead of hiding the row.
const employeeSelectBase = `
        SELECT e.id, e.first_name, e.last_name, e.national_id, e.email, e.hired_at, e.area,
               f.id, f.employee_id, f.number, f.category, f.status, f.opened_at, f.notes
          FROM employees e
          LEFT JOIN personnel_files f ON f.employee_id = e.id AND f.deleted = FALSE
`

// EmployeeRepository is the PostgreSQL implementation of employee.Repository.
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository creates an EmployeeRepository.
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create inserts the employee row and assigns the generated id onto e.
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (first_name, last_name, national_id, email, hired_at, area)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `,
		e.FirstName,
		e.LastName,
		e.NationalID,
		nullableString(e.Email),
		nullableDate(e.HiredAt),
		nullableString(e.Area),
	)

	if err := row.Scan(&e.ID); err != nil {
		return translateEmployeePgError(err)
	}
	return nil
}

// Update rewrites all mutable columns of a non-deleted employee.
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE employees
           SET first_name = $1,
               last_name = $2,
               national_id = $3,
               email = $4,
               hired_at = $5,
               area = $6
         WHERE id = $7 AND deleted = FALSE
    `,
		e.FirstName,
		e.LastName,
		e.NationalID,
		nullableString(e.Email),
		nullableDate(e.HiredAt),
		nullableString(e.Area),
		e.ID,
	)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SoftDelete sets the logical-deletion flag. The row stays in the table.
func (r *EmployeeRepository) SoftDelete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE employees SET deleted = TRUE WHERE id = $1 AND deleted = FALSE`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByID returns the hydrated non-deleted employee.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, employeeSelectBase+`
         WHERE e.id = $1 AND e.deleted = FALSE
    `, id)

	return scanEmployee(row)
}

// FindAll returns every non-deleted employee with its file.
func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, employeeSelectBase+`
         WHERE e.deleted = FALSE
         ORDER BY e.id
    `)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return collectEmployees(rows)
}

// FindByNationalID does an exact lookup on the unique national identifier.
func (r *EmployeeRepository) FindByNationalID(ctx context.Context, nationalID string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, employeeSelectBase+`
         WHERE e.national_id = $1 AND e.deleted = FALSE
         LIMIT 1
    `, nationalID)

	return scanEmployee(row)
}

// SearchByName matches the substring case-insensitively against first and
// last name. Blank input returns an empty result without querying.
func (r *EmployeeRepository) SearchByName(ctx context.Context, text string) ([]*employee.Employee, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []*employee.Employee{}, nil
	}

	pattern := "%" + trimmed + "%"
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, employeeSelectBase+`
         WHERE (e.first_name ILIKE $1 OR e.last_name ILIKE $1) AND e.deleted = FALSE
         ORDER BY e.id
    `, pattern)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]*employee.Employee, error) {
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id           int64
		firstName    string
		lastName     string
		nationalID   string
		email        sql.NullString
		hiredAt      sql.NullTime
		area         sql.NullString
		fileID       sql.NullInt64
		fileOwnerID  sql.NullInt64
		fileNumber   sql.NullString
		fileCategory sql.NullString
		fileStatus   sql.NullString
		fileOpenedAt sql.NullTime
		fileNotes    sql.NullString
	)

	if err := row.Scan(
		&id,
		&firstName,
		&lastName,
		&nationalID,
		&email,
		&hiredAt,
		&area,
		&fileID,
		&fileOwnerID,
		&fileNumber,
		&fileCategory,
		&fileStatus,
		&fileOpenedAt,
		&fileNotes,
	); err != nil {
		return nil, translateEmployeePgError(err)
	}

	e := &employee.Employee{
		ID:         id,
		FirstName:  firstName,
		LastName:   lastName,
		NationalID: nationalID,
		Email:      email.String,
		HiredAt:    datePtr(hiredAt),
		Area:       area.String,
	}

	if fileID.Valid {
		e.File = &personnelfile.PersonnelFile{
			ID:         fileID.Int64,
			EmployeeID: fileOwnerID.Int64,
			Number:     fileNumber.String,
			Category:   fileCategory.String,
			Status:     personnelfile.Status(fileStatus.String),
			OpenedAt:   datePtr(fileOpenedAt),
			Notes:      fileNotes.String,
		}
	}

	return e, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return employee.ErrNationalIDAlreadyExists
	}

	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func datePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

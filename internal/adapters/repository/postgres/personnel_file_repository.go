package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
	pgdb "github.com/santiagovOK/legajos/internal/platform/db/postgres"
)

const fileSelectBase = `
        SELECT id, employee_id, number, category, status, opened_at, notes
          FROM personnel_files
`

// PersonnelFileRepository is the PostgreSQL implementation of
// personnelfile.Repository.
type PersonnelFileRepository struct {
	pool pgdb.Queryer
}

// NewPersonnelFileRepository creates a PersonnelFileRepository.
func NewPersonnelFileRepository(pool pgdb.Queryer) *PersonnelFileRepository {
	return &PersonnelFileRepository{pool: pool}
}

// Create inserts the file row for the given employee and assigns the
// generated id onto file.
func (r *PersonnelFileRepository) Create(ctx context.Context, file *personnelfile.PersonnelFile, employeeID int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO personnel_files (employee_id, number, category, status, opened_at, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `,
		employeeID,
		file.Number,
		nullableString(file.Category),
		string(file.Status),
		nullableDate(file.OpenedAt),
		nullableString(file.Notes),
	)

	if err := row.Scan(&file.ID); err != nil {
		return translateFilePgError(err)
	}
	file.EmployeeID = employeeID
	return nil
}

// Update rewrites all mutable columns. The owning employee never changes.
func (r *PersonnelFileRepository) Update(ctx context.Context, file *personnelfile.PersonnelFile) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE personnel_files
           SET number = $1,
               category = $2,
               status = $3,
               opened_at = $4,
               notes = $5
         WHERE id = $6 AND deleted = FALSE
    `,
		file.Number,
		nullableString(file.Category),
		string(file.Status),
		nullableDate(file.OpenedAt),
		nullableString(file.Notes),
		file.ID,
	)
	if err != nil {
		return translateFilePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return personnelfile.ErrFileNotFound
	}
	return nil
}

// SoftDelete sets the logical-deletion flag and forces the contractual status
// to inactive, so the retained row never reads as an active contract.
func (r *PersonnelFileRepository) SoftDelete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE personnel_files SET deleted = TRUE, status = $1 WHERE id = $2 AND deleted = FALSE
    `, string(personnelfile.StatusInactive), id)
	if err != nil {
		return translateFilePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return personnelfile.ErrFileNotFound
	}
	return nil
}

// FindByID returns the non-deleted file or ErrFileNotFound.
func (r *PersonnelFileRepository) FindByID(ctx context.Context, id int64) (*personnelfile.PersonnelFile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, fileSelectBase+`
         WHERE id = $1 AND deleted = FALSE
    `, id)

	return scanFile(row)
}

// FindAll returns every non-deleted file.
func (r *PersonnelFileRepository) FindAll(ctx context.Context) ([]*personnelfile.PersonnelFile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, fileSelectBase+`
         WHERE deleted = FALSE
         ORDER BY id
    `)
	if err != nil {
		return nil, translateFilePgError(err)
	}
	return collectFiles(rows)
}

// FindByNumber does an exact lookup on the unique file number.
func (r *PersonnelFileRepository) FindByNumber(ctx context.Context, number string) (*personnelfile.PersonnelFile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, fileSelectBase+`
         WHERE number = $1 AND deleted = FALSE
         LIMIT 1
    `, number)

	return scanFile(row)
}

// FindByStatus returns every non-deleted file with the given status.
func (r *PersonnelFileRepository) FindByStatus(ctx context.Context, status personnelfile.Status) ([]*personnelfile.PersonnelFile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, fileSelectBase+`
         WHERE status = $1 AND deleted = FALSE
         ORDER BY id
    `, string(status))
	if err != nil {
		return nil, translateFilePgError(err)
	}
	return collectFiles(rows)
}

func collectFiles(rows pgx.Rows) ([]*personnelfile.PersonnelFile, error) {
	defer rows.Close()

	files := make([]*personnelfile.PersonnelFile, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, translateFilePgError(err)
	}
	return files, nil
}

func scanFile(row pgx.Row) (*personnelfile.PersonnelFile, error) {
	var (
		id         int64
		employeeID int64
		number     string
		category   sql.NullString
		status     string
		openedAt   sql.NullTime
		notes      sql.NullString
	)

	if err := row.Scan(&id, &employeeID, &number, &category, &status, &openedAt, &notes); err != nil {
		return nil, translateFilePgError(err)
	}

	return &personnelfile.PersonnelFile{
		ID:         id,
		EmployeeID: employeeID,
		Number:     number,
		Category:   category.String,
		Status:     personnelfile.Status(status),
		OpenedAt:   datePtr(openedAt),
		Notes:      notes.String,
	}, nil
}

func translateFilePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return personnelfile.ErrFileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return personnelfile.ErrNumberAlreadyExists
		case foreignKeyViolationCode:
			return personnelfile.ErrOwnerNotFound
		}
	}

	return err
}

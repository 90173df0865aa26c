package personnelfile

import "context"

// Repository is the persistence abstraction for personnel files. Writes run
// against the transaction carried by the context when one is present, and
// against an implicit auto-committing connection otherwise.
type Repository interface {
	Create(ctx context.Context, file *PersonnelFile, employeeID int64) error
	Update(ctx context.Context, file *PersonnelFile) error
	SoftDelete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*PersonnelFile, error)
	FindAll(ctx context.Context) ([]*PersonnelFile, error)
	FindByNumber(ctx context.Context, number string) (*PersonnelFile, error)
	FindByStatus(ctx context.Context, status Status) ([]*PersonnelFile, error)
}

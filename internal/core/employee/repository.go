package employee

import "context"

// Repository is the persistence abstraction for employees. Reads hydrate the
// owned personnel file in the same round trip and filter out soft-deleted
// rows. Writes run against the transaction carried by the context when one is
// present, and against an implicit auto-committing connection otherwise.
type Repository interface {
	// Create inserts the employee row and assigns the generated id onto e.
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	SoftDelete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindAll(ctx context.Context) ([]*Employee, error)
	FindByNationalID(ctx context.Context, nationalID string) (*Employee, error)
	// SearchByName matches the substring case-insensitively against first and
	// last name. Blank input yields an empty result without touching storage.
	SearchByName(ctx context.Context, text string) ([]*Employee, error)
}

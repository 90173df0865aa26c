package employee

import (
	"context"

	"github.com/santiagovOK/legajos/internal/core/personnelfile"
)

// Scope binds one storage connection to an explicit transaction boundary. It
// starts idle (auto-commit), Begin makes it active, Commit and Rollback bring
// it back to idle, and Close rolls back anything still active before
// releasing the connection. Rollback and Close never return errors: cleanup
// failures are logged so they cannot mask the failure that triggered them.
type Scope interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context)
	Close(ctx context.Context)
	// Context returns a context that routes repository calls through this
	// scope instead of the implicit auto-committing connection.
	Context(ctx context.Context) context.Context
}

// ScopeManager opens transaction scopes. The employee coordinator is the only
// component that opens scopes for writes; reads bypass it.
type ScopeManager interface {
	Open(ctx context.Context) (Scope, error)
}

// FileCoordinator is the transaction-participating surface of the
// personnel-file service. All three methods assume the caller already opened
// a scope and passes its context.
type FileCoordinator interface {
	CreateInTx(ctx context.Context, file *personnelfile.PersonnelFile, employeeID int64) error
	UpdateInTx(ctx context.Context, file *personnelfile.PersonnelFile) error
	DeleteInTx(ctx context.Context, id int64) error
}

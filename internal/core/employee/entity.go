package employee

import (
	"time"

	"github.com/santiagovOK/legajos/internal/core/personnelfile"
)

// Employee is the parent entity of the pair. Every non-deleted employee owns
// exactly one non-deleted personnel file; File carries the hydrated file when
// the employee is loaded and is nil only when that invariant has been broken.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	NationalID string
	Email      string
	HiredAt    *time.Time
	Area       string
	Deleted    bool
	File       *personnelfile.PersonnelFile
}

package personnelfile

import "time"

// Status is the contractual status of a personnel file.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PersonnelFile is the administrative record owned by exactly one employee.
// EmployeeID is set when the file is inserted and never changes afterwards.
type PersonnelFile struct {
	ID         int64
	EmployeeID int64
	Number     string
	Category   string
	Status     Status
	OpenedAt   *time.Time
	Notes      string
	Deleted    bool
}

package personnelfile

import "errors"

var (
	ErrInvalidID           = errors.New("personnelfile: invalid id")
	ErrNilFile             = errors.New("personnelfile: file is required")
	ErrInvalidNumber       = errors.New("personnelfile: invalid file number")
	ErrInvalidStatus       = errors.New("personnelfile: invalid status")
	ErrInvalidCategory     = errors.New("personnelfile: category too long")
	ErrInvalidNotes        = errors.New("personnelfile: notes too long")
	ErrFileNotFound        = errors.New("personnelfile: not found")
	ErrOwnerNotFound       = errors.New("personnelfile: owning employee not found")
	ErrNumberAlreadyExists = errors.New("personnelfile: file number already exists")
	ErrStandaloneCreate    = errors.New("personnelfile: a file cannot be created on its own, create the owning employee instead")
	ErrStandaloneDelete    = errors.New("personnelfile: a file cannot be deleted on its own, delete the owning employee instead")
)

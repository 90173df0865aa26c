package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/santiagovOK/legajos/internal/core/personnelfile"
)

// FileAdapter renders personnel-file reads for the console. The file has no
// console write surface: creation and deletion always go through the
// employee commands.
type FileAdapter struct {
	svc personnelfile.UseCase
	out io.Writer
}

// NewFileAdapter creates a FileAdapter writing to out.
func NewFileAdapter(svc personnelfile.UseCase, out io.Writer) *FileAdapter {
	return &FileAdapter{svc: svc, out: out}
}

// Show prints a single personnel file.
func (a *FileAdapter) Show(ctx context.Context, id int64) error {
	f, err := a.svc.GetFile(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPersonnel file %d\n", f.ID)
	fmt.Fprintf(a.out, "Number:   %s\n", f.Number)
	fmt.Fprintf(a.out, "Status:   %s\n", f.Status)
	fmt.Fprintf(a.out, "Employee: %d\n", f.EmployeeID)
	if f.Category != "" {
		fmt.Fprintf(a.out, "Category: %s\n", f.Category)
	}
	if f.OpenedAt != nil {
		fmt.Fprintf(a.out, "Opened:   %s\n", f.OpenedAt.Format("2006-01-02"))
	}
	if f.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", f.Notes)
	}
	fmt.Fprintln(a.out)
	return nil
}

// List prints all personnel files.
func (a *FileAdapter) List(ctx context.Context) error {
	files, err := a.svc.ListFiles(ctx)
	if err != nil {
		return err
	}

	a.printFiles(files)
	return nil
}

// ListByStatus prints the personnel files with the given contractual status.
func (a *FileAdapter) ListByStatus(ctx context.Context, status personnelfile.Status) error {
	files, err := a.svc.ListFilesByStatus(ctx, status)
	if err != nil {
		return err
	}

	a.printFiles(files)
	return nil
}

func (a *FileAdapter) printFiles(files []*personnelfile.PersonnelFile) {
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No personnel files found")
		return
	}

	fmt.Fprintf(a.out, "\n%-6s %-20s %-10s %-10s %s\n", "ID", "NUMBER", "STATUS", "EMPLOYEE", "CATEGORY")
	for _, f := range files {
		fmt.Fprintf(a.out, "%-6d %-20s %-10s %-10d %s\n", f.ID, f.Number, f.Status, f.EmployeeID, f.Category)
	}
	fmt.Fprintln(a.out)
}

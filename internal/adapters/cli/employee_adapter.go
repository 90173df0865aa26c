// Package cli provides thin console adapters that translate between terminal
// concerns and the core services. Adapters format output and report errors;
// every business decision stays in the core.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/santiagovOK/legajos/internal/core/employee"
)

// EmployeeAdapter renders employee operations for the console.
type EmployeeAdapter struct {
	svc employee.UseCase
	out io.Writer
}

// NewEmployeeAdapter creates an EmployeeAdapter writing to out.
func NewEmployeeAdapter(svc employee.UseCase, out io.Writer) *EmployeeAdapter {
	return &EmployeeAdapter{svc: svc, out: out}
}

// Create creates the employee together with its personnel file.
func (a *EmployeeAdapter) Create(ctx context.Context, e *employee.Employee) error {
	if err := a.svc.CreateEmployee(ctx, e); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Created employee %d (%s %s) with file %d (%s)\n",
		color.GreenString("✓"), e.ID, e.FirstName, e.LastName, e.File.ID, e.File.Number)
	return nil
}

// Update updates the employee and its personnel file.
func (a *EmployeeAdapter) Update(ctx context.Context, e *employee.Employee) error {
	if err := a.svc.UpdateEmployee(ctx, e); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Employee %d updated\n", color.GreenString("✓"), e.ID)
	return nil
}

// Delete soft-deletes the employee and its personnel file.
func (a *EmployeeAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.svc.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Employee %d deleted\n", color.GreenString("✓"), id)
	return nil
}

// Show prints a single employee with its file.
func (a *EmployeeAdapter) Show(ctx context.Context, id int64) error {
	e, err := a.svc.GetEmployee(ctx, id)
	if err != nil {
		return err
	}

	a.printEmployee(e)
	return nil
}

// ShowByNationalID prints the employee holding the national identifier.
func (a *EmployeeAdapter) ShowByNationalID(ctx context.Context, nationalID string) error {
	e, err := a.svc.FindEmployeeByNationalID(ctx, nationalID)
	if err != nil {
		return err
	}

	a.printEmployee(e)
	return nil
}

// List prints all employees.
func (a *EmployeeAdapter) List(ctx context.Context) error {
	employees, err := a.svc.ListEmployees(ctx)
	if err != nil {
		return err
	}

	a.printEmployees(employees)
	return nil
}

// Search prints the employees whose name or surname contains text.
func (a *EmployeeAdapter) Search(ctx context.Context, text string) error {
	employees, err := a.svc.SearchEmployeesByName(ctx, text)
	if err != nil {
		return err
	}

	a.printEmployees(employees)
	return nil
}

func (a *EmployeeAdapter) printEmployees(employees []*employee.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees found")
		return
	}

	fmt.Fprintf(a.out, "\n%-6s %-20s %-20s %-12s %-10s\n", "ID", "LAST NAME", "FIRST NAME", "NATIONAL ID", "FILE")
	for _, e := range employees {
		fileNumber := "-"
		if e.File != nil {
			fileNumber = e.File.Number
		}
		fmt.Fprintf(a.out, "%-6d %-20s %-20s %-12s %-10s\n", e.ID, e.LastName, e.FirstName, e.NationalID, fileNumber)
	}
	fmt.Fprintln(a.out)
}

func (a *EmployeeAdapter) printEmployee(e *employee.Employee) {
	fmt.Fprintf(a.out, "\nEmployee %d\n", e.ID)
	fmt.Fprintf(a.out, "Name:        %s %s\n", e.FirstName, e.LastName)
	fmt.Fprintf(a.out, "National ID: %s\n", e.NationalID)
	if e.Email != "" {
		fmt.Fprintf(a.out, "Email:       %s\n", e.Email)
	}
	if e.HiredAt != nil {
		fmt.Fprintf(a.out, "Hired:       %s\n", e.HiredAt.Format("2006-01-02"))
	}
	if e.Area != "" {
		fmt.Fprintf(a.out, "Area:        %s\n", e.Area)
	}
	if e.File != nil {
		fmt.Fprintf(a.out, "File:        %d (%s, %s)\n", e.File.ID, e.File.Number, e.File.Status)
	}
	fmt.Fprintln(a.out)
}

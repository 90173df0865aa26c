package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
)

type mockEmployeeUseCase struct {
	createFn func(ctx context.Context, e *employee.Employee) error
	updateFn func(ctx context.Context, e *employee.Employee) error
	deleteFn func(ctx context.Context, id int64) error
	getFn    func(ctx context.Context, id int64) (*employee.Employee, error)
	listFn   func(ctx context.Context) ([]*employee.Employee, error)
	findFn   func(ctx context.Context, nationalID string) (*employee.Employee, error)
	searchFn func(ctx context.Context, text string) ([]*employee.Employee, error)
}

func (m *mockEmployeeUseCase) CreateEmployee(ctx context.Context, e *employee.Employee) error {
	return m.createFn(ctx, e)
}

func (m *mockEmployeeUseCase) UpdateEmployee(ctx context.Context, e *employee.Employee) error {
	return m.updateFn(ctx, e)
}

func (m *mockEmployeeUseCase) DeleteEmployee(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEmployeeUseCase) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	return m.getFn(ctx, id)
}

func (m *mockEmployeeUseCase) ListEmployees(ctx context.Context) ([]*employee.Employee, error) {
	return m.listFn(ctx)
}

func (m *mockEmployeeUseCase) FindEmployeeByNationalID(ctx context.Context, nationalID string) (*employee.Employee, error) {
	return m.findFn(ctx, nationalID)
}

func (m *mockEmployeeUseCase) SearchEmployeesByName(ctx context.Context, text string) ([]*employee.Employee, error) {
	return m.searchFn(ctx, text)
}

func sampleEmployee() *employee.Employee {
	return &employee.Employee{
		ID:         42,
		FirstName:  "Ana",
		LastName:   "Gomez",
		NationalID: "30111222",
		File: &personnelfile.PersonnelFile{
			ID:         7,
			EmployeeID: 42,
			Number:     "L-001",
			Status:     personnelfile.StatusActive,
		},
	}
}

func TestEmployeeAdapter_Create(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{createFn: func(_ context.Context, e *employee.Employee) error {
		e.ID = 42
		e.File.ID = 7
		return nil
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	e := sampleEmployee()
	e.ID = 0
	e.File.ID = 0
	if err := adapter.Create(context.Background(), e); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Created employee 42") || !strings.Contains(got, "file 7 (L-001)") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEmployeeAdapter_Create_Error(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{createFn: func(context.Context, *employee.Employee) error {
		return employee.ErrNationalIDAlreadyExists
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	err := adapter.Create(context.Background(), sampleEmployee())
	if !errors.Is(err, employee.ErrNationalIDAlreadyExists) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("failed create must print nothing, got %q", out.String())
	}
}

func TestEmployeeAdapter_Show(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{getFn: func(_ context.Context, id int64) (*employee.Employee, error) {
		if id != 42 {
			t.Fatalf("unexpected id %d", id)
		}
		return sampleEmployee(), nil
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	if err := adapter.Show(context.Background(), 42); err != nil {
		t.Fatalf("Show returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Employee 42", "Ana Gomez", "30111222", "L-001"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q: %q", want, got)
		}
	}
}

func TestEmployeeAdapter_List_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{listFn: func(context.Context) ([]*employee.Employee, error) {
		return []*employee.Employee{}, nil
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No employees found") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEmployeeAdapter_Search(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{searchFn: func(_ context.Context, text string) ([]*employee.Employee, error) {
		if text != "gom" {
			t.Fatalf("unexpected search text %q", text)
		}
		return []*employee.Employee{sampleEmployee()}, nil
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	if err := adapter.Search(context.Background(), "gom"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Gomez") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEmployeeAdapter_Delete(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	mock := &mockEmployeeUseCase{deleteFn: func(_ context.Context, id int64) error {
		if id != 42 {
			t.Fatalf("unexpected id %d", id)
		}
		return nil
	}}
	adapter := NewEmployeeAdapter(mock, &out)

	if err := adapter.Delete(context.Background(), 42); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Employee 42 deleted") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/santiagovOK/legajos/internal/core/employee"
	"github.com/santiagovOK/legajos/internal/core/personnelfile"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// NewRootCmd builds the console command tree over the two adapters.
func NewRootCmd(employees *EmployeeAdapter, files *FileAdapter) *cobra.Command {
	root := &cobra.Command{
		Use:           "legajos",
		Short:         "Manage employees and their personnel files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(employeeCmd(employees))
	root.AddCommand(fileCmd(files))
	return root
}

func employeeCmd(a *EmployeeAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Create, update, delete and look up employees",
	}

	cmd.AddCommand(employeeCreateCmd(a))
	cmd.AddCommand(employeeUpdateCmd(a))
	cmd.AddCommand(employeeDeleteCmd(a))
	cmd.AddCommand(employeeShowCmd(a))
	cmd.AddCommand(employeeListCmd(a))
	cmd.AddCommand(employeeFindCmd(a))
	cmd.AddCommand(employeeSearchCmd(a))
	return cmd
}

func employeeCreateCmd(a *EmployeeAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee together with its personnel file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := employeeFromFlags(cmd)
			if err != nil {
				return err
			}

			file, err := fileFromFlags(cmd)
			if err != nil {
				return err
			}
			e.File = file

			return a.Create(cmd.Context(), e)
		},
	}

	addEmployeeFlags(cmd)
	addFileFlags(cmd)
	return cmd
}

func employeeUpdateCmd(a *EmployeeAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an employee and its personnel file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := employeeFromFlags(cmd)
			if err != nil {
				return err
			}
			e.ID = id

			file, err := fileFromFlags(cmd)
			if err != nil {
				return err
			}
			fileID, _ := cmd.Flags().GetInt64("file-id")
			file.ID = fileID
			e.File = file

			return a.Update(cmd.Context(), e)
		},
	}

	addEmployeeFlags(cmd)
	addFileFlags(cmd)
	cmd.Flags().Int64("file-id", 0, "id of the existing personnel file")
	return cmd
}

func employeeDeleteCmd(a *EmployeeAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Soft-delete an employee and its personnel file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Delete(cmd.Context(), id)
		},
	}
}

func employeeShowCmd(a *EmployeeAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show an employee with its personnel file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), id)
		},
	}
}

func employeeListCmd(a *EmployeeAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.List(cmd.Context())
		},
	}
}

func employeeFindCmd(a *EmployeeAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "find [national-id]",
		Short: "Find the employee holding a national identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ShowByNationalID(cmd.Context(), args[0])
		},
	}
}

func employeeSearchCmd(a *EmployeeAdapter) *cobra.Command {
	return &cobra.Command{
		Use:   "search [text]",
		Short: "Search employees by name or surname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Search(cmd.Context(), args[0])
		},
	}
}

func fileCmd(a *FileAdapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Look up personnel files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show a personnel file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all personnel files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.List(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "by-status [active|inactive]",
		Short: "List personnel files by contractual status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListByStatus(cmd.Context(), personnelfile.Status(args[0]))
		},
	})

	return cmd
}

func addEmployeeFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "employee first name")
	cmd.Flags().String("last-name", "", "employee last name")
	cmd.Flags().String("national-id", "", "unique national identifier")
	cmd.Flags().String("email", "", "contact email")
	cmd.Flags().String("hired", "", "hire date (YYYY-MM-DD)")
	cmd.Flags().String("area", "", "department or area")
}

func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().String("file-number", "", "unique personnel file number")
	cmd.Flags().String("file-category", "", "file category")
	cmd.Flags().String("file-status", string(personnelfile.StatusActive), "contractual status (active|inactive)")
	cmd.Flags().String("file-opened", "", "file opening date (YYYY-MM-DD)")
	cmd.Flags().String("file-notes", "", "free-text notes")
}

func employeeFromFlags(cmd *cobra.Command) (*employee.Employee, error) {
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	nationalID, _ := cmd.Flags().GetString("national-id")
	email, _ := cmd.Flags().GetString("email")
	area, _ := cmd.Flags().GetString("area")

	hired, _ := cmd.Flags().GetString("hired")
	hiredAt, err := parseDate(hired)
	if err != nil {
		return nil, fmt.Errorf("invalid --hired date: %w", err)
	}

	return &employee.Employee{
		FirstName:  firstName,
		LastName:   lastName,
		NationalID: nationalID,
		Email:      email,
		HiredAt:    hiredAt,
		Area:       area,
	}, nil
}

func fileFromFlags(cmd *cobra.Command) (*personnelfile.PersonnelFile, error) {
	number, _ := cmd.Flags().GetString("file-number")
	category, _ := cmd.Flags().GetString("file-category")
	status, _ := cmd.Flags().GetString("file-status")
	notes, _ := cmd.Flags().GetString("file-notes")

	opened, _ := cmd.Flags().GetString("file-opened")
	openedAt, err := parseDate(opened)
	if err != nil {
		return nil, fmt.Errorf("invalid --file-opened date: %w", err)
	}

	return &personnelfile.PersonnelFile{
		Number:   number,
		Category: category,
		Status:   personnelfile.Status(status),
		OpenedAt: openedAt,
		Notes:    notes,
	}, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

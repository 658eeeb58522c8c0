package handlers

import (
	"strconv"

	"github.com/spf13/cobra"

	"todocli/models"
)

type EmployeeHandler struct {
	*Handler
}

func NewEmployeeHandler(h *Handler) *EmployeeHandler {
	return &EmployeeHandler{Handler: h}
}

func (h *EmployeeHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}
	cmd.AddCommand(h.createCommand(), h.listCommand(), h.getCommand(), h.updateCommand())
	return cmd
}

func (h *EmployeeHandler) createCommand() *cobra.Command {
	var input models.CreateEmployeeInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			employee, err := svc.Employees.Create(cmd.Context(), input)
			if err != nil {
				return fail("Error creating employee", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Employee created successfully!", h.r.employeeFields(employee))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "employee name")
	cmd.Flags().StringVar(&input.Email, "email", "", "employee email")
	cmd.Flags().UintVar(&input.TeamID, "team", 0, "id of the employee's team")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func (h *EmployeeHandler) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			employees, err := svc.Employees.List(cmd.Context())
			if err != nil {
				return fail("Error listing employees", err)
			}
			if len(employees) == 0 {
				h.r.notice(cmd.OutOrStdout(), "No employees found.")
				return nil
			}

			rows := make([][]string, 0, len(employees))
			for _, e := range employees {
				rows = append(rows, []string{
					formatID(e.ID),
					e.Name,
					e.Email,
					orNA(e.TeamName()),
					strconv.Itoa(len(e.Tasks)),
				})
			}
			h.r.table(cmd.OutOrStdout(), "Employees",
				[]string{"ID", "Name", "Email", "Team", "Tasks count"}, rows)
			return nil
		},
	}
}

func (h *EmployeeHandler) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error fetching employee", err)
			}
			svc, err := h.services()
			if err != nil {
				return err
			}

			e, err := svc.Employees.GetByID(cmd.Context(), id)
			if err != nil {
				return fail("Error fetching employee", err)
			}

			h.r.table(cmd.OutOrStdout(), "Employees", []string{"ID", "Name", "Email", "Team"}, [][]string{{
				formatID(e.ID), e.Name, e.Email, orNA(e.TeamName()),
			}})
			return nil
		},
	}
}

func (h *EmployeeHandler) updateCommand() *cobra.Command {
	var (
		name, email string
		teamID      uint
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an employee's name, email or team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error updating employee", err)
			}

			var input models.UpdateEmployeeInput
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("email") {
				input.Email = &email
			}
			if cmd.Flags().Changed("team") {
				input.TeamID = &teamID
			}

			svc, err := h.services()
			if err != nil {
				return err
			}

			employee, err := svc.Employees.Update(cmd.Context(), id, input)
			if err != nil {
				return fail("Error updating employee", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Employee updated successfully!", h.r.employeeFields(employee))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new employee name")
	cmd.Flags().StringVar(&email, "email", "", "new employee email")
	cmd.Flags().UintVar(&teamID, "team", 0, "id of the new team")
	return cmd
}

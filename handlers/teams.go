package handlers

import (
	"strconv"

	"github.com/spf13/cobra"

	"todocli/models"
)

type TeamHandler struct {
	*Handler
}

func NewTeamHandler(h *Handler) *TeamHandler {
	return &TeamHandler{Handler: h}
}

func (h *TeamHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage teams",
	}
	cmd.AddCommand(h.createCommand(), h.listCommand(), h.getCommand(), h.deleteCommand())
	return cmd
}

func (h *TeamHandler) createCommand() *cobra.Command {
	var input models.CreateTeamInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			team, err := svc.Teams.Create(cmd.Context(), input)
			if err != nil {
				return fail("Error creating team", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Team created successfully!", h.r.teamFields(team))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "team name")
	cmd.Flags().StringVar(&input.Description, "description", "", "team description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (h *TeamHandler) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams with their employee and task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			teams, err := svc.Teams.List(cmd.Context())
			if err != nil {
				return fail("Error listing teams", err)
			}
			if len(teams) == 0 {
				h.r.notice(cmd.OutOrStdout(), "No teams found.")
				return nil
			}

			rows := make([][]string, 0, len(teams))
			for _, t := range teams {
				rows = append(rows, []string{
					formatID(t.ID),
					t.Name,
					orNA(t.Description),
					strconv.FormatInt(t.EmployeesCount, 10),
					strconv.FormatInt(t.TasksCount, 10),
				})
			}
			h.r.table(cmd.OutOrStdout(), "Teams",
				[]string{"ID", "Name", "Description", "Employees count", "Tasks count"}, rows)
			return nil
		},
	}
}

func (h *TeamHandler) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error fetching team", err)
			}
			svc, err := h.services()
			if err != nil {
				return err
			}

			team, err := svc.Teams.GetByID(cmd.Context(), id)
			if err != nil {
				return fail("Error fetching team", err)
			}

			h.r.table(cmd.OutOrStdout(), "Team", []string{"ID", "Name", "Description"}, [][]string{{
				formatID(team.ID), team.Name, orNA(team.Description),
			}})
			return nil
		},
	}
}

func (h *TeamHandler) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error deleting team", err)
			}
			svc, err := h.services()
			if err != nil {
				return err
			}

			if _, err := svc.Teams.Delete(cmd.Context(), id); err != nil {
				return fail("Error deleting team", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Team deleted successfully!", [][2]string{{"ID", formatID(id)}})
			return nil
		},
	}
}

package handlers

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todocli/models"
)

var exportHeader = []string{"ID", "Title", "Description", "Status", "Priority", "Team", "Owner", "Created", "Updated"}

func (h *TaskHandler) exportCommand() *cobra.Command {
	var (
		teamID uint
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tasks as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			var tasks []models.Task
			if cmd.Flags().Changed("team") {
				tasks, err = svc.Tasks.ListByTeam(cmd.Context(), teamID)
			} else {
				tasks, err = svc.Tasks.List(cmd.Context())
			}
			if err != nil {
				return fail("Error exporting tasks", err)
			}

			if output != "" && output != "-" {
				return writeTasksFile(output, tasks)
			}
			if err := writeTasksCSV(cmd.OutOrStdout(), tasks); err != nil {
				return fail("Error exporting tasks", models.Storage("write export", err))
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&teamID, "team", 0, "only tasks of this team")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, stdout when empty")
	return cmd
}

// writeTasksFile writes the CSV to path. A failed close fails the export like a failed write.
func writeTasksFile(path string, tasks []models.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fail("Error exporting tasks", models.Storage("create export file", err))
	}
	if err := writeTasksCSV(f, tasks); err != nil {
		_ = f.Close()
		return fail("Error exporting tasks", models.Storage("write export", err))
	}
	if err := f.Close(); err != nil {
		return fail("Error exporting tasks", models.Storage("close export file", err))
	}
	return nil
}

// writeTasksCSV writes one row per task. Enum columns use the English labels.
func writeTasksCSV(w io.Writer, tasks []models.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		team := ""
		if t.Team != nil {
			team = t.Team.Name
		}
		owner := ""
		if t.Owner != nil {
			owner = t.Owner.Name
		}
		err := writer.Write([]string{
			formatID(t.ID),
			t.Title,
			t.Description,
			t.Status.String(),
			t.Priority.String(),
			team,
			owner,
			t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			t.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

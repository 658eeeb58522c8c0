package handlers

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"todocli/models"
)

type TaskHandler struct {
	*Handler
}

func NewTaskHandler(h *Handler) *TaskHandler {
	return &TaskHandler{Handler: h}
}

func (h *TaskHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		h.createCommand(),
		h.listCommand(),
		h.getCommand(),
		h.updateCommand(),
		h.statusCommand(),
		h.assignCommand(),
		h.deleteCommand(),
		h.statsCommand(),
		h.exportCommand(),
	)
	return cmd
}

func (h *TaskHandler) createCommand() *cobra.Command {
	var (
		input    models.CreateTaskInput
		ownerID  uint
		priority string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("assignee") {
				input.OwnerID = &ownerID
			}
			if cmd.Flags().Changed("priority") {
				p, err := models.ParsePriority(priority)
				if err != nil {
					return fail("Error creating task", err)
				}
				input.Priority = &p
			}

			svc, err := h.services()
			if err != nil {
				return err
			}

			task, err := svc.Tasks.Create(cmd.Context(), input)
			if err != nil {
				return fail("Error creating task", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Task created successfully!", h.r.taskFields(task))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Title, "title", "", "task title")
	cmd.Flags().StringVar(&input.Description, "description", "", "task description")
	cmd.Flags().UintVar(&input.TeamID, "team", 0, "id of the team")
	cmd.Flags().UintVarP(&ownerID, "assignee", "a", 0, "id of the responsible employee")
	cmd.Flags().StringVarP(&priority, "priority", "p", models.DefaultPriority.String(), "low, medium or high")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func (h *TaskHandler) listCommand() *cobra.Command {
	var teamID, employeeID uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered by team or employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			var tasks []models.Task
			switch {
			case cmd.Flags().Changed("team"):
				tasks, err = svc.Tasks.ListByTeam(cmd.Context(), teamID)
			case cmd.Flags().Changed("employee"):
				tasks, err = svc.Tasks.ListByEmployee(cmd.Context(), employeeID)
			default:
				tasks, err = svc.Tasks.List(cmd.Context())
			}
			if err != nil {
				return fail("Error listing tasks", err)
			}

			h.renderTasks(cmd, tasks)
			return nil
		},
	}
	cmd.Flags().UintVar(&teamID, "team", 0, "only tasks of this team")
	cmd.Flags().UintVar(&employeeID, "employee", 0, "only tasks owned by this employee")
	cmd.MarkFlagsMutuallyExclusive("team", "employee")
	return cmd
}

func (h *TaskHandler) renderTasks(cmd *cobra.Command, tasks []models.Task) {
	if len(tasks) == 0 {
		h.r.notice(cmd.OutOrStdout(), "No tasks found.")
		return
	}

	rows := make([][]string, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		team := formatID(t.TeamID)
		if t.Team != nil {
			team = t.Team.Name
		}
		rows = append(rows, []string{
			formatID(t.ID),
			t.Title,
			h.r.t(t.Status.String()),
			h.r.t(t.Priority.String()),
			team,
			h.r.owner(t),
		})
	}
	h.r.table(cmd.OutOrStdout(), "Tasks",
		[]string{"ID", "Title", "Status", "Priority", "Team", "Owner"}, rows)
}

func (h *TaskHandler) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error fetching task", err)
			}
			svc, err := h.services()
			if err != nil {
				return err
			}

			task, err := svc.Tasks.GetByID(cmd.Context(), id)
			if err != nil {
				return fail("Error fetching task", err)
			}

			h.renderTasks(cmd, []models.Task{*task})
			return nil
		},
	}
}

func (h *TaskHandler) updateCommand() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a task's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error updating task", err)
			}

			var input models.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}

			return h.mutate(cmd, func(svc taskMutator) (*models.Task, error) {
				return svc.Update(cmd.Context(), id, input)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func (h *TaskHandler) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|in_progress|completed>",
		Short: "Change a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error updating task", err)
			}
			status, err := models.ParseStatus(args[1])
			if err != nil {
				return fail("Error updating task", err)
			}

			return h.mutate(cmd, func(svc taskMutator) (*models.Task, error) {
				return svc.UpdateStatus(cmd.Context(), id, status)
			})
		},
	}
}

func (h *TaskHandler) assignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <id> <employee-id>",
		Short: "Assign a task to an employee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error updating task", err)
			}
			employeeID, err := parseID("employee", args[1])
			if err != nil {
				return fail("Error updating task", err)
			}

			return h.mutate(cmd, func(svc taskMutator) (*models.Task, error) {
				return svc.Assign(cmd.Context(), id, employeeID)
			})
		},
	}
}

func (h *TaskHandler) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return fail("Error deleting task", err)
			}
			svc, err := h.services()
			if err != nil {
				return err
			}

			if _, err := svc.Tasks.Delete(cmd.Context(), id); err != nil {
				return fail("Error deleting task", err)
			}

			h.r.panel(cmd.OutOrStdout(), "Success", "Task deleted successfully!", [][2]string{{"ID", formatID(id)}})
			return nil
		},
	}
}

func (h *TaskHandler) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count tasks by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := h.services()
			if err != nil {
				return err
			}

			stats, err := svc.Tasks.Statistics(cmd.Context())
			if err != nil {
				return fail("Error computing statistics", err)
			}

			rows := make([][]string, 0, len(stats))
			for _, p := range models.Priorities() {
				rows = append(rows, []string{h.r.t(p.String()), strconv.FormatInt(stats[p.String()], 10)})
			}
			rows = append(rows, []string{h.r.t("Total"), strconv.FormatInt(stats[models.StatisticsTotalKey], 10)})

			h.r.table(cmd.OutOrStdout(), "Task statistics", []string{"Priority", "Count"}, rows)
			return nil
		},
	}
}

// taskMutator is the subset of the task service used by the editing commands.
type taskMutator interface {
	Update(ctx context.Context, id uint, input models.UpdateTaskInput) (*models.Task, error)
	UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Task, error)
	Assign(ctx context.Context, id uint, employeeID uint) (*models.Task, error)
}

func (h *TaskHandler) mutate(cmd *cobra.Command, change func(svc taskMutator) (*models.Task, error)) error {
	svc, err := h.services()
	if err != nil {
		return err
	}

	task, err := change(svc.Tasks)
	if err != nil {
		return fail("Error updating task", err)
	}

	h.r.panel(cmd.OutOrStdout(), "Success", "Task updated successfully!", h.r.taskFields(task))
	return nil
}

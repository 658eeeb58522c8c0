package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"

	"todocli/models"
)

// renderer writes tables and panels with translated labels.
type renderer struct {
	p *message.Printer
}

func (r renderer) t(key string) string {
	return lookup(r.p, key)
}

func (r renderer) table(w io.Writer, title string, header []string, rows [][]string) {
	fmt.Fprintln(w, r.t(title))

	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = r.t(h)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(labels)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// panel prints a titled key/value block, used for success output.
func (r renderer) panel(w io.Writer, title, headline string, fields [][2]string) {
	fmt.Fprintf(w, "%s: %s\n", r.t(title), r.t(headline))

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	for _, f := range fields {
		table.Append([]string{r.t(f[0]), f[1]})
	}
	table.Render()
}

func (r renderer) notice(w io.Writer, msg string) {
	fmt.Fprintln(w, r.t(msg))
}

func (r renderer) teamFields(team *models.Team) [][2]string {
	return [][2]string{
		{"ID", formatID(team.ID)},
		{"Name", team.Name},
		{"Description", orNA(team.Description)},
	}
}

func (r renderer) employeeFields(e *models.Employee) [][2]string {
	return [][2]string{
		{"ID", formatID(e.ID)},
		{"Name", e.Name},
		{"Email", e.Email},
		{"Team ID", formatID(e.TeamID)},
	}
}

func (r renderer) taskFields(task *models.Task) [][2]string {
	return [][2]string{
		{"ID", formatID(task.ID)},
		{"Title", task.Title},
		{"Description", orNA(task.Description)},
		{"Status", r.t(task.Status.String())},
		{"Priority", r.t(task.Priority.String())},
		{"Team ID", formatID(task.TeamID)},
		{"Owner", r.owner(task)},
	}
}

func (r renderer) owner(task *models.Task) string {
	switch {
	case task.Owner != nil:
		return task.Owner.Name
	case task.OwnerID != nil:
		return formatID(*task.OwnerID)
	default:
		return r.t("Unassigned")
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

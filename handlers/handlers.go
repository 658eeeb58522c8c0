package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"todocli/app"
	"todocli/models"
	"todocli/services"
)

const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitStorageError = 3
)

// CommandError records which command step failed; the message shown to the
// user is built from Op and the failure kind of Err.
type CommandError struct {
	Op  string
	Err error
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

func fail(op string, err error) error {
	return &CommandError{Op: op, Err: err}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		// cobra flag and argument errors
		return ExitInvalidInput
	}

	switch models.KindOf(err) {
	case models.ErrValidation, models.ErrInvalidEmail:
		return ExitInvalidInput
	case models.ErrStorage, nil:
		return ExitStorageError
	default:
		return ExitFailure
	}
}

// Handler holds what every command needs: the application context and the
// output renderer.
type Handler struct {
	app *app.App
	r   renderer
}

func (h *Handler) services() (*services.Services, error) {
	svc, err := h.app.Services()
	if err != nil {
		return nil, fail("Error opening database", models.Storage("open store", err))
	}
	return svc, nil
}

// NewRootCommand builds the command tree bound to a.
func NewRootCommand(a *app.App, version string) *cobra.Command {
	h := &Handler{app: a, r: renderer{p: NewPrinter(a.Config.Language)}}

	root := &cobra.Command{
		Use:           "todocli",
		Short:         "Task management for small teams",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := h.services(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: TODO CLI\n", h.r.t("Welcome"))
			fmt.Fprintln(w, h.r.t("Task management for small teams"))
			fmt.Fprintln(w)
			fmt.Fprintln(w, h.r.t("Use --help to see the available commands"))
			return nil
		},
	}
	root.SetVersionTemplate("TODO CLI v{{.Version}}\n")

	root.AddCommand(
		NewTeamHandler(h).Command(),
		NewEmployeeHandler(h).Command(),
		NewTaskHandler(h).Command(),
	)
	return root
}

// Run executes the command line and returns the exit status. Failures are
// printed to stderr in the configured language.
func Run(ctx context.Context, a *app.App, version string, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	root := NewRootCommand(a, version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, NewPrinter(a.Config.Language), err)
	}
	return ExitCode(err)
}

func printError(w io.Writer, r *message.Printer, err error) {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintln(w, r.Sprintf("error: %v", err))
		return
	}

	var detail string
	switch models.KindOf(cmdErr.Err) {
	case models.ErrValidation:
		detail = r.Sprintf("invalid input: %v", cmdErr.Err)
	case models.ErrInvalidEmail:
		detail = r.Sprintf("invalid email: %v", cmdErr.Err)
	case models.ErrDuplicate:
		detail = r.Sprintf("already registered: %v", cmdErr.Err)
	case models.ErrNotFound:
		detail = r.Sprintf("not found: %v", cmdErr.Err)
	case models.ErrStorage:
		detail = r.Sprintf("storage failure: %v", cmdErr.Err)
	default:
		detail = r.Sprintf("error: %v", cmdErr.Err)
	}
	fmt.Fprintf(w, "%s: %s\n", lookup(r, cmdErr.Op), detail)
}

func parseID(field, text string) (uint, error) {
	id, err := strconv.ParseUint(text, 10, 0)
	if err != nil || id == 0 {
		return 0, models.Validationf(field, "invalid id %q", text)
	}
	return uint(id), nil
}

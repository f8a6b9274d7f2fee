// Package cli implements the trackerctl command tree. Every command runs
// through the same ProjectService pipelines as the HTTP API.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Exit codes returned by ExitCode.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
)

// Bootstrap builds the project service for a configuration profile. The
// returned release func is called once after the command finishes.
type Bootstrap func(ctx context.Context, profile string) (svc ports.ProjectService, release func(context.Context) error, err error)

// session is the per-invocation state shared by all subcommands.
type session struct {
	boot    Bootstrap
	profile string
	output  string

	svc     ports.ProjectService
	release func(context.Context) error
}

// NewRootCmd creates the top-level "trackerctl" command.
func NewRootCmd(boot Bootstrap) *cobra.Command {
	s := &session{boot: boot}

	root := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Manage projects and their to-do items",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&s.profile, "profile", "local", "configuration profile (local, dev, qa, prod)")
	root.PersistentFlags().StringVarP(&s.output, "output", "o", OutputText, "output format: text or json")

	root.AddCommand(
		newProjectCmd(s),
		newItemCmd(s),
	)

	return root
}

func (s *session) open(ctx context.Context) error {
	switch s.output {
	case OutputText, OutputJSON:
	default:
		return domain.NewValidationError("output", fmt.Sprintf("must be one of: text, json; got %q", s.output))
	}

	svc, release, err := s.boot(ctx, s.profile)
	if err != nil {
		return fmt.Errorf("starting tracker: %w", err)
	}
	s.svc = svc
	s.release = release
	return nil
}

// run wraps a command body so the session is released even when it fails.
func (s *session) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if s.release == nil {
				return
			}
			release := s.release
			s.release = nil
			if rerr := release(context.WithoutCancel(cmd.Context())); rerr != nil {
				err = errors.Join(err, fmt.Errorf("releasing tracker: %w", rerr))
			}
		}()
		return fn(cmd, args)
	}
}

// ExitCode maps a command error onto a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch domain.FailureKind(err) {
	case domain.KindValidation:
		return ExitValidation
	case domain.KindNotFound:
		return ExitNotFound
	default:
		return ExitFailure
	}
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nicolagi/projectlists"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var errNoCommand = errors.New("a command is required")

// app holds what the subcommands share for the duration of one invocation.
type app struct {
	out    io.Writer
	opts   []projectlists.ClientOption
	client *projectlists.Client

	debug   bool
	wireLog string
}

// commandError carries the fixed message reported when a subcommand fails, and what caused it.
type commandError struct {
	msg   string
	cause error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func fail(msg string, cause error) error {
	return &commandError{msg: msg, cause: cause}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "projectlists",
		Short:         "Read and change projects, lists and items on the project service",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.debug {
				log.SetLevel(log.DebugLevel)
			}
			return createClient(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoCommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log requests and responses at debug level")
	root.PersistentFlags().StringVar(&a.wireLog, "wire-log", "", "append every request and response to this `file`")

	root.AddCommand(
		&cobra.Command{
			Use:   "get-all-projects",
			Short: "Print all projects as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				projects, err := a.client.AllProjects()
				if err != nil {
					return fail("Failed to get projects", err)
				}
				return printJSON(a.out, projects)
			},
		},
		&cobra.Command{
			Use:   "get-project <project_id>",
			Short: "Print a project and the contents of its lists as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				project, err := a.client.FullProject(args[0])
				if err != nil {
					return fail("Failed to get project", err)
				}
				return printJSON(a.out, project)
			},
		},
		&cobra.Command{
			Use:   "update-item <item_id> <done>",
			Short: "Mark an item as done (only the word true) or not done (anything else)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				patch := projectlists.NewItemPatch(args[0]).WithDone(args[1] == "true")
				if err := a.client.UpdateItem(patch); err != nil {
					return fail("Failed to update item", err)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "new-list <project_id> <name>",
			Short: "Create a list and print its id",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := a.client.NewList(args[0], args[1])
				if err != nil {
					return fail("Failed to create list", err)
				}
				_, _ = fmt.Fprintln(a.out, id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "new-list-item <list_id> <name>",
			Short: "Create an item and print its id",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := a.client.NewListItem(args[0], args[1])
				if err != nil {
					return fail("Failed to create list item", err)
				}
				_, _ = fmt.Fprintln(a.out, id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete-list <list_id>",
			Short: "Delete a list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteList(args[0]); err != nil {
					return fail("Failed to delete list", err)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete-list-item <item_id>",
			Short: "Delete an item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteListItem(args[0]); err != nil {
					return fail("Failed to delete item", err)
				}
				return nil
			},
		},
	)
	return root
}

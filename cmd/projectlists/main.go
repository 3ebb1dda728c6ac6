package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nicolagi/projectlists"
	log "github.com/sirupsen/logrus"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status. The client options are appended to the ones
// derived from flags; tests use them to point the client at a fake service.
func run(args []string, stdout io.Writer, stderr io.Writer, opts ...projectlists.ClientOption) int {
	log.SetOutput(stderr)
	log.SetLevel(log.InfoLevel)

	a := &app{out: stdout, opts: opts}
	defer closeClient(a)
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	var failure *commandError
	if errors.As(err, &failure) {
		log.WithField("cause", failure.cause).Error(failure.msg)
		return exitFailure
	}
	log.WithField("command", cmd.CommandPath()).Error(err)
	_, _ = fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}

func createClient(a *app) error {
	opts := []projectlists.ClientOption{}
	if a.wireLog != "" {
		opts = append(opts, projectlists.WithWireLog(a.wireLog))
	}
	opts = append(opts, a.opts...)
	client, err := projectlists.NewClient(opts...)
	if err != nil {
		return fail("Could not create client", err)
	}
	a.client = client
	return nil
}

func closeClient(a *app) {
	if a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil {
		log.WithField("cause", err).Warning("Could not close client")
	}
}

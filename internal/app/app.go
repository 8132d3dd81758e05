// Package app owns the command-line surface: flag parsing, operation
// selection, credential resolution, and handing the dispatch loop its
// collaborators.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"ses-identity-tool/internal/config"
	"ses-identity-tool/internal/dispatch"
	"ses-identity-tool/internal/httpclient"
	"ses-identity-tool/internal/logging"
	"ses-identity-tool/internal/operation"
	"ses-identity-tool/internal/render"
	"ses-identity-tool/internal/ses"
	"ses-identity-tool/internal/util"
)

// callerFactory builds the remote caller once the endpoint and credentials
// are known. Tests swap it to keep the network out.
type callerFactory func(endpoint string, creds config.Credentials) dispatch.Caller

// Runner wires the command line to the dispatch loop.
type Runner struct {
	newCaller callerFactory
	renderer  dispatch.Renderer
	stdout    io.Writer
	stderr    io.Writer
}

// RunnerOpts allows overriding the Runner's collaborators.
type RunnerOpts struct {
	NewCaller callerFactory
	Renderer  dispatch.Renderer
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewRunner creates a Runner with the default collaborators.
func NewRunner() *Runner {
	return NewRunnerWithOpts(RunnerOpts{})
}

// NewRunnerWithOpts creates a Runner, filling in defaults for any
// collaborator left unset.
func NewRunnerWithOpts(opts RunnerOpts) *Runner {
	newCaller := opts.NewCaller
	if newCaller == nil {
		newCaller = func(endpoint string, creds config.Credentials) dispatch.Caller {
			return ses.NewHTTPCaller(endpoint, creds, httpclient.New(httpclient.DefaultTimeout))
		}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.New()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Runner{
		newCaller: newCaller,
		renderer:  renderer,
		stdout:    stdout,
		stderr:    stderr,
	}
}

// usageText defines the command-line help information.
const usageText = `Usage:
  ses-identity-tool [options]

Exactly one operation must be selected:
  -v, --verify IDENTITY
        Verify an email address or domain for sending
  -l, --list
        List every registered identity
  -d, --delete IDENTITY
        Delete an identity
  -a, --attributes ID[,ID...]
        Show verification attributes for the listed identities

Options:
  -e, --endpoint URL
        Service endpoint (default "https://email.us-east-1.amazonaws.com/")
  -k, --aws-credential-file FILE
        Credential file; falls back to $AWS_CREDENTIAL_FILE, then to the
        $AWS_ACCESS_KEY_ID/$AWS_SECRET_ACCESS_KEY pair
  --verbose
        Show request and response detail on stderr
  --help
        Show help

Exit codes:
  0 success, 1 bad input, 2 usage error, 30 service unavailable,
  31 access denied, 32 execution failure, 70 internal error,
  75 throttled (back off and retry)

Examples:
  ses-identity-tool -v user@example.com
  ses-identity-tool -v example.com -k ./aws-credentials
  ses-identity-tool -l
  ses-identity-tool -a example.com,user@example.com
`

// Usage prints the command-line help information to the specified writer.
func (r *Runner) Usage(writer io.Writer) {
	fmt.Fprint(writer, usageText)
}

// Run parses the arguments, resolves credentials and executes the selected
// operation, returning the process exit code.
func (r *Runner) Run(args []string) int {
	fs := flag.NewFlagSet("ses-identity-tool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		verifyArg string
		listFlag  bool
		deleteArg string
		attrsArg  string
		endpoint  string
		credFile  string
		verbose   bool
		helpFlag  bool
	)
	fs.StringVar(&verifyArg, "v", "", "Verify an email address or domain")
	fs.StringVar(&verifyArg, "verify", "", "Verify an email address or domain")
	fs.BoolVar(&listFlag, "l", false, "List every registered identity")
	fs.BoolVar(&listFlag, "list", false, "List every registered identity")
	fs.StringVar(&deleteArg, "d", "", "Delete an identity")
	fs.StringVar(&deleteArg, "delete", "", "Delete an identity")
	fs.StringVar(&attrsArg, "a", "", "Show verification attributes (comma-separated identities)")
	fs.StringVar(&attrsArg, "attributes", "", "Show verification attributes (comma-separated identities)")
	fs.StringVar(&endpoint, "e", ses.DefaultEndpoint, "Service endpoint")
	fs.StringVar(&endpoint, "endpoint", ses.DefaultEndpoint, "Service endpoint")
	fs.StringVar(&credFile, "k", "", "Credential file")
	fs.StringVar(&credFile, "aws-credential-file", "", "Credential file")
	fs.BoolVar(&verbose, "verbose", false, "Show request and response detail")
	fs.BoolVar(&helpFlag, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			r.Usage(r.stderr)
			return dispatch.ExitSuccess
		}
		fmt.Fprintf(r.stderr, "Error: %v\n\n", err)
		r.Usage(r.stderr)
		return dispatch.ExitUsage
	}

	if helpFlag {
		r.Usage(r.stderr)
		return dispatch.ExitSuccess
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(r.stderr, "Error: unexpected argument %q\n\n", fs.Arg(0))
		r.Usage(r.stderr)
		return dispatch.ExitUsage
	}

	if verbose {
		logging.SetLevel(logging.Debug)
	}

	op, err := selectOperation(verifyArg, listFlag, deleteArg, attrsArg)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n\n", err)
		r.Usage(r.stderr)
		return dispatch.ExitUsage
	}

	creds, err := config.Resolve(util.ExpandEnv(credFile))
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return dispatch.ExitUsage
	}

	params, err := operation.BuildParams(op)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return dispatch.ExitUsage
	}

	caller := r.newCaller(util.ExpandEnv(endpoint), creds)
	return dispatch.Run(context.Background(), caller, r.renderer, op, params, r.stdout)
}

// selectOperation enforces the four-way exclusive choice. An empty value
// means the flag was not given.
func selectOperation(verify string, list bool, del string, attrs string) (operation.Operation, error) {
	selected := 0
	if verify != "" {
		selected++
	}
	if list {
		selected++
	}
	if del != "" {
		selected++
	}
	if attrs != "" {
		selected++
	}
	if selected == 0 {
		return operation.Operation{}, errors.New("exactly one of -v, -l, -d or -a must be given")
	}
	if selected > 1 {
		return operation.Operation{}, errors.New("options -v, -l, -d and -a are mutually exclusive")
	}

	switch {
	case verify != "":
		return operation.Verify(verify), nil
	case list:
		return operation.List(), nil
	case del != "":
		return operation.Delete(del), nil
	default:
		identities := splitIdentities(attrs)
		if len(identities) == 0 {
			return operation.Operation{}, errors.New("-a requires at least one identity")
		}
		return operation.Attributes(identities), nil
	}
}

// splitIdentities turns the -a argument into an identity list. Blank
// entries from stray commas are dropped.
func splitIdentities(raw string) []string {
	var identities []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			identities = append(identities, part)
		}
	}
	return identities
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/teleproj/internal/config"
	"github.com/raphi011/teleproj/internal/log"
	"github.com/raphi011/teleproj/internal/output"
	"github.com/raphi011/teleproj/internal/resolve"
	"github.com/raphi011/teleproj/internal/store"
	"github.com/raphi011/teleproj/internal/ui/styles"
)

// errCancelled is returned when the interactive picker is dismissed.
// It exits non-zero without a message.
var errCancelled = errors.New("cancelled")

// rootOptions holds the parsed flags of a single invocation.
type rootOptions struct {
	add         string
	remove      string
	list        bool
	interactive bool
	copy        bool
	completion  string
	verbose     bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "teleproj [index|name]",
		Short: "Bookmark project directories and jump to them by index or name",
		Long: `teleproj keeps an ordered list of project directories and prints the one
a query designates, so a shell function can cd into it.

A query is resolved in this order:
  - index: a plain number addresses a project by position (see --list)
  - exact name: the directory name, ignoring case
  - fuzzy name: the characters of the query appear in order in the name;
    prefix matches beat substrings, which beat scattered matches, and
    shorter names win. Ties are reported instead of guessed.

Only the resolved path is printed to stdout. Everything else goes to stderr
or is plain text a wrapper can show as-is.

Mode precedence: --add, then --remove, then --list, then the query.`,
		Example: `  teleproj --add .          # save the current directory
  teleproj --list           # show saved projects with their index
  teleproj 2                # print the project at index 2
  teleproj blog             # print the project whose name best matches "blog"
  teleproj -i               # pick a project interactively
  teleproj --remove 2       # forget the project at index 2

  # shell function:
  tp() { local p; p="$(teleproj "$@")" && [ -d "$p" ] && cd "$p" || printf '%s\n' "$p"; }`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Diagnostics on stderr, data on stdout
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, &opts, args)
		},
		ValidArgsFunction: completeProjects,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&opts.add, "add", "a", "", "Save a directory to the end of the list")
	f.StringVarP(&opts.remove, "remove", "r", "", "Remove the project at this index")
	f.BoolVarP(&opts.list, "list", "l", false, "List saved projects with their index")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Pick a project with fuzzy search (also resolves ambiguous queries)")
	f.BoolVar(&opts.copy, "copy", false, "Copy the resolved path to the clipboard")
	f.StringVar(&opts.completion, "completion", "", "Print a shell completion script (bash, zsh, fish, powershell)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Show how the query was resolved")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all diagnostic output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = cmd.RegisterFlagCompletionFunc("remove", completeIndexes)
	_ = cmd.MarkFlagDirname("add")
	_ = cmd.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(
		[]string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runRoot picks the single mode of this invocation.
func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	flags := cmd.Flags()

	mutating := flags.Changed("add") || flags.Changed("remove")
	if mutating && len(args) > 0 {
		l.Debug("ignoring query, a mutating flag takes precedence", "query", args[0])
	}

	switch {
	case flags.Changed("completion"):
		return runCompletion(cmd, opts.completion)
	case flags.Changed("add"):
		return runAdd(ctx, opts.add)
	case flags.Changed("remove"):
		return runRemove(ctx, opts.remove)
	case opts.list:
		return runList(ctx)
	case len(args) == 1:
		return runJump(ctx, args[0], opts.interactive, opts.copy)
	case opts.interactive:
		return runPick(ctx, opts.copy)
	default:
		return cmd.Help()
	}
}

// openStore returns the store configured in ctx.
func openStore(ctx context.Context) (*store.Store, string, error) {
	cfg := config.FromContext(ctx)
	path, err := cfg.StoreFile()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", store.ErrPersistence, err)
	}
	log.FromContext(ctx).Debug("using store", "path", path)
	return store.New(store.NewFileBackend(path)), path, nil
}

// Execute runs teleproj with the process arguments and exits.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(cfg.Theme, styles.ShouldColorize(os.Stdout))

	code := run(ctx, &cfg, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(config.WithConfig(ctx, cfg)); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// reportError prints err for the user. Store failures are framed as such;
// resolution failures are ordinary outcomes of user input.
func reportError(w io.Writer, err error) {
	var ambiguous *resolve.AmbiguousError

	switch {
	case errors.Is(err, errCancelled):
		return
	case errors.As(err, &ambiguous):
		fmt.Fprintf(w, "teleproj: %v:\n", ambiguous)
		for _, c := range ambiguous.Candidates {
			fmt.Fprintf(w, "  %d: %s (%s)\n", c.Index, c.Name(), c.Path)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use the index number to jump to a project, or -i to pick one.")
	case errors.Is(err, store.ErrMalformedStore):
		fmt.Fprintf(w, "teleproj: store error: %v\n", err)
		fmt.Fprintln(w, "Fix the file or remove it to start over.")
	case errors.Is(err, store.ErrPersistence):
		fmt.Fprintf(w, "teleproj: store error: %v\n", err)
	case errors.Is(err, resolve.ErrNoMatch), errors.Is(err, store.ErrOutOfRange):
		fmt.Fprintf(w, "teleproj: %v\n", err)
		fmt.Fprintln(w, "Run 'teleproj --list' to see saved projects.")
	default:
		fmt.Fprintf(w, "teleproj: %v\n", err)
		fmt.Fprintln(w, "Run 'teleproj -h' for help.")
	}
}

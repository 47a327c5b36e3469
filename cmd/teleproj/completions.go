package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/teleproj/internal/config"
	"github.com/raphi011/teleproj/internal/store"
)

// completeProjects offers saved project names for the positional query.
func completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entries := completionEntries(cmd.Context())
	completions := make([]string, 0, len(entries))
	for _, e := range entries {
		completions = append(completions, e.Name()+"\t"+e.Path)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeIndexes offers valid indexes for --remove.
func completeIndexes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	entries := completionEntries(cmd.Context())
	completions := make([]string, 0, len(entries))
	for _, e := range entries {
		completions = append(completions, strconv.Itoa(e.Index)+"\t"+e.Path)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

// completionEntries loads the store quietly. Completion never reports errors.
func completionEntries(ctx context.Context) []store.Entry {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := config.FromContext(ctx).StoreFile()
	if err != nil {
		return nil
	}
	list, err := store.New(store.NewFileBackend(path)).Load()
	if err != nil {
		return nil
	}
	return list.Entries()
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	w := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q (use bash, zsh, fish or powershell)", shell)
	}
}

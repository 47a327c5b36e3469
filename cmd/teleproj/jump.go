package main

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/raphi011/teleproj/internal/log"
	"github.com/raphi011/teleproj/internal/output"
	"github.com/raphi011/teleproj/internal/resolve"
	"github.com/raphi011/teleproj/internal/store"
	"github.com/raphi011/teleproj/internal/ui/picker"
)

// pick is the interactive chooser. Tests replace it.
var pick = picker.Run

func runJump(ctx context.Context, query string, interactive, copyPath bool) error {
	l := log.FromContext(ctx)

	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}

	list, err := st.Load()
	if err != nil {
		return err
	}

	outcome, err := resolve.Resolve(list.Entries(), query)
	if err != nil {
		var ambiguous *resolve.AmbiguousError
		if interactive && errors.As(err, &ambiguous) {
			l.Debug("ambiguous query, opening picker", "query", query, "candidates", len(ambiguous.Candidates))
			return choose(ctx, ambiguous.Candidates, query, copyPath)
		}
		return err
	}

	l.Debug("resolved", "query", query, "kind", outcome.Kind, "index", outcome.Entry.Index)
	return finish(ctx, outcome.Path(), copyPath)
}

func runPick(ctx context.Context, copyPath bool) error {
	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}

	list, err := st.Load()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		log.FromContext(ctx).Println(emptyListMessage)
		return errCancelled
	}

	return choose(ctx, list.Entries(), "", copyPath)
}

func choose(ctx context.Context, entries []store.Entry, initial string, copyPath bool) error {
	res, err := pick(entries, initial)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return errCancelled
	}

	log.FromContext(ctx).Debug("picked", "index", res.Entry.Index)
	return finish(ctx, res.Entry.Path, copyPath)
}

// finish prints the chosen path alone so a shell wrapper can cd into it.
func finish(ctx context.Context, path string, copyPath bool) error {
	output.FromContext(ctx).Println(path)

	if copyPath {
		if err := clipboard.WriteAll(path); err != nil {
			log.FromContext(ctx).Warnf("could not copy to clipboard: %v", err)
		}
	}
	return nil
}

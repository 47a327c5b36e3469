package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/raphi011/teleproj/internal/log"
	"github.com/raphi011/teleproj/internal/output"
)

func runAdd(ctx context.Context, arg string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	path, err := canonicalPath(arg)
	if err != nil {
		return err
	}

	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}

	list, err := st.Load()
	if err != nil {
		return err
	}

	if existing := list.IndexOf(path); existing >= 0 {
		l.Warnf("%s is already saved at index %d", path, existing)
	}

	_, index, err := st.Add(list, path)
	if err != nil {
		return fmt.Errorf("add %s: %w", path, err)
	}

	out.Printf("Added path: %s (index %d)\n", path, index)
	return nil
}

// canonicalPath makes arg absolute and resolves symlinks.
// The directory must exist when it is added, and its path must be UTF-8
// for the store to hold it.
func canonicalPath(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("path must not be empty")
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("the path %q does not exist", arg)
		}
		return "", fmt.Errorf("cannot access %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	if !utf8.ValidString(resolved) {
		return "", fmt.Errorf("cannot save %q: path is not valid UTF-8", resolved)
	}
	return resolved, nil
}

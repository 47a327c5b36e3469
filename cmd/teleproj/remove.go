package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/raphi011/teleproj/internal/output"
	"github.com/raphi011/teleproj/internal/store"
)

func runRemove(ctx context.Context, arg string) error {
	out := output.FromContext(ctx)

	index, err := parseIndex(arg)
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

	_, removed, err := st.Remove(list, index)
	if err != nil {
		var outOfRange *store.OutOfRangeError
		if errors.As(err, &outOfRange) {
			outOfRange.Input = arg
		}
		if removed != "" {
			return fmt.Errorf("removed %s but could not save: %w", removed, err)
		}
		return err
	}

	out.Printf("Removed path: %s\n", removed)
	return nil
}

// parseIndex accepts an unsigned decimal number with no sign or spaces.
// Numbers too large to represent are out of range for any list.
func parseIndex(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return 0, fmt.Errorf("remove argument must be a valid number, got %q", arg)
}

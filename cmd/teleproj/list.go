package main

import (
	"context"
	"os"
	"strconv"

	"github.com/raphi011/teleproj/internal/config"
	"github.com/raphi011/teleproj/internal/output"
	"github.com/raphi011/teleproj/internal/store"
	"github.com/raphi011/teleproj/internal/ui/styles"
)

const emptyListMessage = "No paths saved yet. Use --add to add some!"

func runList(ctx context.Context) error {
	out := output.FromContext(ctx)
	cfg := config.FromContext(ctx)

	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}

	list, err := st.Load()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		out.Println(emptyListMessage)
		return nil
	}

	out.Table([]string{"INDEX", "NAME", "PATH"}, listRows(list.Entries(), cfg.CheckMissing))
	return nil
}

// listRows formats one row per entry. Missing directories are marked,
// never dropped, so the printed indexes match what --remove accepts.
func listRows(entries []store.Entry, checkMissing bool) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		path := styles.Muted().Render(e.Path)
		if checkMissing && !dirExists(e.Path) {
			path += " " + styles.Warning().Render("(missing)")
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Index),
			styles.Name().Render(e.Name()),
			path,
		})
	}
	return rows
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"dirhop/internal/listing"
)

func newLsCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print a directory listing, folders first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(nil)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return list(cmd, dir, all || cfg.ShowHidden, cfg.UI.DateFormat)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden entries")
	return cmd
}

func list(cmd *cobra.Command, dir string, showHidden bool, layout string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	entries, err := listing.Load(abs, showHidden)
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout())
	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name) + 1; w > width {
			width = w
		}
	}

	for _, e := range entries {
		name := e.Name
		size := "-"
		if e.IsDir {
			name += string(os.PathSeparator)
		} else {
			size = listing.FormatSize(e.Size)
		}

		padded := runewidth.FillRight(name, width)
		if e.IsDir {
			padded = out.dir.Sprint(padded)
		}
		fmt.Fprintf(out.w, "%s  %9s  %s\n", padded, size, out.dim.Sprint(listing.FormatTime(e.Modified, layout)))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dirhop/internal/browser"
	"dirhop/internal/deletion"
)

func newRmCommand(opts *options) *cobra.Command {
	var noElevate bool

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete paths, escalating privileges when a plain delete fails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(nil)
			if err != nil {
				return err
			}
			return removePaths(cmd, newDeleter(cfg, noElevate), args)
		},
	}
	cmd.Flags().BoolVar(&noElevate, "no-elevate", false, "only try a plain delete")
	return cmd
}

func removePaths(cmd *cobra.Command, d browser.Deleter, paths []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newPrinter(cmd.OutOrStdout())
	failed := 0

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			out.fail.Fprintf(out.w, "✗ %s: %v\n", p, err)
			failed++
			continue
		}
		info, err := os.Lstat(abs)
		if err != nil {
			out.fail.Fprintf(out.w, "✗ %s: %v\n", abs, err)
			failed++
			continue
		}

		result := d.Delete(ctx, deletion.Target{Path: abs, IsDir: info.IsDir()})
		if !result.Removed {
			out.fail.Fprintf(out.w, "✗ %s\n", result.Reason)
			failed++
			continue
		}
		out.ok.Fprintf(out.w, "✓ removed %s", abs)
		out.dim.Fprintf(out.w, " (%s)\n", result.Stage)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d paths could not be deleted", failed, len(paths))
	}
	return nil
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dirhop/internal/diskinfo"
	"dirhop/internal/listing"
)

func newDfCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "df [dir]",
		Short: "Show free space for the filesystem holding dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := opts.load(nil); err != nil {
				return err
			}
			if all {
				stats, err := diskinfo.Partitions()
				if err != nil {
					return err
				}
				printUsage(cmd, stats...)
				return nil
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			stats, err := diskinfo.Usage(abs)
			if err != nil {
				return err
			}
			printUsage(cmd, stats)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every mounted partition")
	return cmd
}

func printUsage(cmd *cobra.Command, stats ...diskinfo.Stats) {
	out := newPrinter(cmd.OutOrStdout())
	for i, s := range stats {
		if i > 0 {
			fmt.Fprintln(out.w)
		}
		fmt.Fprintf(out.w, "%s %s %s\n", out.label.Sprint("Mountpoint:"), s.Path, out.dim.Sprintf("(%s)", s.Fstype))
		fmt.Fprintf(out.w, "  %-6s %s\n", out.label.Sprint("Total:"), listing.FormatSize(int64(s.Total)))
		fmt.Fprintf(out.w, "  %-6s %s\n", out.label.Sprint("Used:"), listing.FormatSize(int64(s.Used)))
		fmt.Fprintf(out.w, "  %-6s %s\n", out.label.Sprint("Free:"), listing.FormatSize(int64(s.Free)))

		pct := out.ok
		if s.UsedPercent >= 90 {
			pct = out.fail
		}
		fmt.Fprintf(out.w, "  %s %s\n", out.label.Sprint("Used%:"), pct.Sprintf("%.1f%%", s.UsedPercent))
	}
}

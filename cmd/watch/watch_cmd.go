package watch

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/mkdep/cmd/update"
)

var targetFiles []string
var forceInline bool

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch [directories...]",
	Short: "Watch source directories and keep Makefile rules current.",
	Long: `Watch source directories and keep Makefile rules current.

Runs an update immediately, then re-runs it whenever a source, header, or
target Makefile changes. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		opts := update.Options{
			Targets:     targetFiles,
			ForceInline: forceInline,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watchAndUpdate(ctx, dirs, opts)
	},
}

func init() {
	WatchCmd.Flags().StringSliceVarP(&targetFiles, "file", "f", nil, "Target Makefile to patch (repeatable)")
	WatchCmd.Flags().BoolVar(&forceInline, "inline", false, "Always inline rules, ignoring externalization toggles")
}

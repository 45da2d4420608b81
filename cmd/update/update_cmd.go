package update

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/mkdep/depscan"
	"github.com/LegacyCodeHQ/mkdep/makefile"
)

var targetFiles []string
var forceInline bool
var forceExternal bool

// UpdateCmd represents the update command
var UpdateCmd = &cobra.Command{
	Use:   "update [directories...]",
	Short: "Rewrite generated dependency rules in target Makefiles.",
	Long: `Rewrite generated dependency rules in target Makefiles.

Positional arguments are directories to scan for sources and headers;
the current directory is scanned when none are given.

Examples:
  mkdep update                         # scan ., patch ./Makefile
  mkdep update src lib                 # scan two directories
  mkdep update -f Makefile -f sub/Makefile
  mkdep update --inline                # ignore externalization toggles
  mkdep update --external              # externalize, skip rule emission`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if forceInline && forceExternal {
			return fmt.Errorf("--inline cannot be used with --external")
		}

		opts := Options{
			Targets:       targetFiles,
			ForceInline:   forceInline,
			ForceExternal: forceExternal,
		}
		return Run(args, opts)
	},
}

// Options controls one update run.
type Options struct {
	Targets       []string
	ForceInline   bool
	ForceExternal bool
}

// Run scans the given directories and patches every target Makefile.
func Run(dirs []string, opts Options) error {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	targets := opts.Targets
	if len(targets) == 0 {
		targets = []string{"Makefile"}
	}

	// Read every target's prelude up front: configuration is per target, and
	// the first Makefile's header declarations win over later ones.
	preludes := make([]*makefile.Prelude, 0, len(targets))
	for _, target := range targets {
		pre, err := makefile.ReadPrelude(depscan.FileContentReader, target)
		if err != nil {
			return err
		}
		preludes = append(preludes, pre)
	}

	if opts.ForceExternal {
		// Externalizing skips dependency generation entirely.
		for _, pre := range preludes {
			if err := makefile.Patch(pre, nil, true); err != nil {
				return err
			}
			log.Debugf("externalized %s", pre.Path)
		}
		return nil
	}

	table := depscan.NewPathTable()
	files, err := depscan.ScanDirectories(dirs, table)
	if err != nil {
		return err
	}
	for _, pre := range preludes {
		for _, seed := range pre.Seeds {
			table.Seed(seed.Name, seed.Path)
		}
	}

	scanner := depscan.NewScanner(table, depscan.FileContentReader)
	for _, file := range files {
		if !depscan.IsSourceFile(file) {
			continue
		}
		if err := scanner.Scan(file); err != nil {
			return err
		}
	}

	closure, err := depscan.NewClosure(scanner.Graph())
	if err != nil {
		return err
	}

	for _, pre := range preludes {
		external := pre.External && !opts.ForceInline

		var rules []string
		if !external {
			emitter := makefile.NewEmitter(pre.Config, files, scanner.Graph(), closure)
			rules, err = emitter.Rules()
			if err != nil {
				return err
			}
		}

		if err := makefile.Patch(pre, rules, external); err != nil {
			return err
		}
		log.Debugf("patched %s (%d rule lines)", pre.Path, len(rules))
	}

	return nil
}

func init() {
	UpdateCmd.Flags().StringSliceVarP(&targetFiles, "file", "f", nil, "Target Makefile to patch (repeatable)")
	UpdateCmd.Flags().BoolVar(&forceInline, "inline", false, "Always inline rules, ignoring externalization toggles")
	UpdateCmd.Flags().BoolVar(&forceExternal, "external", false, "Force external mode and skip rule emission")
}

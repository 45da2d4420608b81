package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/mkdep/cmd/update"
	"github.com/LegacyCodeHQ/mkdep/depscan"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":  true,
	".svn":  true,
	"build": true,
	".idea": true,
}

func watchAndUpdate(ctx context.Context, dirs []string, opts update.Options) error {
	if err := update.Run(dirs, opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if skippedDirs[filepath.Base(dir)] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				if err := update.Run(dirs, opts); err != nil {
					log.Errorf("update failed: %v", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watcher error: %v", err)
		}
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	// Target Makefiles are excluded: patching them must not retrigger the watcher.
	name := filepath.Base(event.Name)
	return depscan.IsSourceFile(name) || depscan.IsHeaderFile(name)
}

package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
)

// Watcher reloads a file catalog when the file changes on disk, then
// rebuilds the search index from the fresh rules. Editors that write via
// rename (vim, atomic save) emit Create instead of Write, so both ops
// trigger a reload; the parent directory is watched rather than the file
// itself so a rename does not silently drop the watch.
type Watcher struct {
	catalog *Catalog
	index   driven.RuleIndex
	fsw     *fsnotify.Watcher
}

// NewWatcher creates a watcher for the catalog's file. Call Run to start
// receiving events.
func NewWatcher(catalog *Catalog, index driven.RuleIndex) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(catalog.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{catalog: catalog, index: index, fsw: fsw}, nil
}

// Run blocks processing filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	target := filepath.Clean(w.catalog.Path())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watcher: %v", err)
		}
	}
}

// reload refreshes the catalog and index. Errors keep the previous
// snapshot serving; a broken half-saved file must never take search down.
func (w *Watcher) reload() {
	if err := w.catalog.Reload(); err != nil {
		logger.Warn("Catalog reload failed, keeping previous catalog: %v", err)
		return
	}

	rules, err := w.catalog.Rules(context.Background())
	if err != nil {
		if err != domain.ErrCatalogUnavailable {
			logger.Warn("Catalog read after reload: %v", err)
		}
		return
	}

	w.index.Build(rules)
	logger.Info("Catalog reloaded: %d rules", len(rules))
}

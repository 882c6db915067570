package server

import (
	"context"
	"fmt"
	"hash/fnv"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
)

const watchInterval = 500 * time.Millisecond

// startDevWatcher polls the on-disk templates and static assets and notifies
// the reload subscribers whenever anything changes. Dev mode only; the
// returned cancel function stops the watcher.
func startDevWatcher(root string, notifier *reloadNotifier) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// A final notification lets open reload streams wind down instead of
		// hanging on a channel that will never fire again.
		defer notifier.Notify()

		last, err := fingerprint(root)
		if err != nil {
			slog.Error("Failed to fingerprint watch root", slog.String("root", root), slog.Any("err", err))
		}

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, err := fingerprint(root)
				if err != nil {
					slog.Error("Failed to fingerprint watch root", slog.String("root", root), slog.Any("err", err))
					continue
				}
				if current != last {
					last = current
					notifier.Notify()
				}
			}
		}
	}()

	return cancel
}

// fingerprint hashes the names, sizes and modification times of every file
// under root. File contents are never read; a changed mtime is change enough.
func fingerprint(root string) (uint64, error) {
	hasher := fnv.New64a()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(hasher, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
		return err
	})
	if err != nil {
		return 0, err
	}

	return hasher.Sum64(), nil
}

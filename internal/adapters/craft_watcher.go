package adapters

import (
	"context"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// CraftWatcher calls back whenever a craft file is written or replaced.
// The parent directory is watched because atomic saves swap the file via
// rename, which drops a watch placed on the file itself.
type CraftWatcher struct{}

func NewCraftWatcher() CraftWatcher {
	return CraftWatcher{}
}

func (w CraftWatcher) Watch(ctx context.Context, path string, onChange func(ctx context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to start file watcher").
			WithCause(err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to watch craft directory").
			WithCause(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := onChange(ctx); err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("craft", target).Msg("craft reload failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Ctx(ctx).Warn().Err(err).Msg("file watcher error")
		}
	}
}

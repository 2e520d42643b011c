// Package watcher 监听单个源文件的变更，并在防抖间隔结束后触发回调。
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce 是连续写入被合并为一次回调的静默期
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher 监听一个文件。监听的是其所在目录，因为编辑器保存时常以 rename 替换文件。
type FileWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	watcher  *fsnotify.Watcher
	stopOnce sync.Once
}

// New 创建 FileWatcher。debounce <= 0 时使用 DefaultDebounce。
func New(path string, debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		logger:   logger.With("component", "watcher", "path", abs),
		watcher:  w,
	}, nil
}

// Run 阻塞直到 ctx 被取消。每当目标文件被写入或替换且静默 debounce 之后，调用一次 onChange。
// onChange 在 Run 所在的 goroutine 中执行，因此不会并发调用。
func (fw *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer fw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fw.logger.Info("Watching for changes")

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("Watch stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("Change detected", "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("File watcher error", "error", err)
		}
	}
}

// Close 释放底层 fsnotify 资源，可重复调用
func (fw *FileWatcher) Close() error {
	var err error
	fw.stopOnce.Do(func() {
		err = fw.watcher.Close()
	})
	return err
}

// relevant 过滤掉同目录中其它文件的事件，以及纯粹的权限变更
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filename string
	onChange func(s *Settings)
	done     chan struct{}
}

// Watch starts watching the given settings file. onChange is called on
// the watcher goroutine with every successfully reloaded value; callers
// that own single-threaded state must hand it off, for example with
// [timer.Loop.Post]. Files that fail to load are logged and skipped.
func Watch(filename string, onChange func(s *Settings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		fw.Close()
		return nil, err
	}
	// watch the directory, so that editors that replace the file
	// by renaming are still seen
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	sw := &Watcher{watcher: fw, filename: abs, onChange: onChange, done: make(chan struct{})}
	go sw.watch()
	return sw, nil
}

func (sw *Watcher) watch() {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := Open(sw.filename)
			if err != nil {
				slog.Warn("settings: reload failed", "file", sw.filename, "err", err)
				continue
			}
			sw.onChange(s)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("settings: watcher error", "file", sw.filename, "err", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (sw *Watcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}

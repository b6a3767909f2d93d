/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command tpp compiles a presentation markup file and plays it in the
// terminal.
//
//	tpp talk.tpp            interactive playback
//	tpp -t 5s talk.tpp      timed auto-advance
//	tpp -check talk.tpp     compile only
//	tpp -resume talk.tpp    continue where the last session stopped
//	tpp history             list recently played files
//	tpp version             print the version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/clarissalittler/tpp/internal/config"
	"github.com/clarissalittler/tpp/internal/crash"
	"github.com/clarissalittler/tpp/internal/document"
	"github.com/clarissalittler/tpp/internal/history"
	applog "github.com/clarissalittler/tpp/internal/log"
	"github.com/clarissalittler/tpp/internal/markup"
	"github.com/clarissalittler/tpp/internal/playback"
	"github.com/clarissalittler/tpp/internal/player"
	"github.com/clarissalittler/tpp/internal/theme"
	"github.com/clarissalittler/tpp/internal/version"
)

func main() {
	defer crash.Recover()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tpp: %v\n", err)
		exitFn(1)
	}
}

var exitFn = os.Exit

func run(args []string) error {
	fs := flag.NewFlagSet("tpp", flag.ExitOnError)
	timed := fs.Duration("t", 0, "auto-advance interval (e.g. 5s); 0 waits for keypresses")
	check := fs.Bool("check", false, "compile only; report errors without playing")
	resume := fs.Bool("resume", false, "start at the page reached last time this file was played")
	showVer := fs.Bool("v", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVer {
		fmt.Println(version.String())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("no input file")
	}
	switch rest[0] {
	case "version":
		fmt.Println(version.String())
		return nil
	case "history":
		return showHistory(cfg)
	}

	path := rest[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := markup.Compile(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if *check {
		return nil
	}

	pal := theme.Default()
	if len(cfg.Theme.Colors) > 0 {
		if err := pal.Override(cfg.Theme.Colors); err != nil {
			l.Warn("bad theme override, using builtin palette", slog.Any("err", err))
		}
	}
	renderer := playback.NewRenderer(pal)

	ctx := context.Background()
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	var store *history.Store
	if cfg.History.Enabled {
		if dir, derr := config.Dir(); derr == nil {
			if st, herr := history.Open(dir); herr == nil {
				store = st
				defer func() { _ = st.Close() }()
			} else {
				l.Warn("history unavailable", slog.Any("err", herr))
			}
		}
	}

	start := 0
	if *resume && store != nil {
		if p, ok, herr := store.LastPage(ctx, abs); herr == nil && ok {
			start = p
		}
	}

	auto := *timed
	if auto == 0 && cfg.Playback.AutoAdvanceMs > 0 {
		auto = time.Duration(cfg.Playback.AutoAdvanceMs) * time.Millisecond
	}

	var last int
	if auto > 0 {
		last, err = playTimed(doc, renderer, start, cfg.Playback.ClearScreen, auto)
	} else {
		last, err = player.Run(doc, renderer, start)
	}
	if err != nil {
		return err
	}

	if store != nil {
		if herr := store.Record(ctx, abs, doc.Title, last, doc.PageCount()); herr != nil {
			l.Warn("record history failed", slog.Any("err", herr))
		}
	}
	return nil
}

// playTimed drives the signal-based engine with a ticker; ctrl+c quits.
func playTimed(doc *document.Document, renderer *playback.Renderer, start int, clear bool, interval time.Duration) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	signals := make(chan playback.Signal)
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				select {
				case signals <- playback.SignalAdvance:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	eng := playback.NewEngine(&playback.ANSIScreen{W: os.Stdout}, renderer, signals)
	eng.ClearScreen = clear
	eng.StartPage = start
	err := eng.Play(ctx, doc)
	return eng.LastPage(), err
}

func showHistory(cfg config.AppConfig) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		fmt.Println("history is disabled in config")
		return nil
	}
	store, err := history.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(context.Background(), 20)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no playback history yet")
		return nil
	}
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %-30s  page %d/%d  %s\n",
			e.PlayedAt.Local().Format("2006-01-02 15:04"), title, e.LastPage+1, e.PageCount, e.Path)
	}
	return nil
}

/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package playback walks a compiled document page by page, writing each page
// to a terminal screen and blocking at page boundaries until an advance or
// quit signal arrives. The document is never mutated; quitting early is
// normal termination, not an error.
package playback

import (
	"context"
	"io"
	"log/slog"

	"github.com/clarissalittler/tpp/internal/document"
	applog "github.com/clarissalittler/tpp/internal/log"
)

// Signal is an external playback event.
type Signal int

const (
	SignalAdvance Signal = iota
	SignalQuit
)

// State is the engine's playback state.
type State int

const (
	StateRendering State = iota
	StateAwaitingAdvance
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateAwaitingAdvance:
		return "awaiting-advance"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Engine plays a document on a Screen, consuming signals from a channel.
// Interactive and timed modes differ only in who produces the signals.
type Engine struct {
	// ClearScreen wipes the screen before each page when set.
	ClearScreen bool
	// StartPage is the first page rendered; out-of-range values fall back
	// to page 0. Used to resume an earlier session.
	StartPage int

	screen   Screen
	renderer *Renderer
	signals  <-chan Signal
	state    State
	lastPage int
	log      *slog.Logger
}

// NewEngine wires a screen, a renderer, and a signal source into an engine.
func NewEngine(screen Screen, renderer *Renderer, signals <-chan Signal) *Engine {
	return &Engine{
		screen:   screen,
		renderer: renderer,
		signals:  signals,
		log:      applog.WithComponent("playback"),
	}
}

// State reports the current playback state.
func (e *Engine) State() State { return e.state }

// LastPage reports the index of the last page rendered, for session history.
func (e *Engine) LastPage() int { return e.lastPage }

// Play renders pages in order from StartPage, waiting for one advance signal
// per page boundary. A quit signal, a closed signal channel, or context
// cancellation finishes playback immediately and returns nil; remaining pages
// are simply not rendered. The only errors are write failures on the screen.
func (e *Engine) Play(ctx context.Context, doc *document.Document) error {
	i := e.StartPage
	if i < 0 || i >= len(doc.Pages) {
		i = 0
	}
	for i < len(doc.Pages) {
		e.state = StateRendering
		e.lastPage = i
		if e.ClearScreen {
			if err := e.screen.Clear(); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(e.screen, e.renderer.RenderPage(doc, i)); err != nil {
			return err
		}

		e.state = StateAwaitingAdvance
		e.log.Debug("awaiting advance", slog.Int("page", i), slog.Int("pages", len(doc.Pages)))
		select {
		case <-ctx.Done():
			e.state = StateFinished
			return nil
		case sig, ok := <-e.signals:
			if !ok || sig == SignalQuit {
				e.state = StateFinished
				return nil
			}
			i++
		}
	}
	e.state = StateFinished
	return nil
}

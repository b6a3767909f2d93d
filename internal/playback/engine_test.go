/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package playback

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/clarissalittler/tpp/internal/document"
	"github.com/clarissalittler/tpp/internal/theme"
)

// fakeScreen records rendered output and clear calls.
type fakeScreen struct {
	bytes.Buffer
	clears int
}

func (s *fakeScreen) Clear() error {
	s.clears++
	return nil
}

func threePageDoc() *document.Document {
	page := func(text string) document.Page {
		return document.Page{Blocks: []document.Block{{
			Kind: document.BlockParagraph,
			Runs: []document.StyledRun{{Text: text}},
		}}}
	}
	return &document.Document{Pages: []document.Page{page("alpha"), page("beta"), page("gamma")}}
}

func signals(sigs ...Signal) <-chan Signal {
	ch := make(chan Signal, len(sigs))
	for _, s := range sigs {
		ch <- s
	}
	close(ch)
	return ch
}

func TestPlayAdvancesThroughAllPages(t *testing.T) {
	screen := &fakeScreen{}
	eng := NewEngine(screen, NewRenderer(theme.Default()), signals(SignalAdvance, SignalAdvance, SignalAdvance))
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	out := screen.String()
	for _, want := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing page %q: %q", want, out)
		}
	}
	if strings.Index(out, "alpha") > strings.Index(out, "gamma") {
		t.Fatalf("pages rendered out of order: %q", out)
	}
	if eng.State() != StateFinished {
		t.Fatalf("state = %v, want finished", eng.State())
	}
	if eng.LastPage() != 2 {
		t.Fatalf("last page = %d, want 2", eng.LastPage())
	}
}

func TestQuitSkipsRemainingPages(t *testing.T) {
	screen := &fakeScreen{}
	eng := NewEngine(screen, NewRenderer(theme.Default()), signals(SignalAdvance, SignalQuit))
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("quit is not an error: %v", err)
	}
	out := screen.String()
	if !strings.Contains(out, "beta") {
		t.Fatalf("second page should have rendered before quit: %q", out)
	}
	if strings.Contains(out, "gamma") {
		t.Fatalf("page after quit must not render: %q", out)
	}
	if eng.State() != StateFinished {
		t.Fatalf("state = %v, want finished", eng.State())
	}
}

func TestClosedSignalChannelFinishes(t *testing.T) {
	ch := make(chan Signal)
	close(ch)
	eng := NewEngine(&fakeScreen{}, NewRenderer(theme.Default()), ch)
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if eng.State() != StateFinished || eng.LastPage() != 0 {
		t.Fatalf("expected finish on first page, state=%v last=%d", eng.State(), eng.LastPage())
	}
}

func TestContextCancelActsAsQuit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng := NewEngine(&fakeScreen{}, NewRenderer(theme.Default()), make(chan Signal))
	if err := eng.Play(ctx, threePageDoc()); err != nil {
		t.Fatalf("cancellation is not an error: %v", err)
	}
	if eng.State() != StateFinished {
		t.Fatalf("state = %v, want finished", eng.State())
	}
}

func TestPlayResumesFromStartPage(t *testing.T) {
	screen := &fakeScreen{}
	eng := NewEngine(screen, NewRenderer(theme.Default()), signals(SignalAdvance, SignalAdvance))
	eng.StartPage = 1
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	out := screen.String()
	if strings.Contains(out, "alpha") {
		t.Fatalf("resumed playback must skip pages before the start page: %q", out)
	}
	for _, want := range []string{"beta", "gamma"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing page %q: %q", want, out)
		}
	}
	if eng.LastPage() != 2 {
		t.Fatalf("last page = %d, want 2", eng.LastPage())
	}
}

func TestPlayOutOfRangeStartPageFallsBack(t *testing.T) {
	screen := &fakeScreen{}
	eng := NewEngine(screen, NewRenderer(theme.Default()), signals(SignalQuit))
	eng.StartPage = 9
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !strings.Contains(screen.String(), "alpha") {
		t.Fatalf("out-of-range start page should render from page 0: %q", screen.String())
	}
}

func TestClearScreenBetweenPages(t *testing.T) {
	screen := &fakeScreen{}
	eng := NewEngine(screen, NewRenderer(theme.Default()), signals(SignalAdvance, SignalAdvance, SignalAdvance))
	eng.ClearScreen = true
	if err := eng.Play(context.Background(), threePageDoc()); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if screen.clears != 3 {
		t.Fatalf("clears = %d, want one per page", screen.clears)
	}
}

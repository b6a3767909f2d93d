/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package playback

import (
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"github.com/clarissalittler/tpp/internal/document"
	"github.com/clarissalittler/tpp/internal/theme"
)

// Attribute escapes depend on the environment gookit detects, so these tests
// disable color and assert on the text skeleton only; attribute mapping is
// covered by the theme package tests.
func plainRenderer() *Renderer {
	color.Disable()
	return NewRenderer(theme.Default())
}

func TestRenderPageHeaderOnFirstPageOnly(t *testing.T) {
	r := plainRenderer()
	doc := &document.Document{
		Title:  "My Talk",
		Author: "Someone",
		Date:   "1 April 2026",
		Pages:  []document.Page{{}, {}},
	}
	first := r.RenderPage(doc, 0)
	if !strings.Contains(first, "My Talk") || !strings.Contains(first, "Someone") || !strings.Contains(first, "1 April 2026") {
		t.Fatalf("page 0 missing header: %q", first)
	}
	second := r.RenderPage(doc, 1)
	if strings.Contains(second, "My Talk") {
		t.Fatalf("header leaked onto page 1: %q", second)
	}
}

func TestRenderDateSentinelUsesClock(t *testing.T) {
	r := plainRenderer()
	r.Now = func() time.Time { return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC) }
	doc := &document.Document{Date: document.DateToday, Pages: []document.Page{{}}}
	out := r.RenderPage(doc, 0)
	if !strings.Contains(out, "14 March 2026") {
		t.Fatalf("sentinel date not resolved: %q", out)
	}
	if strings.Contains(out, document.DateToday) {
		t.Fatalf("sentinel rendered literally: %q", out)
	}
}

func TestRenderVerbatimExactly(t *testing.T) {
	r := plainRenderer()
	lines := []string{"--title not markup", "  two  spaces kept", ""}
	doc := &document.Document{Pages: []document.Page{{Blocks: []document.Block{
		{Kind: document.BlockVerbatim, Lines: lines},
	}}}}
	out := r.RenderPage(doc, 0)
	want := "--title not markup\n  two  spaces kept\n\n"
	if !strings.Contains(out, want) {
		t.Fatalf("verbatim block altered:\n got %q\nwant %q", out, want)
	}
}

func TestRenderBlockOrder(t *testing.T) {
	r := plainRenderer()
	doc := &document.Document{Pages: []document.Page{{Blocks: []document.Block{
		{Kind: document.BlockHeading, Text: "Intro"},
		{Kind: document.BlockParagraph, Runs: []document.StyledRun{{Text: "body text"}}},
	}}}}
	out := r.RenderPage(doc, 0)
	hi := strings.Index(out, "Intro")
	bi := strings.Index(out, "body text")
	if hi < 0 || bi < 0 || hi > bi {
		t.Fatalf("blocks out of order: %q", out)
	}
}

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
	"time"

	"github.com/clarissalittler/tpp/internal/document"
	"github.com/clarissalittler/tpp/internal/theme"
)

// Renderer turns one page of a compiled document into terminal output.
// Every styled run is emitted with exactly its own attribute set and a
// trailing reset, so attributes never leak between runs or pages. Verbatim
// lines always render with default attributes.
type Renderer struct {
	Palette *theme.Palette

	// Now substitutes the clock for the "today" date sentinel; nil means
	// time.Now. Tests pin it.
	Now func() time.Time
}

// NewRenderer returns a renderer over the given palette.
func NewRenderer(p *theme.Palette) *Renderer {
	return &Renderer{Palette: p}
}

// RenderPage renders page idx of doc as a string of text and attribute
// escapes. Page 0 is prefixed with the document header when any metadata is
// set.
func (r *Renderer) RenderPage(doc *document.Document, idx int) string {
	var b strings.Builder
	if idx == 0 {
		r.renderHeader(&b, doc)
	}
	for _, blk := range doc.Pages[idx].Blocks {
		switch blk.Kind {
		case document.BlockHeading:
			b.WriteString(r.styled(blk.Text, document.StyleSet{Bold: true, Underline: true}))
			b.WriteString("\n\n")
		case document.BlockParagraph:
			for _, run := range blk.Runs {
				b.WriteString(r.styled(run.Text, run.Style))
			}
			b.WriteString("\n\n")
		case document.BlockVerbatim:
			for _, line := range blk.Lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderHeader(b *strings.Builder, doc *document.Document) {
	if doc.Title == "" && doc.Author == "" && doc.Date == "" {
		return
	}
	if doc.Title != "" {
		b.WriteString(r.styled(doc.Title, document.StyleSet{Bold: true}))
		b.WriteString("\n")
	}
	if doc.Author != "" {
		b.WriteString(doc.Author)
		b.WriteString("\n")
	}
	if doc.Date != "" {
		b.WriteString(r.renderDate(doc.Date))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// renderDate resolves the "today" sentinel at play time; any other value is
// shown literally.
func (r *Renderer) renderDate(date string) string {
	if date != document.DateToday {
		return date
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().Format("2 January 2006")
}

func (r *Renderer) styled(text string, st document.StyleSet) string {
	sty := r.Palette.Style(st)
	if len(sty) == 0 {
		return text
	}
	return sty.Sprint(text)
}

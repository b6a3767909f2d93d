/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package document defines the compiled presentation model: a Document of
// ordered Pages, each holding Heading, Paragraph, or Verbatim blocks. The
// model is built once by the markup compiler and is read-only afterwards;
// playback never mutates it.
package document

// DateToday is the sentinel date value meaning "substitute the current date
// at play time". The Document stores the literal; resolving it is a renderer
// concern.
const DateToday = "today"

// Document is a compiled presentation: optional metadata plus ordered pages.
// Empty metadata fields mean the corresponding directive never appeared.
type Document struct {
	Title  string
	Author string
	Date   string
	Pages  []Page
}

// PageCount reports the number of pages. A freshly compiled document always
// has at least one page (the implicit page 0).
func (d *Document) PageCount() int { return len(d.Pages) }

// Page is one screenful of blocks shown between advance signals.
type Page struct {
	Blocks []Block
}

// BlockKind discriminates the Block variants.
// Heading:   a single emphasized line of text.
// Paragraph: running text made of styled runs.
// Verbatim:  raw lines reproduced exactly, no styling applied.

type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockVerbatim
)

// Block is a tagged variant; exactly one of Text, Runs, or Lines is
// meaningful depending on Kind. A block never mixes verbatim and styled
// content.
type Block struct {
	Kind  BlockKind
	Text  string      // BlockHeading
	Runs  []StyledRun // BlockParagraph
	Lines []string    // BlockVerbatim
}

// StyledRun is a fragment of paragraph text with the style snapshot that was
// active when the fragment was emitted. Runs split at every style change.
type StyledRun struct {
	Text  string
	Style StyleSet
}

// StyleSet is the resolved combination of character attributes at a point in
// text. Color is a markup color name ("red", "cyan", ...); empty means no
// color is active.
type StyleSet struct {
	Bold      bool
	Underline bool
	Reverse   bool
	Color     string
}

// IsZero reports whether no attribute is active, i.e. the terminal default.
func (s StyleSet) IsZero() bool {
	return !s.Bold && !s.Underline && !s.Reverse && s.Color == ""
}

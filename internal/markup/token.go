/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package markup

// TokenKind classifies lexer output.
// Directive:   a whole-line control token such as "--heading Welcome".
// InlineOpen:  an opening style tag ("--b", "--u", "--rev", "--c <name>").
// InlineClose: a closing style tag ("--/b", "--/u", "--/rev", "--/c").
// Text:        plain running text, including resolved escapes.
// Blank:       a line containing only whitespace; ends a paragraph.
// Raw:         an uninterpreted line inside a verbatim region.
// EOF:         end of input.

type TokenKind int

const (
	TokenText TokenKind = iota
	TokenDirective
	TokenInlineOpen
	TokenInlineClose
	TokenBlank
	TokenRaw
	TokenEOF
)

// Token is one lexer output unit.
// Name holds the directive or tag spelling without the "--" prefix.
// Arg holds a directive's trailing text or a color tag's color name.
type Token struct {
	Kind TokenKind
	Name string
	Arg  string
	Text string
	Line int // 1-based source line
}

// Directive spellings. Case-sensitive, matched after the "--" prefix.
const (
	dirTitle       = "title"
	dirAuthor      = "author"
	dirDate        = "date"
	dirNewPage     = "newpage"
	dirHeading     = "heading"
	dirBeginOutput = "beginoutput"
	dirEndOutput   = "endoutput"
)

// Inline tag spellings, without prefix or slash.
const (
	tagBold      = "b"
	tagUnderline = "u"
	tagReverse   = "rev"
	tagColor     = "c"
)

func isLineDirective(name string) bool {
	switch name {
	case dirTitle, dirAuthor, dirDate, dirNewPage, dirHeading, dirBeginOutput, dirEndOutput:
		return true
	}
	return false
}

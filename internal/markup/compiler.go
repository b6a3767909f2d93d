/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package markup compiles presentation markup into a document.Document.
//
// The format is line oriented. Lines starting with "--" at column 0 are
// directives (metadata, page breaks, headings, verbatim delimiters); inline
// tags toggle character styling inside running text; "\--" escapes a token
// so it renders literally. Compilation is strict: the first error aborts and
// no partial document is returned.
package markup

import "github.com/clarissalittler/tpp/internal/document"

// interpState is the directive interpreter's state. Verbatim regions switch
// the interpreter (and lexer) into raw capture until the end delimiter.
type interpState int

const (
	stateNormal interpState = iota
	stateInVerbatim
)

// compiler holds the per-compilation interpreter state. A fresh compiler is
// created for every Compile call; nothing is shared between compilations.
type compiler struct {
	doc       document.Document
	page      document.Page
	para      []Token  // pending inline tokens of the open paragraph
	verbatim  []string // captured lines of the open verbatim region
	state     interpState
	beginLine int // line of the open --beginoutput, for error reporting
}

// Compile parses markup source into an immutable Document. On failure it
// returns a *ParseError (matchable with errors.Is against the sentinel
// kinds) and no document.
func Compile(input string) (*document.Document, error) {
	c := &compiler{}
	lx := NewLexer(input)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return c.finish(tok.Line)
		}
		if err := c.consume(tok); err != nil {
			return nil, err
		}
	}
}

// consume is the single dispatch point of the interpreter state machine.
func (c *compiler) consume(tok Token) error {
	switch c.state {
	case stateInVerbatim:
		switch {
		case tok.Kind == TokenRaw:
			c.verbatim = append(c.verbatim, tok.Text)
		case tok.Kind == TokenDirective && tok.Name == dirEndOutput:
			c.page.Blocks = append(c.page.Blocks, document.Block{Kind: document.BlockVerbatim, Lines: c.verbatim})
			c.verbatim = nil
			c.state = stateNormal
		case tok.Kind == TokenDirective && tok.Name == dirBeginOutput:
			return parseErr(ErrNestedVerbatim, tok.Line, "region open since line %d", c.beginLine)
		}
		return nil

	case stateNormal:
		switch tok.Kind {
		case TokenBlank:
			return c.sealParagraph()
		case TokenText, TokenInlineOpen, TokenInlineClose:
			c.appendPara(tok)
			return nil
		case TokenDirective:
			if err := c.sealParagraph(); err != nil {
				return err
			}
			return c.directive(tok)
		}
	}
	return nil
}

func (c *compiler) directive(tok Token) error {
	switch tok.Name {
	case dirTitle:
		c.doc.Title = tok.Arg
	case dirAuthor:
		c.doc.Author = tok.Arg
	case dirDate:
		c.doc.Date = tok.Arg
	case dirNewPage:
		c.doc.Pages = append(c.doc.Pages, c.page)
		c.page = document.Page{}
	case dirHeading:
		c.page.Blocks = append(c.page.Blocks, document.Block{Kind: document.BlockHeading, Text: tok.Arg})
	case dirBeginOutput:
		c.state = stateInVerbatim
		c.beginLine = tok.Line
	case dirEndOutput:
		return parseErr(ErrUnmatchedEndOutput, tok.Line, "")
	}
	return nil
}

// appendPara accumulates an inline token into the open paragraph. Lines that
// continue a paragraph join with a single space of running text.
func (c *compiler) appendPara(tok Token) {
	if n := len(c.para); n > 0 && tok.Line > c.para[n-1].Line {
		c.para = append(c.para, Token{Kind: TokenText, Text: " ", Line: tok.Line})
	}
	c.para = append(c.para, tok)
}

// sealParagraph resolves the pending inline tokens into styled runs and
// appends the paragraph block, if any text survived.
func (c *compiler) sealParagraph() error {
	if len(c.para) == 0 {
		return nil
	}
	runs, err := resolveRuns(c.para)
	c.para = nil
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		c.page.Blocks = append(c.page.Blocks, document.Block{Kind: document.BlockParagraph, Runs: runs})
	}
	return nil
}

func (c *compiler) finish(line int) (*document.Document, error) {
	if c.state == stateInVerbatim {
		return nil, parseErr(ErrUnterminatedVerbatim, c.beginLine, "still open at end of input")
	}
	if err := c.sealParagraph(); err != nil {
		return nil, err
	}
	c.doc.Pages = append(c.doc.Pages, c.page)
	doc := c.doc
	return &doc, nil
}

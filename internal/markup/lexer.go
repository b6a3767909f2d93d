/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package markup

import (
	"bufio"
	"strings"
)

const (
	directivePrefix = "--"
	escapeMarker    = '\\'
)

// Lexer turns raw input lines into a stream of typed tokens. It is a single
// forward pass; to re-read a document, create a new Lexer.
//
// Inside a verbatim region the lexer emits every line as a Raw token without
// interpretation; only the begin/end-output directives are still recognized
// so the interpreter can check region nesting in one place.
type Lexer struct {
	sc       *bufio.Scanner
	lineNo   int
	queue    []Token
	verbatim bool
	eof      bool
}

// NewLexer creates a lexer over the full markup source.
func NewLexer(input string) *Lexer {
	return &Lexer{sc: bufio.NewScanner(strings.NewReader(input))}
}

// Next returns the next token. At end of input it returns a token with kind
// TokenEOF. The only lexing error is ErrUnknownDirective; structural errors
// are left to the interpreter.
func (lx *Lexer) Next() (Token, error) {
	for len(lx.queue) == 0 && !lx.eof {
		if !lx.sc.Scan() {
			lx.eof = true
			break
		}
		lx.lineNo++
		line := strings.TrimRight(lx.sc.Text(), "\r")
		if err := lx.lexLine(line); err != nil {
			return Token{}, err
		}
	}
	if len(lx.queue) == 0 {
		if err := lx.sc.Err(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenEOF, Line: lx.lineNo}, nil
	}
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok, nil
}

func (lx *Lexer) emit(tok Token) {
	tok.Line = lx.lineNo
	lx.queue = append(lx.queue, tok)
}

func (lx *Lexer) lexLine(line string) error {
	if lx.verbatim {
		switch strings.TrimSpace(line) {
		case directivePrefix + dirEndOutput:
			lx.verbatim = false
			lx.emit(Token{Kind: TokenDirective, Name: dirEndOutput})
		case directivePrefix + dirBeginOutput:
			// Passed through so the interpreter can reject the nesting.
			lx.emit(Token{Kind: TokenDirective, Name: dirBeginOutput})
		default:
			lx.emit(Token{Kind: TokenRaw, Text: line})
		}
		return nil
	}

	if strings.TrimSpace(line) == "" {
		lx.emit(Token{Kind: TokenBlank})
		return nil
	}

	// Whole-line directives are recognized only at column 0. Anything else,
	// including lines starting with an inline tag or an escape, goes through
	// the inline scan.
	if strings.HasPrefix(line, directivePrefix) {
		name := tagWord(line[len(directivePrefix):])
		if isLineDirective(name) {
			if name == dirBeginOutput {
				lx.verbatim = true
			}
			arg := strings.TrimSpace(line[len(directivePrefix)+len(name):])
			lx.emit(Token{Kind: TokenDirective, Name: name, Arg: arg})
			return nil
		}
	}
	return lx.lexInline(line)
}

// lexInline scans one line of running text for inline tags and escapes.
// Escape resolution runs before tag recognition: a backslash immediately
// before the directive prefix turns the prefix and its spelling into plain
// text, so escaped tokens never reach the style stack.
func (lx *Lexer) lexInline(line string) error {
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			lx.emit(Token{Kind: TokenText, Text: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(line) {
		if line[i] == escapeMarker && strings.HasPrefix(line[i+1:], directivePrefix) {
			word := tagWord(line[i+1+len(directivePrefix):])
			buf.WriteString(directivePrefix + word)
			i += 1 + len(directivePrefix) + len(word)
			continue
		}
		if strings.HasPrefix(line[i:], directivePrefix) {
			rest := line[i+len(directivePrefix):]
			word, name, closing, ok := matchInlineTag(rest)
			if !ok {
				return parseErr(ErrUnknownDirective, lx.lineNo, "%s%s", directivePrefix, tagWord(rest))
			}
			flush()
			i += len(directivePrefix) + len(word)
			switch {
			case closing:
				lx.emit(Token{Kind: TokenInlineClose, Name: name})
			case name == tagColor:
				arg, rest := colorArg(line[i:])
				lx.emit(Token{Kind: TokenInlineOpen, Name: tagColor, Arg: arg})
				i += rest
			default:
				lx.emit(Token{Kind: TokenInlineOpen, Name: name})
			}
			continue
		}
		buf.WriteByte(line[i])
		i++
	}
	flush()
	return nil
}

// colorArg consumes the whitespace-delimited color name that follows a color
// tag, plus one separating space after it. Returns the name and the number of
// bytes consumed. The name ends at whitespace or at the next token prefix.
func colorArg(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	j := i
	for j < len(s) && s[j] != ' ' && s[j] != '\t' && !strings.HasPrefix(s[j:], directivePrefix) {
		j++
	}
	name := s[i:j]
	if j < len(s) && s[j] == ' ' {
		j++
	}
	return name, j
}

// inlineSpellings lists the inline tag spellings, longest-overlap first, so
// "--bbold" reads as a bold tag followed by the text "bold".
var inlineSpellings = []string{"/rev", "/b", "/u", "/c", "rev", "b", "u", "c"}

// matchInlineTag matches the longest inline tag spelling at the start of s
// (the part after the directive prefix).
func matchInlineTag(s string) (word, name string, closing, ok bool) {
	for _, sp := range inlineSpellings {
		if strings.HasPrefix(s, sp) {
			return sp, strings.TrimPrefix(sp, "/"), strings.HasPrefix(sp, "/"), true
		}
	}
	return "", "", false, false
}

// tagWord returns the candidate directive or tag spelling at the start of s:
// an optional leading slash followed by the maximal run of ASCII letters.
func tagWord(s string) string {
	i := 0
	if i < len(s) && s[i] == '/' {
		i++
	}
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	return s[:i]
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package markup

import (
	"errors"
	"testing"
)

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	lx := NewLexer(input)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if tok.Kind == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexDirectiveLines(t *testing.T) {
	toks := collectTokens(t, "--title My Talk\n--newpage\n--heading First Things")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != TokenDirective || toks[0].Name != "title" || toks[0].Arg != "My Talk" {
		t.Fatalf("unexpected title token: %+v", toks[0])
	}
	if toks[1].Name != "newpage" || toks[1].Arg != "" {
		t.Fatalf("unexpected newpage token: %+v", toks[1])
	}
	if toks[2].Name != "heading" || toks[2].Arg != "First Things" {
		t.Fatalf("unexpected heading token: %+v", toks[2])
	}
	if toks[2].Line != 3 {
		t.Fatalf("heading token line = %d, want 3", toks[2].Line)
	}
}

func TestLexInlineTagsMidLine(t *testing.T) {
	toks := collectTokens(t, "plain --bbold--/b tail")
	want := []Token{
		{Kind: TokenText, Text: "plain "},
		{Kind: TokenInlineOpen, Name: "b"},
		{Kind: TokenText, Text: "bold"},
		{Kind: TokenInlineClose, Name: "b"},
		{Kind: TokenText, Text: " tail"},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.Kind || toks[i].Name != w.Name || toks[i].Text != w.Text {
			t.Fatalf("token %d = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestLexColorArgumentConsumed(t *testing.T) {
	toks := collectTokens(t, "--c red colored--/c plain")
	if toks[0].Kind != TokenInlineOpen || toks[0].Name != "c" || toks[0].Arg != "red" {
		t.Fatalf("unexpected color open: %+v", toks[0])
	}
	if toks[1].Kind != TokenText || toks[1].Text != "colored" {
		t.Fatalf("color name leaked into text: %+v", toks[1])
	}
	if toks[2].Kind != TokenInlineClose || toks[2].Name != "c" {
		t.Fatalf("unexpected color close: %+v", toks[2])
	}
	if toks[3].Text != " plain" {
		t.Fatalf("unexpected trailing text: %+v", toks[3])
	}
}

func TestLexEscapedTokensAreLiteral(t *testing.T) {
	cases := map[string]string{
		`\--title is not a directive`: "--title is not a directive",
		`use \--b to start bold`:      "use --b to start bold",
		`close with \--/b like so`:    "close with --/b like so",
	}
	for input, want := range cases {
		toks := collectTokens(t, input)
		if len(toks) != 1 || toks[0].Kind != TokenText {
			t.Fatalf("%q: expected a single text token, got %+v", input, toks)
		}
		if toks[0].Text != want {
			t.Fatalf("%q: text = %q, want %q", input, toks[0].Text, want)
		}
	}
}

func TestLexBackslashAloneIsLiteral(t *testing.T) {
	toks := collectTokens(t, `a \ b \x`)
	if len(toks) != 1 || toks[0].Text != `a \ b \x` {
		t.Fatalf("backslash without prefix should pass through, got %+v", toks)
	}
}

func TestLexUnknownDirective(t *testing.T) {
	lx := NewLexer("fine line\n--frobnicate everything")
	if _, err := lx.Next(); err != nil {
		t.Fatalf("first line should lex: %v", err)
	}
	_, err := lx.Next()
	if !errors.Is(err, ErrUnknownDirective) {
		t.Fatalf("expected ErrUnknownDirective, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Fatalf("expected line 2 in error, got %+v", err)
	}
}

func TestLexVerbatimSuspendsTokenization(t *testing.T) {
	input := "--beginoutput\n--title not a directive\n  --b raw \\--u\n--endoutput"
	toks := collectTokens(t, input)
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != TokenDirective || toks[0].Name != "beginoutput" {
		t.Fatalf("unexpected begin token: %+v", toks[0])
	}
	if toks[1].Kind != TokenRaw || toks[1].Text != "--title not a directive" {
		t.Fatalf("verbatim line was interpreted: %+v", toks[1])
	}
	if toks[2].Kind != TokenRaw || toks[2].Text != `  --b raw \--u` {
		t.Fatalf("verbatim line not byte-for-byte: %+v", toks[2])
	}
	if toks[3].Kind != TokenDirective || toks[3].Name != "endoutput" {
		t.Fatalf("unexpected end token: %+v", toks[3])
	}
}

func TestLexBlankLines(t *testing.T) {
	toks := collectTokens(t, "one\n\t \ntwo")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", toks)
	}
	if toks[1].Kind != TokenBlank {
		t.Fatalf("whitespace-only line should be blank, got %+v", toks[1])
	}
}

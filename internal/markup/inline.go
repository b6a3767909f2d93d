/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package markup

import (
	"strings"

	"github.com/clarissalittler/tpp/internal/document"
)

// styleFrame records one open inline tag and the style snapshot to restore
// when its matching close arrives.
type styleFrame struct {
	tag  string
	line int // line of the opening tag, reported on UnclosedTag
	prev document.StyleSet
}

// resolveRuns turns a paragraph's raw token sequence into styled runs using
// an explicit slice-as-stack. Closing tags must match the innermost open tag
// (strict LIFO); an open tag at paragraph end is an error, never auto-closed.
// Adjacent text under an unchanged style collapses into one run.
func resolveRuns(toks []Token) ([]document.StyledRun, error) {
	var (
		runs  []document.StyledRun
		stack []styleFrame
		cur   document.StyleSet
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, document.StyledRun{Text: buf.String(), Style: cur})
			buf.Reset()
		}
	}

	for _, tok := range toks {
		switch tok.Kind {
		case TokenText:
			buf.WriteString(tok.Text)
		case TokenInlineOpen:
			flush()
			stack = append(stack, styleFrame{tag: tok.Name, line: tok.Line, prev: cur})
			switch tok.Name {
			case tagBold:
				cur.Bold = true
			case tagUnderline:
				cur.Underline = true
			case tagReverse:
				cur.Reverse = true
			case tagColor:
				cur.Color = tok.Arg
			}
		case TokenInlineClose:
			if len(stack) == 0 || stack[len(stack)-1].tag != tok.Name {
				open := "none"
				if len(stack) > 0 {
					open = directivePrefix + stack[len(stack)-1].tag
				}
				return nil, parseErr(ErrMismatchedTag, tok.Line, "%s/%s closes %s", directivePrefix, tok.Name, open)
			}
			flush()
			cur = stack[len(stack)-1].prev
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, parseErr(ErrUnclosedTag, top.line, "%s%s", directivePrefix, top.tag)
	}
	flush()
	return runs, nil
}

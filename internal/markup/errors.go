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
	"fmt"
)

// Sentinel error kinds raised during compilation. Callers match them with
// errors.Is; the concrete error is always a *ParseError carrying the line.
var (
	ErrUnknownDirective     = errors.New("unknown directive")
	ErrNestedVerbatim       = errors.New("nested verbatim region")
	ErrUnmatchedEndOutput   = errors.New("end of verbatim region without a matching begin")
	ErrUnterminatedVerbatim = errors.New("verbatim region never terminated")
	ErrMismatchedTag        = errors.New("closing tag does not match the innermost open tag")
	ErrUnclosedTag          = errors.New("inline tag left open")
)

// ParseError is a fatal compilation error with source position context.
// Compilation stops at the first ParseError; no partial document is returned.
type ParseError struct {
	Kind   error // one of the sentinel kinds above
	Line   int   // 1-based line in the input
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseErr(kind error, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Detail: fmt.Sprintf(format, args...)}
}

/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package playback

import (
	"io"
)

// Screen is the terminal output collaborator: rendered page text flows
// through Write, Clear wipes the display and homes the cursor.
type Screen interface {
	io.Writer
	Clear() error
}

// ANSIScreen drives any ANSI-capable terminal through an io.Writer,
// typically os.Stdout.
type ANSIScreen struct {
	W io.Writer
}

func (s *ANSIScreen) Write(p []byte) (int, error) { return s.W.Write(p) }

func (s *ANSIScreen) Clear() error {
	_, err := io.WriteString(s.W, "\x1b[2J\x1b[H")
	return err
}

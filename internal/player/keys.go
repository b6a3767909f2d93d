/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package player

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Advance key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the footer. It's part of the
// key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{}
}

var keys = keyMap{
	Advance: key.NewBinding(
		key.WithKeys(" ", "enter", "right", "pgdown", "n"),
		key.WithHelp("space", "next page"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "pgup", "p"),
		key.WithHelp("←", "previous page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

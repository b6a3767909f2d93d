/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package player is the interactive terminal front end: a bubbletea program
// that pages through a compiled document, translating keypresses into
// advance/back/quit. The document itself stays read-only; going back simply
// re-renders an earlier page.
package player

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clarissalittler/tpp/internal/document"
	"github.com/clarissalittler/tpp/internal/playback"
)

// Model is the bubbletea model for interactive playback. Timed auto-advance
// is the engine's concern; the player only translates keypresses.
type Model struct {
	doc      *document.Document
	renderer *playback.Renderer
	page     int
	quitting bool
}

// New builds a player starting at the given page (for --resume).
func New(doc *document.Document, renderer *playback.Renderer, startPage int) Model {
	if startPage < 0 || startPage >= len(doc.Pages) {
		startPage = 0
	}
	return Model{doc: doc, renderer: renderer, page: startPage}
}

// LastPage reports the page shown when the program ended.
func (m Model) LastPage() int { return m.page }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Advance):
			return m.advance()
		case key.Matches(msg, keys.Back):
			if m.page > 0 {
				m.page--
			}
			return m, nil
		}
	}
	return m, nil
}

// advance moves to the next page, or quits past the last one.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.page+1 < len(m.doc.Pages) {
		m.page++
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	body := m.renderer.RenderPage(m.doc, m.page)
	footer := fmt.Sprintf("page %d/%d  (space: next, %s: back, q: quit)",
		m.page+1, len(m.doc.Pages), keys.Back.Help().Key)
	return body + "\n" + footer + "\n"
}

// Run plays the document interactively in the alternate screen buffer and
// returns the last page shown.
func Run(doc *document.Document, renderer *playback.Renderer, startPage int) (int, error) {
	p := tea.NewProgram(New(doc, renderer, startPage), tea.WithAltScreen())
	res, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("run player: %w", err)
	}
	final, ok := res.(Model)
	if !ok {
		return 0, nil
	}
	return final.LastPage(), nil
}

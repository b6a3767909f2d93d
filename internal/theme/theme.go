/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package theme maps the markup color vocabulary to terminal colors.
// The builtin palette covers the eight ANSI colors plus "default"; user
// config may remap any markup name onto another terminal color.
package theme

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/clarissalittler/tpp/internal/document"
)

var builtinColors = map[string]color.Color{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"default": color.FgDefault,
}

// ListColors lists the builtin color names in stable order.
func ListColors() []string {
	return []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white", "default"}
}

// Palette resolves markup color names and style sets to terminal attributes.
type Palette struct {
	colors map[string]color.Color
}

// Default returns a palette with the builtin mapping.
func Default() *Palette {
	m := make(map[string]color.Color, len(builtinColors))
	for k, v := range builtinColors {
		m[k] = v
	}
	return &Palette{colors: m}
}

// Override remaps markup color names onto builtin terminal color names,
// e.g. {"red": "magenta"}. The target must be a builtin name.
func (p *Palette) Override(mapping map[string]string) error {
	for name, target := range mapping {
		c, ok := builtinColors[strings.ToLower(strings.TrimSpace(target))]
		if !ok {
			return fmt.Errorf("unknown terminal color %q for %q", target, name)
		}
		p.colors[strings.ToLower(strings.TrimSpace(name))] = c
	}
	return nil
}

// Lookup resolves a markup color name. The second return value is false if
// the name is not in the palette; callers render such runs uncolored.
func (p *Palette) Lookup(name string) (color.Color, bool) {
	c, ok := p.colors[strings.ToLower(name)]
	return c, ok
}

// Style converts a resolved StyleSet into a terminal attribute set. Unknown
// color names degrade to no color rather than failing playback.
func (p *Palette) Style(st document.StyleSet) color.Style {
	var sty color.Style
	if st.Bold {
		sty = append(sty, color.OpBold)
	}
	if st.Underline {
		sty = append(sty, color.OpUnderscore)
	}
	if st.Reverse {
		sty = append(sty, color.OpReverse)
	}
	if st.Color != "" {
		if c, ok := p.Lookup(st.Color); ok {
			sty = append(sty, c)
		}
	}
	return sty
}

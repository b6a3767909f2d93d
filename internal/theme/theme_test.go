/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarissalittler/tpp/internal/document"
)

func TestDefaultPaletteCoversBuiltins(t *testing.T) {
	p := Default()
	for _, name := range ListColors() {
		_, ok := p.Lookup(name)
		assert.True(t, ok, "missing builtin color %q", name)
	}
	_, ok := p.Lookup("mauve")
	assert.False(t, ok)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	p := Default()
	c, ok := p.Lookup("RED")
	require.True(t, ok)
	assert.Equal(t, color.FgRed, c)
}

func TestOverrideRemapsColors(t *testing.T) {
	p := Default()
	require.NoError(t, p.Override(map[string]string{"red": "magenta"}))
	c, ok := p.Lookup("red")
	require.True(t, ok)
	assert.Equal(t, color.FgMagenta, c)

	err := p.Override(map[string]string{"red": "chartreuse"})
	assert.Error(t, err)
}

func TestStyleMapsEveryAttribute(t *testing.T) {
	p := Default()
	sty := p.Style(document.StyleSet{Bold: true, Underline: true, Reverse: true, Color: "red"})
	assert.Contains(t, sty, color.OpBold)
	assert.Contains(t, sty, color.OpUnderscore)
	assert.Contains(t, sty, color.OpReverse)
	assert.Contains(t, sty, color.FgRed)
	assert.Len(t, sty, 4)
}

func TestStyleUnknownColorDegrades(t *testing.T) {
	p := Default()
	sty := p.Style(document.StyleSet{Bold: true, Color: "nope"})
	assert.Equal(t, color.Style{color.OpBold}, sty)
}

func TestStyleZeroIsEmpty(t *testing.T) {
	p := Default()
	assert.Empty(t, p.Style(document.StyleSet{}))
}

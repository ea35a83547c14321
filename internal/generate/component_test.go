package generate

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/sitegen/internal/core"
)

func TestComponent_PathAndNames(t *testing.T) {
	for _, c := range testComponents() {
		t.Run(c.Name, func(t *testing.T) {
			a, err := Component(testLayout, c)
			require.NoError(t, err)

			assert.Equal(t, testLayout.ComponentPath(c.Name), a.Path)
			assert.Contains(t, a.Content, "selector: '"+core.ComponentSelector(c.Name)+"'")
			assert.Contains(t, a.Content, "export class "+core.ComponentClass(c.Name))
		})
	}
}

func TestComponent_UnknownPresetFallsBack(t *testing.T) {
	for _, tag := range []string{"carousel", "", "HERO"} {
		a, err := Component(testLayout, core.Component{Name: "Mystery Box", Preset: tag})
		require.NoError(t, err)
		assert.Contains(t, a.Content, "<strong>Mystery Box</strong>")
		assert.Contains(t, a.Content, "JsonPipe")
	}
}

func TestComponent_Snapshots(t *testing.T) {
	for _, c := range testComponents() {
		a, err := Component(testLayout, c)
		require.NoError(t, err)
		snaps.MatchSnapshot(t, a.Content)
	}
}

func TestStylesheet(t *testing.T) {
	a, err := Stylesheet(testLayout)
	require.NoError(t, err)

	assert.Equal(t, testLayout.StylesPath, a.Path)
	assert.True(t, strings.HasPrefix(a.Content, "/* Global styles */"))
}

package interactive

import (
	"testing"

	"lcsubstr/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, key tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: key})
}

func TestTypingUpdatesMatch(t *testing.T) {
	var m tea.Model = newModel(&config.Config{})

	m = typeText(m, "apple")
	require.Equal(t, "", m.(model).match)

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "purple")

	require.Equal(t, "apple", m.(model).inputs[0].Value())
	require.Equal(t, "purple", m.(model).inputs[1].Value())
	require.Equal(t, "ple", m.(model).match)
	require.Contains(t, m.View(), `match:  "ple" (3)`)
}

func TestTabCyclesFocus(t *testing.T) {
	var m tea.Model = newModel(&config.Config{})
	require.Equal(t, 0, m.(model).focused)

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, 1, m.(model).focused)
	require.True(t, m.(model).inputs[1].Focused())
	require.False(t, m.(model).inputs[0].Focused())

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, 0, m.(model).focused)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(newModel(&config.Config{}), key)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestCharLimitFollowsConfig(t *testing.T) {
	var m tea.Model = newModel(&config.Config{MaxInputLength: 3})

	m = typeText(m, "abcdef")
	require.Equal(t, "abc", m.(model).inputs[0].Value())
}

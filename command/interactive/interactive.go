package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lcsubstr/config"
	"lcsubstr/lcs"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

type InteractiveCommand struct{}

func NewInteractiveCommand() *InteractiveCommand {
	return &InteractiveCommand{}
}

func (c *InteractiveCommand) Synopsis() string {
	return "Type two strings and watch their longest common substring"
}

func (c *InteractiveCommand) Flags() *pflag.FlagSet {
	return pflag.NewFlagSet("interactive", pflag.ContinueOnError)
}

func (c *InteractiveCommand) Execute(ctx context.Context, cfg *config.Config, args []string) error {
	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}

type model struct {
	cfg     *config.Config
	inputs  []textinput.Model
	focused int
	match   string
	err     error
}

func newModel(cfg *config.Config) model {
	inputs := make([]textinput.Model, 2)
	for i, placeholder := range []string{"first", "second"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = fmt.Sprintf("%-8s", placeholder+":")
		if cfg.MaxInputLength > 0 {
			ti.CharLimit = cfg.MaxInputLength
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return model{cfg: cfg, inputs: inputs}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % len(m.inputs)
			return m, m.inputs[m.focused].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.refresh()

	return m, cmd
}

func (m *model) refresh() {
	first, second := m.inputs[0].Value(), m.inputs[1].Value()

	m.err = m.cfg.CheckLength("first input", first)
	if m.err == nil {
		m.err = m.cfg.CheckLength("second input", second)
	}
	if m.err != nil {
		m.match = ""
		return
	}

	m.match = lcs.LongestCommonSubstring(first, second)
}

func (m model) View() string {
	sb := strings.Builder{}

	for _, ti := range m.inputs {
		sb.WriteString(ti.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(m.err.Error())
	} else {
		fmt.Fprintf(&sb, "match:  %q (%d)", m.match, utf8.RuneCountInString(m.match))
	}

	sb.WriteString("\n\ntab to switch fields, esc to quit\n")

	return sb.String()
}

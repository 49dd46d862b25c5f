package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/envup/internal/config"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return titleStyle.Render(m.title) + "\n" + yes + " / " + no + "\n"
}

// askString prompts for a single line of text with optional validation.
func askString(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{textInput: ti, title: title, validate: validate}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	result := final.(inputModel)
	if result.aborted {
		return "", fmt.Errorf("aborted")
	}
	return strings.TrimSpace(result.textInput.Value()), nil
}

// askBool prompts for a yes/no answer.
func askBool(title string, def bool) (bool, error) {
	m := confirmModel{title: title, value: def}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	result := final.(confirmModel)
	if result.aborted {
		return false, fmt.Errorf("aborted")
	}
	return result.value, nil
}

// promptConfig walks the user through the envup.yaml settings.
func promptConfig() (*config.File, error) {
	bin, err := askString("Poetry binary path (leave empty to auto-detect)", "/usr/local/bin/poetry",
		func(s string) error {
			if s != "" && !filepath.IsAbs(s) {
				return fmt.Errorf("must be an absolute path")
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	fixPerms, err := askBool("Fix execute permission on the poetry binary before use?", false)
	if err != nil {
		return nil, err
	}

	syncStr, err := askString("Lockfile sync mode (auto / always / never)", "auto",
		func(s string) error {
			_, perr := config.ParseSyncMode(s)
			return perr
		})
	if err != nil {
		return nil, err
	}

	return &config.File{
		Version:        1,
		PoetryBin:      bin,
		FixPermissions: fixPerms,
		Install:        config.Install{Sync: syncStr},
	}, nil
}

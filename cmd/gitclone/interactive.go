package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// inputModel is a single-line prompt with validation.
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
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := strings.TrimSpace(m.textInput.Value())
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

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	result, err := tea.NewProgram(inputModel{textInput: ti, title: title, validate: validate}).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}

// promptCloneRequest asks for the repository URL and the ref to check out.
// An empty ref answer selects defaultRef.
func promptCloneRequest(defaultRef string) (url, ref string, err error) {
	url, err = promptInput("Repository URL", "git@github.com:org/repo.git", validateURL)
	if err != nil {
		return "", "", err
	}
	ref, err = promptInput(fmt.Sprintf("Branch, tag, or commit (empty for %s)", defaultRef), defaultRef, validateRef)
	if err != nil {
		return "", "", err
	}
	if ref == "" {
		ref = defaultRef
	}
	return url, ref, nil
}

func validateURL(s string) error {
	if s == "" {
		return fmt.Errorf("URL is required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("URL must not contain whitespace")
	}
	return nil
}

func validateRef(s string) error {
	if strings.ContainsAny(s, " \t~^:?*[\\") {
		return fmt.Errorf("not a valid git ref: %q", s)
	}
	return nil
}

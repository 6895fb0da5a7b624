// Package tui implements the interactive session: a prompt line above
// a transcript of resolved entries. One request is handled at a time;
// the loop blocks on input between requests.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/knsugi/wordlens/internal/bot"
)

const usageHint = "Usage: define <word> | describe <image>\nType 'help' for more info."

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Foreground(lipgloss.Color("205"))

	promptStyle = lipgloss.NewStyle().Bold(true)
)

const welcomeText = "wordlens - words & pictures to meanings\nType 'help' for a list of commands."

const helpText = `Commands:
  define <word>      Look up a word definition
  describe <image>   Describe an image (JPG/PNG)
  help               Show this help message
  exit               Quit`

// Session is the bubbletea model for the interactive loop.
type Session struct {
	input      textinput.Model
	transcript []string
	bot        *bot.Bot
	width      int
	height     int
	quitting   bool
}

func NewSession(b *bot.Bot) *Session {
	input := textinput.New()
	input.Placeholder = "define <word> | describe <image>"
	input.Prompt = "> "
	input.Focus()

	return &Session{
		input: input,
		bot:   b,
	}
}

func (s *Session) Init() tea.Cmd {
	return textinput.Blink
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			s.quitting = true
			return s, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(s.input.Value())
			s.input.SetValue("")
			if line == "" {
				return s, nil
			}
			if strings.EqualFold(line, "exit") {
				s.quitting = true
				return s, tea.Quit
			}
			s.append("> " + line)
			s.append(s.handle(line))
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// handle dispatches one command line and returns the reply text. The
// request is fully resolved before control returns to the input loop.
func (s *Session) handle(line string) string {
	if strings.EqualFold(line, "help") {
		return helpText
	}

	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return usageHint
	}
	cmd, arg := strings.ToLower(parts[0]), strings.TrimSpace(parts[1])

	ctx := context.Background()
	switch cmd {
	case "define":
		return s.bot.Define(ctx, arg)
	case "describe":
		return s.bot.Describe(ctx, arg)
	default:
		return "Unknown command: '" + cmd + "'. Type 'help' for options."
	}
}

func (s *Session) append(text string) {
	s.transcript = append(s.transcript, text)
}

func (s *Session) View() string {
	if s.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(bannerStyle.Render(welcomeText))
	b.WriteString("\n\n")

	for _, block := range s.visibleTranscript() {
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render(s.input.View()))
	b.WriteString("\n")
	return b.String()
}

// visibleTranscript trims old blocks so the prompt stays on screen.
func (s *Session) visibleTranscript() []string {
	if s.height == 0 {
		return s.transcript
	}

	budget := s.height - 8 // banner + prompt + margins
	var kept []string
	lines := 0
	for i := len(s.transcript) - 1; i >= 0; i-- {
		block := s.transcript[i]
		lines += strings.Count(block, "\n") + 2
		if lines > budget && len(kept) > 0 {
			break
		}
		kept = append([]string{block}, kept...)
	}
	return kept
}

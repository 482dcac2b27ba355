package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hananasr/faqchat/internal/domain/chat"
)

const welcomeMessage = "مرحبا! اسألني أي سؤال من الأسئلة الشائعة."

type message struct {
	fromUser bool
	text     string
}

type answerMsg struct {
	text string
}

// Model is the Bubble Tea model for the interactive chat window.
type Model struct {
	service  chat.Service
	input    textinput.Model
	viewport viewport.Model
	messages []message
	waiting  bool
	ready    bool
}

// New creates the chat model.
func New(service chat.Service) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question in any language"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		messages: []message{{text: welcomeMessage}},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, frameHeight := chatBoxStyle.GetFrameSize()
		_, inputHeight := inputBoxStyle.GetFrameSize()
		reserved := 2 + inputHeight + frameHeight // header, spacer, input frame
		height := msg.Height - reserved
		if height < 3 {
			height = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = height
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.messages = append(m.messages, message{fromUser: true, text: question})
			m.waiting = true
			m.input.Reset()
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, m.ask(question)
		}
	case answerMsg:
		m.waiting = false
		m.messages = append(m.messages, message{text: msg.text})
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the pipeline off the update loop so typing stays responsive.
func (m Model) ask(question string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		return answerMsg{text: service.AnswerText(context.Background(), question)}
	}
}

// View renders the transcript, the input box and a typing indicator.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("FAQ Chat")
	transcript := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	return header + "\n" + transcript + "\n" + input
}

func (m Model) renderTranscript() string {
	lines := make([]string, 0, len(m.messages)+1)
	for _, msg := range m.messages {
		if msg.fromUser {
			lines = append(lines, userStyle.Render("You: ")+msg.text)
		} else {
			lines = append(lines, botStyle.Render("Bot: ")+msg.text)
		}
	}
	if m.waiting {
		lines = append(lines, botStyle.Render("Bot: ")+"...")
	}
	return strings.Join(lines, "\n")
}

var (
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/polarity/internal/classifier"
)

// Analyzer is the classifier surface the form drives
type Analyzer interface {
	classifier.Classifier
	AddExample(text string, label classifier.Label)
}

// Status messages shown under the form
const (
	MsgEmptyInput    = "Please enter some text to analyze"
	MsgEmptyTraining = "Please enter training text"
	MsgRetrained     = "Model retrained with new data!"
)

// Focus identifies the focused widget
type Focus int

const (
	FocusInput Focus = iota
	FocusAnalyze
	FocusTrainText
	FocusTrainLabel
	FocusAdd
	focusCount
)

type statusKind int

const (
	statusNone statusKind = iota
	statusWarning
	statusSuccess
)

type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Analyze key.Binding
	Press   key.Binding
	Toggle  key.Binding
	Quit    key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Analyze, k.Press, k.Toggle, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev}}
}

func defaultFormKeys() formKeyMap {
	return formKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Analyze: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "analyze")),
		Press:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press button")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space", "toggle label")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// FormModel is the Bubbletea model for the analyzer form
type FormModel struct {
	analyzer Analyzer
	styles   *Styles
	keys     formKeyMap
	help     help.Model

	input      textarea.Model
	trainText  textinput.Model
	trainLabel classifier.Label
	focus      Focus

	result *classifier.Prediction

	status     string
	statusKind statusKind

	width    int
	quitting bool
}

// NewFormModel creates the form around a (trained) analyzer
func NewFormModel(a Analyzer, styles *Styles) FormModel {
	if styles == nil {
		styles = NewStyles(false)
	}

	ta := textarea.New()
	ta.Placeholder = "Enter text to analyze..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "New training example"
	ti.CharLimit = 500
	ti.Width = 40

	return FormModel{
		analyzer:   a,
		styles:     styles,
		keys:       defaultFormKeys(),
		help:       help.New(),
		input:      ta,
		trainText:  ti,
		trainLabel: classifier.Positive,
		focus:      FocusInput,
	}
}

// Init initializes the model
func (m FormModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := min(msg.Width-6, 80)
		if w > 20 {
			m.input.SetWidth(w)
			m.help.Width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

		case key.Matches(msg, m.keys.Analyze):
			m.analyze()
			return m, nil

		case key.Matches(msg, m.keys.Press):
			switch m.focus {
			case FocusAnalyze:
				m.analyze()
				return m, nil
			case FocusTrainText, FocusAdd:
				m.addExample()
				return m, nil
			case FocusTrainLabel:
				m.toggleLabel()
				return m, nil
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.focus == FocusTrainLabel {
				m.toggleLabel()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusInput:
		m.input, cmd = m.input.Update(msg)
	case FocusTrainText:
		m.trainText, cmd = m.trainText.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.input.Blur()
	m.trainText.Blur()

	switch f {
	case FocusInput:
		return m.input.Focus()
	case FocusTrainText:
		return m.trainText.Focus()
	}
	return nil
}

// analyze runs the classifier on the input box; empty input only warns
func (m *FormModel) analyze() {
	txt := strings.TrimSpace(m.input.Value())
	if txt == "" {
		m.setStatus(statusWarning, MsgEmptyInput)
		return
	}

	p := m.analyzer.Predict(txt)
	m.result = &p
	m.setStatus(statusNone, "")
}

func (m *FormModel) addExample() {
	txt := strings.TrimSpace(m.trainText.Value())
	if txt == "" {
		m.setStatus(statusWarning, MsgEmptyTraining)
		return
	}

	m.analyzer.AddExample(txt, m.trainLabel)
	m.trainText.Reset()
	m.setStatus(statusSuccess, MsgRetrained)
}

func (m *FormModel) toggleLabel() {
	if m.trainLabel == classifier.Positive {
		m.trainLabel = classifier.Negative
	} else {
		m.trainLabel = classifier.Positive
	}
}

func (m *FormModel) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// Result returns the last prediction, if any
func (m FormModel) Result() (classifier.Prediction, bool) {
	if m.result == nil {
		return classifier.Prediction{}, false
	}
	return *m.result, true
}

// Status returns the current status message
func (m FormModel) Status() string {
	return m.status
}

// Focused returns the focused widget
func (m FormModel) Focused() Focus {
	return m.focus
}

// TrainLabel returns the label new examples will get
func (m FormModel) TrainLabel() classifier.Label {
	return m.trainLabel
}

// ResultText returns the two result lines as displayed, unstyled
func (m FormModel) ResultText() (sentiment, confidence string) {
	if m.result == nil {
		return "", ""
	}
	return "Sentiment: " + m.result.Label.Display(),
		"Confidence: " + classifier.FormatConfidence(m.result.Confidence)
}

// View renders the model
func (m FormModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Sentiment Analysis"))
	sb.WriteString("\n")

	sb.WriteString(s.Header.Render("Enter text to analyze:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.button("Analyze Sentiment", FocusAnalyze))
	sb.WriteString("\n\n")

	sb.WriteString(s.Header.Render("Analysis Result:"))
	sb.WriteString("\n")
	if sentiment, confidence := m.ResultText(); sentiment != "" {
		sb.WriteString(s.ForLabel(m.result.Label).Render(sentiment))
		sb.WriteString("\n")
		sb.WriteString(confidence)
	} else {
		sb.WriteString(s.Subheader.Render("(none yet)"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(s.Panel.Render(m.trainingPanel()))
	sb.WriteString("\n")

	switch m.statusKind {
	case statusWarning:
		sb.WriteString(s.Warning.Render(s.IconWarning + " " + m.status))
	case statusSuccess:
		sb.WriteString(s.Success.Render(s.IconSuccess + " " + m.status))
	}
	sb.WriteString("\n")

	sb.WriteString(s.Help.Render(m.help.View(m.keys)))
	return sb.String()
}

func (m FormModel) trainingPanel() string {
	s := m.styles

	label := "[" + m.trainLabel.Display() + "]"
	label = s.ForLabel(m.trainLabel).Render(label)
	if m.focus == FocusTrainLabel {
		label = "> " + label
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render("Add training example"),
		m.trainText.View(),
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.Subheader.Render("Label: "), label, "   ", m.button("Add Example", FocusAdd)),
	)
}

func (m FormModel) button(text string, f Focus) string {
	if m.focus == f {
		return m.styles.ButtonFocused.Render("[ " + text + " ]")
	}
	return m.styles.Button.Render("[ " + text + " ]")
}

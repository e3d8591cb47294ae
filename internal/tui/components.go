package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type stepState int

const (
	stepTodo stepState = iota
	stepCurrent
	stepDone
)

// renderSteps draws the onboarding progress line; steps before current are
// done.
func renderSteps(labels []string, current int) string {
	parts := make([]string, 0, len(labels)*2)
	for i, label := range labels {
		state := stepTodo
		switch {
		case i < current:
			state = stepDone
		case i == current:
			state = stepCurrent
		}
		if i > 0 {
			parts = append(parts, stepConnectorStyle.Render(" → "))
		}
		parts = append(parts, stepLabel(label, state))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func stepLabel(label string, state stepState) string {
	switch state {
	case stepDone:
		return stepCompleteStyle.Render("✓ " + label)
	case stepCurrent:
		return stepActiveStyle.Render("● " + label)
	default:
		return stepPendingStyle.Render("○ " + label)
	}
}

// field is one labelled row of a profile card.
type field struct {
	label string
	value string
}

// renderProfileCard frames a heading and aligned label/value rows. width is
// the outer width including the border.
func renderProfileCard(title, heading string, fields []field, width int) string {
	pad := 0
	for _, f := range fields {
		pad = max(pad, lipgloss.Width(f.label))
	}
	var b strings.Builder
	b.WriteString(boxTitleStyle.Render(title) + "\n")
	b.WriteString(heading + "\n\n")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		gap := strings.Repeat(" ", pad-lipgloss.Width(f.label)+2)
		b.WriteString(statLabelStyle.Render(f.label) + gap + f.value)
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colPink).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(max(width-2, 1))
	}
	return style.Render(b.String())
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

func statusLine(kind statusKind, text string) string {
	switch kind {
	case statusOK:
		return okStyle.Render("✓ " + text)
	case statusWarn:
		return statusWarnStyle.Render("⚠ " + text)
	case statusError:
		return errorStyle.Render("✗ " + text)
	default:
		return statusInfoStyle.Render("● " + text)
	}
}

// segment is one styled cell of the header bar.
type segment struct {
	text  string
	style lipgloss.Style
}

func joinSegments(segs []segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.text != "" {
			parts = append(parts, s.style.Render(s.text))
		}
	}
	return strings.Join(parts, headerStyle.Render(" "))
}

// renderBar puts left flush left and right flush right, filling the gap
// with the header background. When both do not fit they are simply joined.
func renderBar(width int, left, right []segment) string {
	l, r := joinSegments(left), joinSegments(right)
	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		if r == "" {
			return l
		}
		return l + headerStyle.Render(" ") + r
	}
	return l + headerStyle.Render(strings.Repeat(" ", gap)) + r
}

// renderChoice shows a labelled option list collapsed to the chosen value.
func renderChoice(label string, options []string, selected int) string {
	value := ""
	if selected >= 0 && selected < len(options) {
		value = options[selected]
	}
	return label + ": " + choiceStyle.Render("["+value+"]")
}

type statCard struct {
	label string
	value string
}

func (c statCard) render(width int) string {
	body := statLabelStyle.Render(c.label) + "\n" + statValueStyle.Render(c.value)
	return borderStyle.Width(max(width-2, 8)).Render(body)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
)

// navigateMsg asks the root model to mount the screen for path.
type navigateMsg struct {
	path    string
	replace bool
}

type backMsg struct{}

type statusMsg struct {
	note  string
	isErr bool
}

type toastExpiredMsg struct{ id int }

// authResultMsg carries the outcome of a signup or signin call.
type authResultMsg struct {
	signup    bool
	role      string
	isStudent bool
	resp      authapi.AuthResponse
	offline   bool
	err       error
}

type forgotResultMsg struct {
	message string
	err     error
}

type profileSavedMsg struct {
	message string
	err     error
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func replaceRoute(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, replace: true} }
}

func goBack() tea.Cmd {
	return func() tea.Msg { return backMsg{} }
}

func status(note string) tea.Cmd {
	return func() tea.Msg { return statusMsg{note: note} }
}

func statusErr(note string) tea.Cmd {
	return func() tea.Msg { return statusMsg{note: note, isErr: true} }
}

func expireToast(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

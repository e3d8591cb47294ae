package tui

import (
	"errors"
	"fmt"
	"math"
	"os/exec"
	"runtime"
	"strings"

	clipboard "github.com/atotto/clipboard"
	"github.com/google/shlex"
)

const urlPlaceholder = "{url}"

// wrapIndex moves current by delta inside [0, n), wrapping at both ends. It
// reports false for out of range input or when the sum would overflow.
func wrapIndex(current, delta, n int) (int, bool) {
	if n <= 0 || current < 0 || current >= n {
		return 0, false
	}
	if delta > 0 && current > math.MaxInt-delta {
		return 0, false
	}
	if delta < 0 && current < math.MinInt-delta {
		return 0, false
	}
	idx := (current + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx, true
}

// commandRunner starts an external program without waiting for it.
type commandRunner func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// openArgs builds the argv that opens url. A configured command is split
// like a shell would; "{url}" in it is replaced, otherwise url is appended.
func openArgs(configured, url, goos string) ([]string, error) {
	if strings.TrimSpace(configured) != "" {
		args, err := shlex.Split(configured)
		if err != nil {
			return nil, fmt.Errorf("parse open_command: %w", err)
		}
		if len(args) == 0 {
			return nil, errors.New("open_command is empty")
		}
		replaced := false
		for i, a := range args {
			if strings.Contains(a, urlPlaceholder) {
				args[i] = strings.ReplaceAll(a, urlPlaceholder, url)
				replaced = true
			}
		}
		if !replaced {
			args = append(args, url)
		}
		return args, nil
	}
	switch goos {
	case "darwin":
		return []string{"open", url}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}, nil
	default:
		return []string{"xdg-open", url}, nil
	}
}

func (d *deps) openURL(url string) error {
	args, err := openArgs(d.cfg.OpenCommand, url, runtime.GOOS)
	if err != nil {
		return err
	}
	run := d.runner
	if run == nil {
		run = startCommand
	}
	if err := run(args[0], args[1:]...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// copyText writes text to the system clipboard and returns a status note.
func copyText(text, what string) (string, bool) {
	if text == "" {
		return "Nada para copiar", false
	}
	if err := clipboard.WriteAll(text); err != nil {
		return "Falha ao copiar " + what + ": " + err.Error(), true
	}
	return what + " copiado para a área de transferência", false
}

func truncateText(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

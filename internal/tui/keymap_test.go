package tui

import (
	"strings"
	"testing"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type keyUsage struct {
	action   Action
	screenID string
}

func isNavigationAction(act Action) bool {
	switch act {
	case ActNavigateUp,
		ActNavigateDown,
		ActPageUp,
		ActPageDown,
		ActScrollTop,
		ActScrollBottom,
		ActFocusSwitch,
		ActConfirm,
		ActCancel:
		return true
	default:
		return false
	}
}

func TestDefaultKeyMapHasNoSingleLetterConflicts(t *testing.T) {
	t.Parallel()
	keyMap := DefaultKeyMap()
	seen := make(map[string]keyUsage)

	for _, screenID := range screenIDOrder {
		actions := keyMap.PerScreen[screenID]
		if len(actions) == 0 {
			continue
		}

		for action, combos := range actions {
			for _, combo := range combos {
				if combo.Alt || combo.Ctrl || combo.Shift {
					continue
				}

				if isNavigationAction(action) {
					continue
				}

				key := strings.ToLower(combo.Key)
				if key == "" {
					continue
				}

				runes := []rune(key)
				if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
					continue
				}

				if previous, ok := seen[key]; ok {
					if previous.action != action {
						t.Fatalf(
							"key %q is bound to %q on screen %q and %q on screen %q",
							key,
							previous.action,
							previous.screenID,
							action,
							screenID,
						)
					}
					continue
				}

				seen[key] = keyUsage{
					action:   action,
					screenID: screenID,
				}
			}
		}
	}
}

func TestScreenKeysDoNotShadowGlobalLetters(t *testing.T) {
	t.Parallel()
	keyMap := DefaultKeyMap()

	globalLetters := map[string]Action{}
	for act, combos := range keyMap.Global {
		for _, combo := range combos {
			if !combo.Alt && !combo.Ctrl && len([]rune(combo.Key)) == 1 {
				globalLetters[combo.Key] = act
			}
		}
	}
	for _, screenID := range screenIDOrder {
		for act, combos := range keyMap.PerScreen[screenID] {
			for _, combo := range combos {
				if combo.Alt || combo.Ctrl {
					continue
				}
				if global, ok := globalLetters[combo.Key]; ok {
					t.Fatalf("key %q of %q on screen %q shadows global %q", combo.Key, act, screenID, global)
				}
			}
		}
	}
}

func TestEveryScreenHasKeymapEntry(t *testing.T) {
	t.Parallel()
	keyMap := DefaultKeyMap()
	for _, screenID := range screenIDOrder {
		if _, ok := keyMap.PerScreen[screenID]; !ok {
			t.Fatalf("expected keymap entry for screen %q", screenID)
		}
	}
}

func TestEveryBoundActionHasLabel(t *testing.T) {
	t.Parallel()
	keyMap := DefaultKeyMap()
	check := func(source map[Action][]KeyCombo) {
		for act := range source {
			if keyMap.Label(act) == string(act) {
				t.Fatalf("expected a label for action %q", act)
			}
		}
	}
	check(keyMap.Global)
	for _, screenID := range screenIDOrder {
		check(keyMap.PerScreen[screenID])
	}
}

func TestKeyComboMatches(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		combo KeyCombo
		msg   tea.KeyMsg
		want  bool
	}{
		{name: "letter", combo: KeyCombo{Key: "m"}, msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}, want: true},
		{name: "alt digit", combo: KeyCombo{Key: "2", Alt: true}, msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true}, want: true},
		{name: "plain digit is not alt", combo: KeyCombo{Key: "2", Alt: true}, msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}, want: false},
		{name: "ctrl", combo: KeyCombo{Key: "t", Ctrl: true}, msg: tea.KeyMsg{Type: tea.KeyCtrlT}, want: true},
		{name: "shift tab", combo: shiftTab(), msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.combo.Matches(tc.msg); got != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestComboLabelsPrefersScreenBinding(t *testing.T) {
	t.Parallel()
	keyMap := DefaultKeyMap()
	if got := comboLabels(keyMap, screenCreator, ActCancel); got != "Esc" {
		t.Fatalf("expected Esc, got %q", got)
	}
	if got := comboLabels(keyMap, screenLanding, ActHelp); got != "?/F1" {
		t.Fatalf("expected ?/F1, got %q", got)
	}
	if got := comboLabels(keyMap, screenLanding, ActChangePassword); got != "" {
		t.Fatalf("expected no label, got %q", got)
	}
}

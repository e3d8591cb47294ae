package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Action string

const (
	ActQuit        Action = "quit"
	ActInterrupt   Action = "interrupt"
	ActHelp        Action = "help"
	ActBack        Action = "back"
	ActToggleTheme Action = "toggle_theme"
	ActCopyError   Action = "copy_error"

	ActGotoEntry1 Action = "goto_entry_1"
	ActGotoEntry2 Action = "goto_entry_2"
	ActGotoEntry3 Action = "goto_entry_3"
	ActGotoEntry4 Action = "goto_entry_4"
	ActGotoEntry5 Action = "goto_entry_5"

	ActConfirm      Action = "confirm"
	ActCancel       Action = "cancel"
	ActFocusSwitch  Action = "focus_switch"
	ActNavigateUp   Action = "navigate_up"
	ActNavigateDown Action = "navigate_down"
	ActPageUp       Action = "page_up"
	ActPageDown     Action = "page_down"
	ActScrollTop    Action = "scroll_top"
	ActScrollBottom Action = "scroll_bottom"

	ActOpenLink       Action = "open_link"
	ActCopyLink       Action = "copy_link"
	ActToggleMode     Action = "toggle_mode"
	ActForgotPassword Action = "forgot_password"
	ActToggleMenu     Action = "toggle_menu"
	ActCycleFilter    Action = "cycle_filter"
	ActCycleSort      Action = "cycle_sort"
	ActEdit           Action = "edit"
	ActChangePassword Action = "change_password"
	ActSignOut        Action = "sign_out"
)

func gotoEntryAction(index int) (Action, bool) {
	switch index {
	case 0:
		return ActGotoEntry1, true
	case 1:
		return ActGotoEntry2, true
	case 2:
		return ActGotoEntry3, true
	case 3:
		return ActGotoEntry4, true
	case 4:
		return ActGotoEntry5, true
	default:
		return "", false
	}
}

func entryIndexFromAction(act Action) (int, bool) {
	for i := 0; i < 5; i++ {
		if a, _ := gotoEntryAction(i); a == act {
			return i, true
		}
	}
	return 0, false
}

type KeyCombo struct {
	Key   string
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (kc KeyCombo) String() string {
	parts := make([]string, 0, 4)
	if kc.Ctrl {
		parts = append(parts, "ctrl")
	}
	if kc.Alt {
		parts = append(parts, "alt")
	}
	if kc.Shift {
		parts = append(parts, "shift")
	}
	base := strings.ToLower(kc.Key)
	parts = append(parts, base)
	return strings.Join(parts, "+")
}

func (kc KeyCombo) Display() string {
	parts := make([]string, 0, 4)
	if kc.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if kc.Alt {
		parts = append(parts, "Alt")
	}
	if kc.Shift {
		parts = append(parts, "Shift")
	}
	base := strings.ToLower(kc.Key)
	switch base {
	case "pgup":
		base = "PgUp"
	case "pgdown":
		base = "PgDn"
	case "esc":
		base = "Esc"
	case "home":
		base = "Home"
	case "end":
		base = "End"
	case "tab":
		base = "Tab"
	case " ":
		base = "Space"
	case "enter":
		base = "Enter"
	case "up":
		base = "↑"
	case "down":
		base = "↓"
	case "left":
		base = "←"
	case "right":
		base = "→"
	case "backspace":
		base = "Backspace"
	case "space":
		base = "Space"
	default:
		if len(base) == 1 {
			base = strings.ToUpper(base)
		} else {
			base = strings.ToUpper(base[:1]) + base[1:]
		}
	}
	if len(parts) == 0 {
		return base
	}
	parts = append(parts, base)
	return strings.Join(parts, "+")
}

func (kc KeyCombo) Matches(msg tea.KeyMsg) bool {
	want := strings.ToLower(kc.String())
	have := strings.ToLower(msg.String())
	return want == have
}

type KeyMap struct {
	Global          map[Action][]KeyCombo
	PerScreen       map[string]map[Action][]KeyCombo
	labels          map[Action]string
	typingSensitive map[Action]bool
}

type HelpEntry struct {
	Action Action
	Label  string
	Combos []KeyCombo
}

func (km KeyMap) GlobalActions(msg tea.KeyMsg) []Action {
	return km.matchingActions(km.Global, msg)
}

func (km KeyMap) ScreenActions(screenID string, msg tea.KeyMsg) []Action {
	return km.matchingActions(km.PerScreen[screenID], msg)
}

func (km KeyMap) matchingActions(source map[Action][]KeyCombo, msg tea.KeyMsg) []Action {
	if len(source) == 0 {
		return nil
	}
	var matches []Action
	for act, combos := range source {
		for _, combo := range combos {
			if combo.Matches(msg) {
				matches = append(matches, act)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return string(matches[i]) < string(matches[j])
	})
	return matches
}

func (km KeyMap) Label(act Action) string {
	if label, ok := km.labels[act]; ok {
		return label
	}
	return string(act)
}

func (km KeyMap) IsTypingSensitive(act Action) bool {
	return km.typingSensitive[act]
}

func (km KeyMap) GlobalHelpEntries() []HelpEntry {
	return km.helpEntries(km.Global)
}

func (km KeyMap) HelpEntriesForScreen(screenID string) []HelpEntry {
	return km.helpEntries(km.PerScreen[screenID])
}

func (km KeyMap) helpEntries(source map[Action][]KeyCombo) []HelpEntry {
	if len(source) == 0 {
		return nil
	}
	entries := make([]HelpEntry, 0, len(source))
	for act, combos := range source {
		if len(combos) == 0 {
			continue
		}
		entry := HelpEntry{
			Action: act,
			Label:  km.Label(act),
			Combos: append([]KeyCombo(nil), combos...),
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return entries
}

func DefaultKeyMap() KeyMap {
	ctrl := func(key string) KeyCombo {
		return KeyCombo{Key: key, Ctrl: true}
	}
	alt := func(key string) KeyCombo {
		return KeyCombo{Key: key, Alt: true}
	}
	key := func(k string) KeyCombo {
		return KeyCombo{Key: k}
	}

	global := map[Action][]KeyCombo{
		ActQuit:        {key("q")},
		ActInterrupt:   {ctrl("c")},
		ActHelp:        {key("?"), key("f1")},
		ActBack:        {key("esc")},
		ActToggleTheme: {ctrl("t")},
		ActCopyError:   {ctrl("y")},
	}

	shellActions := func(extra map[Action][]KeyCombo) map[Action][]KeyCombo {
		actions := map[Action][]KeyCombo{
			ActToggleMenu:   {key("m")},
			ActFocusSwitch:  {key("tab")},
			ActNavigateUp:   {key("up")},
			ActNavigateDown: {key("down")},
			ActConfirm:      {key("enter")},
			ActCancel:       {key("esc")},
			ActGotoEntry1:   {alt("1")},
			ActGotoEntry2:   {alt("2")},
			ActGotoEntry3:   {alt("3")},
			ActGotoEntry4:   {alt("4")},
			ActGotoEntry5:   {alt("5")},
			ActEdit:         {key("e")},
			ActSignOut:      {ctrl("o")},
		}
		for act, combos := range extra {
			actions[act] = combos
		}
		return actions
	}

	perScreen := map[string]map[Action][]KeyCombo{
		screenLanding: {
			ActConfirm:      {key("enter")},
			ActNavigateUp:   {key("up")},
			ActNavigateDown: {key("down")},
			ActPageUp:       {key("pgup")},
			ActPageDown:     {key("pgdown")},
			ActScrollTop:    {key("home")},
			ActScrollBottom: {key("end")},
			ActOpenLink:     {key("o")},
			ActCopyLink:     {key("c")},
		},
		screenAuth: {
			ActNavigateUp:   {key("up"), shiftTab()},
			ActNavigateDown: {key("down"), key("tab")},
			ActConfirm:      {key("enter")},
		},
		screenSignup: {
			ActToggleMode:     {ctrl("n")},
			ActForgotPassword: {ctrl("f")},
		},
		screenForgot: {
			ActConfirm: {key("enter")},
		},
		screenStudent: {},
		screenCreator: shellActions(map[Action][]KeyCombo{
			ActCycleFilter: {key("f")},
			ActCycleSort:   {key("s")},
		}),
		screenBrand: shellActions(map[Action][]KeyCombo{
			ActChangePassword: {key("p")},
		}),
		screenNotFound: {
			ActConfirm: {key("enter")},
		},
	}

	labels := map[Action]string{
		ActQuit:           "Sair do app",
		ActInterrupt:      "Sair imediatamente",
		ActHelp:           "Mostrar atalhos",
		ActBack:           "Voltar",
		ActToggleTheme:    "Alternar tema",
		ActCopyError:      "Copiar último erro",
		ActGotoEntry1:     "Ir para item 1",
		ActGotoEntry2:     "Ir para item 2",
		ActGotoEntry3:     "Ir para item 3",
		ActGotoEntry4:     "Ir para item 4",
		ActGotoEntry5:     "Ir para item 5",
		ActConfirm:        "Confirmar",
		ActCancel:         "Fechar / cancelar",
		ActFocusSwitch:    "Alternar foco menu/conteúdo",
		ActNavigateUp:     "Mover para cima",
		ActNavigateDown:   "Mover para baixo",
		ActPageUp:         "Página acima",
		ActPageDown:       "Página abaixo",
		ActScrollTop:      "Ir ao topo",
		ActScrollBottom:   "Ir ao fim",
		ActOpenLink:       "Abrir site no navegador",
		ActCopyLink:       "Copiar link do site",
		ActToggleMode:     "Alternar cadastro / entrar",
		ActForgotPassword: "Esqueceu a senha?",
		ActToggleMenu:     "Abrir menu",
		ActCycleFilter:    "Trocar categoria",
		ActCycleSort:      "Trocar ordenação",
		ActEdit:           "Editar perfil",
		ActChangePassword: "Alterar senha",
		ActSignOut:        "Sair da conta",
	}

	typingSensitive := map[Action]bool{
		ActQuit:           true,
		ActHelp:           true,
		ActGotoEntry1:     true,
		ActGotoEntry2:     true,
		ActGotoEntry3:     true,
		ActGotoEntry4:     true,
		ActGotoEntry5:     true,
		ActOpenLink:       true,
		ActCopyLink:       true,
		ActToggleMenu:     true,
		ActCycleFilter:    true,
		ActCycleSort:      true,
		ActEdit:           true,
		ActChangePassword: true,
	}

	return KeyMap{
		Global:          global,
		PerScreen:       perScreen,
		labels:          labels,
		typingSensitive: typingSensitive,
	}
}

func shiftTab() KeyCombo {
	return KeyCombo{Key: "tab", Shift: true}
}

// comboLabels joins the display form of the combos bound to act, preferring
// the screen binding over the global one.
func comboLabels(keys KeyMap, screenID string, act Action) string {
	var combos []KeyCombo
	if perScreen := keys.PerScreen[screenID]; perScreen != nil {
		combos = perScreen[act]
	}
	if len(combos) == 0 {
		combos = keys.Global[act]
	}
	if len(combos) == 0 {
		return ""
	}
	labels := make([]string, 0, len(combos))
	for _, combo := range combos {
		labels = append(labels, combo.Display())
	}
	return strings.Join(labels, "/")
}

package shell

// Selection holds the current key of one shell instance. Writes are not
// validated; an unknown key is only noticed when the registry resolves it.
type Selection struct {
	current ViewKey
}

// NewSelection returns a selection initialised to def.
func NewSelection(def ViewKey) *Selection {
	return &Selection{current: def}
}

// Current returns the selected key.
func (s *Selection) Current() ViewKey { return s.current }

// Set replaces the selected key and reports whether it changed.
func (s *Selection) Set(key ViewKey) bool {
	if s.current == key {
		return false
	}
	s.current = key
	return true
}

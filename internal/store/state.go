// Package store holds the client's application state: the signed-in user and
// their profile and preferences. State changes only through Dispatch.
package store

// Theme is the user's colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Next cycles light -> dark -> system -> light.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// IsDark resolves the preference against the terminal background.
func (t Theme) IsDark(systemDark bool) bool {
	return t == ThemeDark || (t == ThemeSystem && systemDark)
}

// User is the account returned by the auth API.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SocialLinks are optional profile links.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Profile is the public profile of the signed-in user.
type Profile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Location    string      `json:"location,omitempty"`
	Website     string      `json:"website,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
}

// Preferences are local user settings.
type Preferences struct {
	Theme         Theme `json:"theme"`
	Notifications bool  `json:"notifications"`
	EmailUpdates  bool  `json:"emailUpdates"`
}

// AuthState is the authentication slice.
type AuthState struct {
	User            *User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// UserState is the profile slice.
type UserState struct {
	Profile     *Profile
	Preferences Preferences
	IsLoading   bool
	Error       string
}

// State is the whole application state.
type State struct {
	Auth AuthState
	User UserState
}

// Initial returns the state a fresh client starts with.
func Initial() State {
	return State{
		User: UserState{
			Preferences: Preferences{
				Theme:         ThemeSystem,
				Notifications: true,
				EmailUpdates:  true,
			},
		},
	}
}

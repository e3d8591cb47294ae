package store

// Action is a state transition request. The set is closed to this package.
type Action interface {
	action()
}

type LoginStart struct{}

type LoginSuccess struct {
	User  User
	Token string
}

type LoginFailure struct {
	Err string
}

// Logout clears the session and the loaded profile.
type Logout struct{}

type FetchProfileStart struct{}

type FetchProfileSuccess struct {
	Profile Profile
}

type FetchProfileFailure struct {
	Err string
}

// ProfilePatch carries the fields to overwrite; nil fields are left alone.
type ProfilePatch struct {
	Name        *string
	Email       *string
	Avatar      *string
	Bio         *string
	Location    *string
	Website     *string
	SocialLinks *SocialLinks
}

// UpdateProfile merges a patch into the loaded profile. It is a no-op while
// no profile is loaded.
type UpdateProfile struct {
	Patch ProfilePatch
}

// PreferencesPatch carries the preference fields to overwrite.
type PreferencesPatch struct {
	Theme         *Theme
	Notifications *bool
	EmailUpdates  *bool
}

type UpdatePreferences struct {
	Patch PreferencesPatch
}

type ClearUserError struct{}

func (LoginStart) action()          {}
func (LoginSuccess) action()        {}
func (LoginFailure) action()        {}
func (Logout) action()              {}
func (FetchProfileStart) action()   {}
func (FetchProfileSuccess) action() {}
func (FetchProfileFailure) action() {}
func (UpdateProfile) action()       {}
func (UpdatePreferences) action()   {}
func (ClearUserError) action()      {}

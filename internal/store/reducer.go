package store

// Reduce returns the state that results from applying a to s. It does not
// modify s.
func Reduce(s State, a Action) State {
	s.Auth = reduceAuth(s.Auth, a)
	s.User = reduceUser(s.User, a)
	return s
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case LoginStart:
		s.IsLoading = true
		s.Error = ""
	case LoginSuccess:
		u := a.User
		s.User = &u
		s.Token = a.Token
		s.IsAuthenticated = true
		s.IsLoading = false
		s.Error = ""
	case LoginFailure:
		s = AuthState{Error: a.Err}
	case Logout:
		s = AuthState{}
	}
	return s
}

func reduceUser(s UserState, a Action) UserState {
	switch a := a.(type) {
	case FetchProfileStart:
		s.IsLoading = true
		s.Error = ""
	case FetchProfileSuccess:
		p := a.Profile
		s.IsLoading = false
		s.Profile = &p
	case FetchProfileFailure:
		s.IsLoading = false
		s.Error = a.Err
	case UpdateProfile:
		if s.Profile != nil {
			p := applyProfilePatch(*s.Profile, a.Patch)
			s.Profile = &p
		}
	case UpdatePreferences:
		s.Preferences = applyPreferencesPatch(s.Preferences, a.Patch)
	case ClearUserError:
		s.Error = ""
	case LoginSuccess:
		if s.Profile == nil {
			s.Profile = &Profile{ID: a.User.ID, Name: a.User.Name, Email: a.User.Email}
		}
	case Logout:
		s.Profile = nil
		s.IsLoading = false
		s.Error = ""
	}
	return s
}

func applyProfilePatch(p Profile, patch ProfilePatch) Profile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Name, patch.Name)
	set(&p.Email, patch.Email)
	set(&p.Avatar, patch.Avatar)
	set(&p.Bio, patch.Bio)
	set(&p.Location, patch.Location)
	set(&p.Website, patch.Website)
	if patch.SocialLinks != nil {
		p.SocialLinks = *patch.SocialLinks
	}
	return p
}

func applyPreferencesPatch(p Preferences, patch PreferencesPatch) Preferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.EmailUpdates != nil {
		p.EmailUpdates = *patch.EmailUpdates
	}
	return p
}

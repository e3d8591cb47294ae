// Package shell implements the role shells of the Nexa client: a static view
// registry, the current selection, the navigation panel and the responsive
// layout that composes them.
package shell

// ViewKey identifies a view within a role shell. The set of keys is closed;
// every key a navigation entry can carry is declared below.
type ViewKey string

const (
	KeyDashboard      ViewKey = "dashboard"
	KeyMyApplications ViewKey = "my applications"
	KeyConversations  ViewKey = "conversations"
	KeyMyAccount      ViewKey = "my account"
	KeyMyPortfolio    ViewKey = "my portfolio"
	KeyMyCampaigns    ViewKey = "my campaigns"
	KeyNewCampaign    ViewKey = "new campaign"
	KeyPayment        ViewKey = "payment"
)

var declaredKeys = []ViewKey{
	KeyDashboard,
	KeyMyApplications,
	KeyConversations,
	KeyMyAccount,
	KeyMyPortfolio,
	KeyMyCampaigns,
	KeyNewCampaign,
	KeyPayment,
}

// AllKeys returns every declared view key in declaration order.
func AllKeys() []ViewKey {
	return append([]ViewKey(nil), declaredKeys...)
}

// Declared reports whether k is one of the declared keys.
func (k ViewKey) Declared() bool {
	for _, d := range declaredKeys {
		if d == k {
			return true
		}
	}
	return false
}

func (k ViewKey) String() string { return string(k) }

// Role is the audience a shell is built for.
type Role string

const (
	RoleCreator Role = "creator"
	RoleBrand   Role = "brand"
)

// ParseRole maps a route segment to a Role. Anything that is not "creator"
// is treated as a brand, matching the signup flow.
func ParseRole(s string) Role {
	if Role(s) == RoleCreator {
		return RoleCreator
	}
	return RoleBrand
}

func (r Role) String() string { return string(r) }

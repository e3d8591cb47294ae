package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SimoKiihamaki/nexa/internal/utils"
)

type brandCampaign struct {
	Title    string
	Subtitle string
	Tags     []string
	Term     string
	Creators string
	Actions  []string
}

var (
	ongoingCampaigns = []brandCampaign{
		{Title: "Beauty Product Launch", Subtitle: "Natural beauty", Tags: []string{"Photo", "Video"}, Term: "15/12/2023", Creators: "12/5 creators", Actions: []string{"View Applications", "Chat"}},
		{Title: "Summer Campaign 2024", Subtitle: "Fashion Brazil", Tags: []string{"Review", "Video"}, Term: "20/12/2023", Creators: "8/3 creators", Actions: []string{"View Applications", "Chat"}},
		{Title: "Summer Campaign 2024", Subtitle: "Fashion Brazil", Tags: []string{"Review", "Video", "Photo"}, Term: "20/12/2023", Creators: "8/3 creators", Actions: []string{"View Applications", "Chat"}},
	}
	previousCampaigns = []brandCampaign{
		{Title: "Fitness App Disclosure", Subtitle: "FitLife", Tags: []string{"Photo", "Video", "Review"}, Term: "20/11/2023", Creators: "8 creators", Actions: []string{"View Conversations"}},
	}
)

// brandCampaigns lists the brand's ongoing and previous campaigns.
type brandCampaigns struct {
	d      *deps
	vp     viewport.Model
	width  int
	height int
}

func newBrandCampaigns(d *deps) *brandCampaigns {
	return &brandCampaigns{d: d, vp: viewport.New(0, 0)}
}

func (v *brandCampaigns) Typing() bool { return false }

func (v *brandCampaigns) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.vp.Width = width
	v.vp.Height = height
	v.vp.SetContent(v.content())
}

func (v *brandCampaigns) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActNavigateUp:
		v.vp.LineUp(1)
		return true, nil
	case ActNavigateDown:
		v.vp.LineDown(1)
		return true, nil
	}
	return false, nil
}

func (v *brandCampaigns) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd
}

func (v *brandCampaigns) brandName() string {
	s := v.d.store.State()
	var name string
	if s.Auth.User != nil {
		name = s.Auth.User.Name
	}
	return utils.FirstNonEmpty(v.d.brand.BrandName, name)
}

func (v *brandCampaigns) content() string {
	width := max(v.width-2, 20)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome, "+v.brandName()+" 👋") + "\n")
	b.WriteString(subtitleStyle.Render("Manage your campaigns and connect with amazing creators!") + "\n")

	b.WriteString(sectionTitle.Render("Ongoing Campaigns") + "\n")
	for _, c := range ongoingCampaigns {
		b.WriteString(renderBrandCampaign(c, width) + "\n")
	}
	b.WriteString(sectionTitle.Render("Previous Campaigns") + "\n")
	for _, c := range previousCampaigns {
		b.WriteString(renderBrandCampaign(c, width) + "\n")
	}
	return b.String()
}

func renderTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, tagStyle(t).Render(t))
	}
	return strings.Join(parts, " ")
}

func renderBrandCampaign(c brandCampaign, width int) string {
	actions := make([]string, 0, len(c.Actions))
	for _, a := range c.Actions {
		actions = append(actions, linkStyle.Render(a))
	}
	body := titleStyle.Render(c.Title) + "\n" +
		subtitleStyle.Render(c.Subtitle) + "\n" +
		renderTags(c.Tags) + "\n" +
		helpStyle.Render("Term: "+c.Term+"  ·  "+c.Creators) + "\n" +
		strings.Join(actions, "   ")
	return borderStyle.Width(max(width-2, 10)).Render(body)
}

func (v *brandCampaigns) View() string {
	return v.vp.View()
}

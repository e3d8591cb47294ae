package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SimoKiihamaki/nexa/internal/utils"
)

const deadlineLayout = "02/01/2006"

type campaign struct {
	Title    string
	Brand    string
	Format   string
	Deadline string
	Price    int
	Badge    string
	Category string
}

func (c campaign) deadline() time.Time {
	t, err := time.Parse(deadlineLayout, c.Deadline)
	if err != nil {
		return time.Time{}
	}
	return t
}

var creatorStats = []statCard{
	{label: "AVAILABLE CAMPAIGNS", value: "12"},
	{label: "ACTIVE CAMPAIGNS", value: "1"},
	{label: "EARNINGS OF THE MONTH", value: "R$ 750"},
}

var availableCampaigns = []campaign{
	{Title: "Summer Look", Brand: "ModaX", Format: "Video · TikTok (15 sec)", Deadline: "10/07/2025", Price: 500, Badge: "NEW", Category: "Fashion & Beauty"},
	{Title: "Headphone Review", Brand: "TechSound", Format: "Review · Instagram Reels", Deadline: "15/07/2025", Price: 750, Badge: "NEW", Category: "Technology"},
	{Title: "Healthy Recipe", Brand: "NutriLife", Format: "Photo · Post Feed Instagram", Deadline: "20/07/2025", Price: 350, Badge: "NEW", Category: "Food & Nutrition"},
	{Title: "Skincare Routine", Brand: "BeautyGlow", Format: "Video · YouTube Shorts", Deadline: "25/07/2025", Price: 600, Badge: "NEW", Category: "Fashion & Beauty"},
}

const allCategories = "All categories"

var campaignCategories = []string{
	allCategories,
	"Fashion & Beauty",
	"Technology",
	"Food & Nutrition",
	"Health & Wellness",
	"Lifestyle",
	"Gaming",
	"Education",
	"Travel",
}

const (
	sortDefault     = "Sort by"
	sortPriceDesc   = "Price: High to Low"
	sortPriceAsc    = "Price: Low to High"
	sortDeadlineAsc = "Deadline: Soonest"
	sortDeadlineDsc = "Deadline: Latest"
	sortNewest      = "Newest First"
	sortPopular     = "Most Popular"
)

var campaignSorts = []string{
	sortDefault,
	sortPriceDesc,
	sortPriceAsc,
	sortDeadlineAsc,
	sortDeadlineDsc,
	sortNewest,
	sortPopular,
}

// visibleCampaigns filters by category and orders by sortBy. Orders without
// data behind them keep the listing order.
func visibleCampaigns(all []campaign, category, sortBy string) []campaign {
	out := make([]campaign, 0, len(all))
	for _, c := range all {
		if category == "" || category == allCategories || c.Category == category {
			out = append(out, c)
		}
	}
	switch sortBy {
	case sortPriceDesc:
		slices.SortStableFunc(out, func(a, b campaign) int { return b.Price - a.Price })
	case sortPriceAsc:
		slices.SortStableFunc(out, func(a, b campaign) int { return a.Price - b.Price })
	case sortDeadlineAsc:
		slices.SortStableFunc(out, func(a, b campaign) int { return a.deadline().Compare(b.deadline()) })
	case sortDeadlineDsc:
		slices.SortStableFunc(out, func(a, b campaign) int { return b.deadline().Compare(a.deadline()) })
	}
	return out
}

func formatPrice(reais int) string {
	return fmt.Sprintf("R$%d", reais)
}

type creatorDashboard struct {
	d        *deps
	vp       viewport.Model
	category int
	sort     int
	width    int
	height   int
}

func newCreatorDashboard(d *deps) *creatorDashboard {
	return &creatorDashboard{d: d, vp: viewport.New(0, 0)}
}

func (v *creatorDashboard) Typing() bool { return false }

func (v *creatorDashboard) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.vp.Width = width
	v.vp.Height = height
	v.refresh()
}

func (v *creatorDashboard) refresh() {
	v.vp.SetContent(v.content())
}

func (v *creatorDashboard) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActCycleFilter:
		v.category, _ = wrapIndex(v.category, 1, len(campaignCategories))
		v.refresh()
		v.vp.GotoTop()
		return true, nil
	case ActCycleSort:
		v.sort, _ = wrapIndex(v.sort, 1, len(campaignSorts))
		v.refresh()
		return true, nil
	case ActNavigateUp:
		v.vp.LineUp(1)
		return true, nil
	case ActNavigateDown:
		v.vp.LineDown(1)
		return true, nil
	}
	return false, nil
}

func (v *creatorDashboard) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd
}

func (v *creatorDashboard) welcomeName() string {
	s := v.d.store.State()
	var name string
	if s.Auth.User != nil {
		name = s.Auth.User.Name
	}
	if s.User.Profile != nil {
		name = utils.FirstNonEmpty(s.User.Profile.Name, name)
	}
	return utils.FirstNonEmpty(name, "Luiza Costa")
}

func (v *creatorDashboard) content() string {
	width := max(v.width-2, 20)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome, "+v.welcomeName()+" 👋") + "\n")
	b.WriteString(subtitleStyle.Render("Discover new campaigns and start creating!") + "\n\n")

	cards := make([]string, 0, len(creatorStats))
	cardWidth := width / len(creatorStats)
	stacked := cardWidth < 22
	for _, stat := range creatorStats {
		if stacked {
			cards = append(cards, stat.render(width))
			continue
		}
		cards = append(cards, stat.render(cardWidth))
	}
	if stacked {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n")
	}

	b.WriteString(sectionTitle.Render("Available Campaigns") + "\n")
	b.WriteString(renderChoice("Categoria (f)", campaignCategories, v.category) + "   " +
		renderChoice("Ordenar (s)", campaignSorts, v.sort) + "\n\n")

	list := visibleCampaigns(availableCampaigns, campaignCategories[v.category], campaignSorts[v.sort])
	if len(list) == 0 {
		b.WriteString(helpStyle.Render("Nenhuma campanha nesta categoria."))
		return b.String()
	}
	for _, c := range list {
		b.WriteString(renderCampaignCard(c, width) + "\n")
	}
	return b.String()
}

func renderCampaignCard(c campaign, width int) string {
	head := badgeStyle.Render(c.Badge) + " " + titleStyle.Render(c.Title) + helpStyle.Render(" · "+c.Brand)
	body := c.Format + "\n" +
		helpStyle.Render("Until "+c.Deadline) + "  " + priceStyle.Render(formatPrice(c.Price)) + "\n" +
		linkStyle.Render("See details")
	return borderStyle.Width(max(width-2, 10)).Render(head + "\n" + body)
}

func (v *creatorDashboard) View() string {
	return v.vp.View()
}

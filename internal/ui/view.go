package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Klaviaadus/Cosmic-Feline/internal/chat"
	"github.com/Klaviaadus/Cosmic-Feline/internal/game"
)

const chatWidth = 44

var gameStyles = struct {
	title     lipgloss.Style
	status    lipgloss.Style
	stats     lipgloss.Style
	menu      lipgloss.Style
	menuBox   lipgloss.Style
	tabActive lipgloss.Style
	tab       lipgloss.Style
	locked    lipgloss.Style
	unlocked  lipgloss.Style
	userMsg   lipgloss.Style
	catMsg    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#C084FC")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C084FC")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#93C5FD")).
		Width(44),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C084FC")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	tabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FDE047")),

	tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")),

	locked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")),

	unlocked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDE047")),

	userMsg: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#93C5FD")),

	catMsg: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C084FC")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	title := gameStyles.title.Render("🌌 " + m.Settings.CatName + " 🌌")
	tabs := m.renderTabs()

	var body string
	switch m.Screen {
	case ScreenHome:
		body = m.renderHome()
	case ScreenShop:
		body = m.renderShop()
	case ScreenAchievements:
		body = m.renderAchievements()
	case ScreenProfile:
		body = m.renderProfile()
	case ScreenChat:
		body = m.renderChat()
	}

	sections := []string{title, tabs, "", body}

	if m.Message != "" && game.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	help := "tab/←→ switch screen • ↑↓ move • enter select • q quit"
	if m.Screen == ScreenChat {
		help = "type and press enter • esc to leave chat"
	}
	sections = append(sections, "", gameStyles.status.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range screenNames {
		if Screen(i) == m.Screen {
			tabs = append(tabs, gameStyles.tabActive.Render("["+name+"]"))
		} else {
			tabs = append(tabs, gameStyles.tab.Render(" "+name+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// catArt is the idle cosmic feline
const catArt = `
    /\_/\
   ( o.o )   *
  ✨ > ^ < ✨
    /|   |\
   (_|   |_)
`

func (m Model) renderHome() string {
	level := fmt.Sprintf("Level %d", m.Stats.Level)
	coins := fmt.Sprintf("%d ⭐", m.Stats.Coins)
	header := gameStyles.stats.Render(fmt.Sprintf("%-20s %22s", level, coins))

	bars := []string{
		renderBar("Happiness", m.Stats.Happiness, MaxBarValue),
		renderBar("Energy", m.Stats.Energy, MaxBarValue),
		renderBar("Experience", m.Stats.Experience%game.ExperiencePerLevel, game.ExperiencePerLevel),
	}

	var menuItems []string
	for i, choice := range homeMenu {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.menu.Render(catArt),
		header,
		gameStyles.stats.Render(strings.Join(bars, "\n")),
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
	)
}

func (m Model) renderShop() string {
	header := gameStyles.title.Render("Cosmic Shop")
	balance := gameStyles.stats.Render(fmt.Sprintf("Balance: %d ⭐", m.Stats.Coins))

	var lines []string
	for i, item := range game.ShopCatalog() {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %-14s %-16s %4d⭐", cursor, item.Name, item.Description, item.Cost))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		balance,
		"",
		gameStyles.menuBox.Render(strings.Join(lines, "\n")),
	)
}

func (m Model) renderAchievements() string {
	header := gameStyles.title.Render("Achievements")

	var lines []string
	for _, a := range m.Achievements {
		if a.Unlocked {
			lines = append(lines, gameStyles.unlocked.Render(fmt.Sprintf("🏆 %-18s %s", a.Title, a.Description)))
		} else {
			lines = append(lines, gameStyles.locked.Render(fmt.Sprintf("🔒 %-18s %s", a.Title, a.Description)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		gameStyles.menuBox.Render(strings.Join(lines, "\n")),
	)
}

func (m Model) renderProfile() string {
	header := gameStyles.title.Render("Profile")

	info := []string{
		fmt.Sprintf("%-12s %s", "Name:", m.Settings.CatName),
		fmt.Sprintf("%-12s %d", "Level:", m.Stats.Level),
		fmt.Sprintf("%-12s %d", "Experience:", m.Stats.Experience),
		fmt.Sprintf("%-12s %d", "Coins:", m.Stats.Coins),
		fmt.Sprintf("%-12s %d", "Times fed:", m.Stats.FeedCount),
		fmt.Sprintf("%-12s %d", "Play count:", m.Stats.PlayCount),
	}

	onOff := map[bool]string{true: "On", false: "Off"}
	settings := []string{
		fmt.Sprintf("%s: %s", profileMenu[0], onOff[m.Settings.SoundEnabled]),
		fmt.Sprintf("%s: %s", profileMenu[1], onOff[m.Settings.ReducedMotion]),
		profileMenu[2],
	}

	var menuItems []string
	for i, entry := range settings {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, entry))
	}

	sections := []string{
		header,
		"",
		gameStyles.stats.Render(strings.Join(info, "\n")),
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
	}

	if m.Renaming {
		prompt := fmt.Sprintf("New name: %s█  (enter to save, esc to cancel)", m.NameInput)
		sections = append(sections, "", gameStyles.status.Render(prompt))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderChat() string {
	header := gameStyles.title.Render("Chat with " + m.Settings.CatName)

	var lines []string
	for _, msg := range m.ChatMessages {
		var rendered string
		if msg.Role == chat.RoleUser {
			rendered = gameStyles.userMsg.Render(wordwrap.String("You: "+msg.Content, chatWidth))
		} else {
			rendered = gameStyles.catMsg.Render(wordwrap.String(m.Settings.CatName+": "+msg.Content, chatWidth))
		}
		lines = append(lines, rendered)
	}

	if m.ChatWaiting {
		lines = append(lines, gameStyles.locked.Render("..."))
	}

	input := gameStyles.status.Render("> " + m.ChatInput + "█")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(lines, "\n"),
		"",
		input,
	)
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)
	title := gameStyles.title.Render("🌌 " + m.Settings.CatName + " 🌌")

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDE047")).
		Bold(true).
		Padding(1, 2)

	var status string
	if m.Message != "" && game.TimeNow().Before(m.MessageExpires) {
		status = gameStyles.status.Render(m.Message)
	}

	sections := []string{
		title,
		"",
		animStyle.Render(frame),
	}

	if status != "" {
		sections = append(sections, "", status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

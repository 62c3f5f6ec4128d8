package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Klaviaadus/Cosmic-Feline/internal/chat"
	"github.com/Klaviaadus/Cosmic-Feline/internal/game"
	"github.com/Klaviaadus/Cosmic-Feline/internal/storage"
)

// Screen identifies which tab of the game is visible
type Screen int

const (
	ScreenHome Screen = iota
	ScreenShop
	ScreenAchievements
	ScreenProfile
	ScreenChat
)

var screenNames = []string{"Home", "Shop", "Trophies", "Profile", "Chat"}

// Model represents the game state owned by the UI shell. All mutation of
// Stats and Achievements goes through the game package transitions; the
// model only commits results and persists them.
type Model struct {
	Store *storage.Store
	Chat  *chat.Client

	Stats        game.Stats
	Settings     game.Settings
	Achievements []game.Achievement

	Screen         Screen
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation

	Renaming  bool
	NameInput string

	ChatMessages []chat.Message
	ChatInput    string
	ChatWaiting  bool
}

type animTickMsg struct {
	started time.Time
}

type chatReplyMsg struct {
	reply string
	err   error
}

var homeMenu = []string{"Feed (10⭐)", "Play", "Pet", "Quit"}

var profileMenu = []string{"Sound", "Reduced Motion", "Rename"}

// NewModel loads the saved game and builds the initial model
func NewModel(store *storage.Store, chatClient *chat.Client) Model {
	return Model{
		Store:        store,
		Chat:         chatClient,
		Stats:        store.LoadStats(),
		Settings:     store.LoadSettings(),
		Achievements: store.LoadAchievements(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case animTickMsg:
		if m.Animation.Type == AnimNone || msg.started != m.Animation.StartTime {
			return m, nil
		}
		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)

	case chatReplyMsg:
		m.ChatWaiting = false
		content := msg.reply
		if msg.err != nil {
			log.Printf("Chat relay error: %v", msg.err)
			content = chat.FallbackReply
		}
		m.ChatMessages = append(m.ChatMessages, chat.NewMessage(chat.RoleAssistant, content))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry modes capture the keyboard except for quit/escape
	if m.Renaming {
		return m.handleRenameKey(msg)
	}
	if m.Screen == ScreenChat {
		return m.handleChatKey(msg)
	}

	// While an animation is playing, ignore inputs except quit keys
	if m.Animation.Type != AnimNone {
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		default:
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit
	case "tab", "right":
		m.switchScreen((m.Screen + 1) % Screen(len(screenNames)))
		return m, nil
	case "shift+tab", "left":
		m.switchScreen((m.Screen + Screen(len(screenNames)) - 1) % Screen(len(screenNames)))
		return m, nil
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
		return m, nil
	case "down", "j":
		if m.Choice < m.menuSize()-1 {
			m.Choice++
		}
		return m, nil
	case "enter", " ":
		return m.handleSelect()
	}

	return m, nil
}

func (m *Model) switchScreen(next Screen) {
	m.Screen = next
	m.Choice = 0
	if next == ScreenChat && len(m.ChatMessages) == 0 {
		m.ChatMessages = append(m.ChatMessages, chat.NewMessage(chat.RoleAssistant, chat.Greeting(m.Settings.CatName)))
	}
}

func (m Model) menuSize() int {
	switch m.Screen {
	case ScreenHome:
		return len(homeMenu)
	case ScreenShop:
		return len(game.ShopCatalog())
	case ScreenProfile:
		return len(profileMenu)
	default:
		return 1
	}
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.Screen {
	case ScreenHome:
		switch m.Choice {
		case 0:
			return m.feed()
		case 1:
			return m.play()
		case 2:
			return m.pet()
		case 3:
			m.Quitting = true
			return m, tea.Quit
		}
	case ScreenShop:
		return m.buy(game.ShopCatalog()[m.Choice])
	case ScreenProfile:
		return m.handleProfileSelect()
	}
	return m, nil
}

func (m Model) feed() (tea.Model, tea.Cmd) {
	next, ok := game.Feed(m.Stats)
	if !ok {
		m.setMessage("⭐ Not enough stardust coins!")
		return m, nil
	}
	return m.commit(next, AnimFeed, "+20 Happiness, +15 Energy")
}

func (m Model) play() (tea.Model, tea.Cmd) {
	next, ok := game.Play(m.Stats)
	if !ok {
		m.setMessage("😴 Too tired to play...")
		return m, nil
	}
	return m.commit(next, AnimPlay, "+15 Happiness, +15 Coins")
}

func (m Model) pet() (tea.Model, tea.Cmd) {
	return m.commit(game.Pet(m.Stats), AnimPet, "+5 Happiness")
}

func (m Model) buy(item game.Item) (tea.Model, tea.Cmd) {
	next, label, ok := game.BuyShopItem(m.Stats, item)
	if !ok {
		m.setMessage("⭐ Not enough stardust coins!")
		return m, nil
	}
	return m.commit(next, AnimBuy, item.Name+": "+label)
}

// commit applies a successful transition: persist the new stats, re-derive
// achievement state, and queue the reward animation. Rejected transitions
// never reach here, so they cause no side effects at all.
func (m Model) commit(next game.Stats, anim AnimationType, reward string) (tea.Model, tea.Cmd) {
	leveledUp := next.Level > m.Stats.Level
	m.Stats = next
	m.Store.SaveStats(m.Stats)

	prev := m.Achievements
	m.Achievements = game.CheckAchievements(m.Stats, m.Achievements)
	if fresh := game.NewlyUnlocked(prev, m.Achievements); len(fresh) > 0 {
		m.Store.SaveAchievements(m.Achievements)
		reward = "🏆 " + fresh[0].Title + " unlocked!"
	} else if leveledUp {
		anim = AnimLevelUp
		reward = "Level Up! +50 Coins"
	}

	m.setMessage(m.cue() + reward)

	if m.Settings.ReducedMotion {
		return m, nil
	}
	m.Animation = Animation{Type: anim, StartTime: game.TimeNow()}
	return m, animTick(m.Animation.StartTime)
}

// cue stands in for the audio layer: a note marker on reward popups when
// sound is enabled.
func (m Model) cue() string {
	if m.Settings.SoundEnabled {
		return "♪ "
	}
	return ""
}

func (m *Model) setMessage(text string) {
	m.Message = text
	m.MessageExpires = game.TimeNow().Add(3 * time.Second)
}

func (m Model) handleProfileSelect() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case 0:
		m.Settings.SoundEnabled = !m.Settings.SoundEnabled
		m.Store.SaveSettings(m.Settings)
	case 1:
		m.Settings.ReducedMotion = !m.Settings.ReducedMotion
		m.Store.SaveSettings(m.Settings)
	case 2:
		m.Renaming = true
		m.NameInput = m.Settings.CatName
	}
	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.Renaming = false
		return m, nil
	case "enter":
		m.Settings.CatName = game.SanitizeCatName(m.NameInput)
		m.Store.SaveSettings(m.Settings)
		m.Renaming = false
		m.setMessage("Renamed to " + m.Settings.CatName)
		return m, nil
	case "backspace":
		if len(m.NameInput) > 0 {
			runes := []rune(m.NameInput)
			m.NameInput = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.NameInput += string(msg.Runes)
		case tea.KeySpace:
			m.NameInput += " "
		}
		return m, nil
	}
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc", "tab":
		m.Screen = ScreenHome
		m.Choice = 0
		return m, nil
	case "enter":
		return m.sendChat()
	case "backspace":
		if len(m.ChatInput) > 0 {
			runes := []rune(m.ChatInput)
			m.ChatInput = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.ChatInput += string(msg.Runes)
		case tea.KeySpace:
			m.ChatInput += " "
		}
		return m, nil
	}
}

func (m Model) sendChat() (tea.Model, tea.Cmd) {
	if m.ChatInput == "" || m.ChatWaiting {
		return m, nil
	}
	text := m.ChatInput
	m.ChatInput = ""
	m.ChatWaiting = true
	m.ChatMessages = append(m.ChatMessages, chat.NewMessage(chat.RoleUser, text))

	client := m.Chat
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		reply, err := client.Send(ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

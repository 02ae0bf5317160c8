package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/profile"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/chart"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/help"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/panel"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/theme"
	"tableflip.dev/mindmate/pkg/store"
	"tableflip.dev/mindmate/pkg/trend"
)

type screen int

const (
	screenToday screen = iota
	screenJournal
	screenSuggestions
	screenChat
)

var screenNames = []string{"Today", "Journal", "Suggestions", "Chat"}

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeOnboarding
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionNote
	actionChat
)

const (
	chartHeight = 8
	leftWidth   = 30
)

const (
	welcomeTitle = "Welcome to MindMate!"
	welcomeBody  = "What should we call you? Your name will only be stored on this device."
	checkIn      = "Ready to check in with yourself?"
	feelingLine  = "Based on your last entry, you were feeling..."
	chatIntro    = "Chat anonymously about your feelings. This is a safe, non-clinical space for support."
	noEntries    = "No journal entries yet."
	thinking     = "Thinking…"
)

// mood item for the picker
type moodItem struct{ g mood.Glyph }

func (it moodItem) Title() string       { return it.g.Symbol + " " + string(it.g.Mood) }
func (it moodItem) Description() string { return "" }
func (it moodItem) FilterValue() string { return string(it.g.Mood) }

// entry item for the journal list
type entryItem struct{ e entry.MoodEntry }

func (it entryItem) Title() string {
	return fmt.Sprintf("%s %s · %s · %s", it.e.Mood.Glyph().Symbol, it.e.Mood, entry.FormatLongDate(it.e.CreatedAt), it.e.DisplayTime)
}
func (it entryItem) Description() string { return it.e.JournalOrPlaceholder() }
func (it entryItem) FilterValue() string { return it.e.Journal }

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	theme  theme.Theme
	screen screen
	mode   mode
	action action

	moodList list.Model
	entList  list.Model
	input    textinput.Model
	chatView viewport.Model
	cards    panel.Model
	bottom   bottombar.Model
	help     *help.Model

	now         func() time.Time
	userName    string
	askedName   bool
	pendingMood mood.Mood
	entries     []entry.MoodEntry
	week        []trend.Bucket
	suggestions *companion.SuggestionResult
	turns       []companion.Turn
	suggesting  bool
	chatting    bool

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	return NewWithContext(context.Background(), svc)
}

// NewWithContext creates a UI model whose service calls use ctx.
func NewWithContext(ctx context.Context, svc *app.Service) Model {
	th := theme.Default()

	moodDel := list.NewDefaultDelegate()
	moodDel.ShowDescription = false
	moodDel.SetSpacing(0)
	glyphs := mood.DefaultGlyphs()
	moods := make([]list.Item, 0, len(glyphs))
	for _, g := range glyphs {
		moods = append(moods, moodItem{g: g})
	}
	ml := list.New(moods, moodDel, leftWidth, len(moods)+3)
	ml.Title = "How are you feeling today?"
	ml.SetShowHelp(false)
	ml.SetShowStatusBar(false)
	ml.SetFilteringEnabled(false)

	el := list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20)
	el.Title = "Journal"
	el.SetShowHelp(false)
	el.SetShowStatusBar(false)
	el.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Prompt = "> "
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	now := time.Now
	if svc != nil {
		now = svc.Now
	}

	m := Model{
		svc:      svc,
		ctx:      ctx,
		theme:    th,
		screen:   screenToday,
		mode:     modeNormal,
		moodList: ml,
		entList:  el,
		input:    ti,
		chatView: viewport.New(viewport.WithWidth(80), viewport.WithHeight(10)),
		cards:    panel.New(th.Panel),
		bottom:   bottombar.New(th.Footer),
		help:     help.New(80, 20, "notty"),
		now:      now,
	}
	m.week = trend.Week(nil, now())
	m.updateBottomContext()
	return m
}

// Init loads the journal and profile and starts watching storage.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.watch())
}

// messages
type errMsg struct{ err error }
type loadedMsg struct {
	entries []entry.MoodEntry
	err     error
	name    string
	named   bool
}
type loggedMsg struct {
	e   entry.MoodEntry
	err error
}
type nameSavedMsg struct {
	name string
	err  error
}
type suggestionsMsg struct {
	res companion.SuggestionResult
	err error
}
type chatMsg struct {
	turn companion.Turn
	err  error
}
type watchStartedMsg struct{ ch <-chan store.Event }
type storeChangedMsg struct {
	ev store.Event
	ch <-chan store.Event
}

func (m *Model) load() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := svc.Reload(ctx)
		name, named := svc.UserName(ctx)
		return loadedMsg{entries: entries, err: err, name: name, named: named}
	}
}

// reload is load after an external write; the profile is re-read too.
func (m *Model) reload() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := svc.Reload(ctx)
		name, named := svc.ReloadUserName(ctx)
		return loadedMsg{entries: entries, err: err, name: name, named: named}
	}
}

func (m *Model) watch() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := svc.Watch(ctx)
		if err != nil {
			if errors.Is(err, app.ErrNoPersistence) {
				return nil
			}
			return errMsg{fmt.Errorf("watch: %w", err)}
		}
		return watchStartedMsg{ch: ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{ev: ev, ch: ch}
	}
}

func affectsDashboard(ev store.Event) bool {
	if ev.Type == store.EventInvalidated {
		return true
	}
	return ev.Key == journal.Key || ev.Key == profile.Key
}

func (m *Model) logMood(md mood.Mood, note string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return errMsg{app.ErrNoPersistence}
		}
		e, err := svc.Log(ctx, md, note)
		return loggedMsg{e: e, err: err}
	}
}

func (m *Model) saveName(name string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	name = strings.TrimSpace(name)
	return func() tea.Msg {
		if svc == nil {
			return nameSavedMsg{name: name}
		}
		return nameSavedMsg{name: name, err: svc.SetUserName(ctx, name)}
	}
}

func (m *Model) requestSuggestions() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return suggestionsMsg{res: companion.SuggestionResult{Message: companion.NoEntriesMessage}}
		}
		res, err := svc.Suggest(ctx)
		return suggestionsMsg{res: res, err: err}
	}
}

func (m *Model) sendChat(message string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return chatMsg{err: app.ErrNoPersistence}
		}
		turn, err := svc.Chat(ctx, message)
		return chatMsg{turn: turn, err: err}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.bottom.SetStatus("ERR: " + msg.err.Error())
	case loadedMsg:
		m.setEntries(msg.entries)
		if msg.err != nil {
			m.bottom.SetStatus("Could not read the journal; showing nothing.")
		}
		m.userName = msg.name
		if !msg.named && !m.askedName && m.mode == modeNormal {
			m.askedName = true
			m.enterOnboarding(&cmds)
		}
	case watchStartedMsg:
		cmds = append(cmds, waitForChange(msg.ch))
	case storeChangedMsg:
		if affectsDashboard(msg.ev) {
			cmds = append(cmds, m.reload())
		}
		cmds = append(cmds, waitForChange(msg.ch))
	case loggedMsg:
		switch {
		case msg.err == nil:
			m.bottom.SetStatus(fmt.Sprintf("Logged %s at %s", msg.e.Mood, msg.e.DisplayTime))
		case errors.Is(msg.err, journal.ErrPersist):
			m.bottom.SetStatus("Saved for this session only; the journal could not be written.")
		default:
			m.bottom.SetStatus("ERR: " + msg.err.Error())
		}
		if m.svc != nil {
			m.setEntries(m.svc.Journal.Entries())
		}
	case nameSavedMsg:
		if errors.Is(msg.err, profile.ErrNameTooShort) {
			m.bottom.SetStatus(profile.NameTooShortMessage)
			break
		}
		if msg.err != nil {
			m.bottom.SetStatus("Name kept for this session only: " + msg.err.Error())
		} else {
			m.bottom.SetStatus("Nice to meet you, " + msg.name + "!")
		}
		m.userName = msg.name
		m.leaveInput()
	case suggestionsMsg:
		m.suggesting = false
		m.bottom.SetBusy("")
		if msg.err != nil {
			m.bottom.SetStatus(msg.err.Error())
			break
		}
		res := msg.res
		m.suggestions = &res
		m.updateCards()
	case chatMsg:
		m.chatting = false
		m.bottom.SetBusy("")
		if msg.err != nil {
			m.bottom.SetStatus(msg.err.Error())
		}
		if m.svc != nil {
			m.turns = m.svc.Conversation.Turns()
		}
		m.updateChatView()
	case tea.KeyPressMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			switch key {
			case "?", "esc", "q":
				m.setMode(modeNormal)
			default:
				cmds = append(cmds, m.help.Update(msg))
			}
			skipRouting = true
		case modeOnboarding:
			skipRouting = true
			m.handleOnboardingKey(msg, &cmds)
		case modeInsert:
			skipRouting = true
			m.handleInsertKey(msg, &cmds)
		case modeNormal:
			skipRouting = m.handleNormalKey(msg, &cmds)
		}
	}

	// route the rest to the component on screen
	if m.mode == modeNormal && !skipRouting {
		var cmd tea.Cmd
		switch m.screen {
		case screenToday:
			m.moodList, cmd = m.moodList.Update(msg)
		case screenJournal:
			m.entList, cmd = m.entList.Update(msg)
		case screenChat:
			m.chatView, cmd = m.chatView.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch key := msg.String(); key {
	case "q":
		*cmds = append(*cmds, tea.Quit)
	case "?":
		m.setMode(modeHelp)
	case "tab":
		m.setScreen(screen((int(m.screen) + 1) % len(screenNames)))
	case "shift+tab":
		m.setScreen(screen((int(m.screen) + len(screenNames) - 1) % len(screenNames)))
	case "1", "2", "3", "4":
		m.setScreen(screen(int(key[0] - '1')))
	default:
		switch m.screen {
		case screenToday:
			return m.handleTodayKey(key, cmds)
		case screenSuggestions:
			if key == "r" || key == "enter" {
				m.startSuggestions(cmds)
				return true
			}
		case screenChat:
			switch key {
			case "i", "enter":
				m.enterChatInput(cmds)
				return true
			case "ctrl+l":
				if m.svc != nil && !m.chatting {
					m.svc.Conversation.Reset()
					m.turns = nil
					m.updateChatView()
					m.bottom.SetStatus("Started a new conversation")
				}
				return true
			}
		}
		return false
	}
	return true
}

func (m *Model) handleTodayKey(key string, cmds *[]tea.Cmd) bool {
	switch key {
	case "enter":
		if it, ok := m.moodList.SelectedItem().(moodItem); ok {
			m.pickMood(it.g.Mood, cmds)
		}
		return true
	case "n":
		m.enterOnboarding(cmds)
		return true
	}
	for i, g := range mood.DefaultGlyphs() {
		if g.Key == key {
			m.moodList.Select(i)
			m.pickMood(g.Mood, cmds)
			return true
		}
	}
	return false
}

func (m *Model) handleOnboardingKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		if err := profile.ValidateName(name); err != nil {
			m.bottom.SetStatus(profile.Message(err))
			return
		}
		*cmds = append(*cmds, m.saveName(name))
	case "esc":
		m.leaveInput()
		if m.userName == "" {
			m.bottom.SetStatus("You can set your name later with n")
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.action {
		case actionNote:
			*cmds = append(*cmds, m.logMood(m.pendingMood, value))
			m.pendingMood = ""
			m.leaveInput()
		case actionChat:
			if m.chatting {
				m.bottom.SetStatus("Still waiting for a reply…")
				return
			}
			if value == "" {
				m.bottom.SetStatus(companion.EmptyMessageText)
				return
			}
			m.chatting = true
			m.bottom.SetBusy(thinking)
			m.turns = append(m.turns, companion.Turn{Role: companion.RoleUser, Content: value})
			m.updateChatView()
			m.input.Reset()
			*cmds = append(*cmds, m.sendChat(value))
		}
	case "esc":
		if m.action == actionNote {
			m.pendingMood = ""
			m.bottom.SetStatus("Cancelled")
		}
		m.leaveInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) focusInput(placeholder string, cmds *[]tea.Cmd) {
	m.input.Placeholder = placeholder
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) pickMood(md mood.Mood, cmds *[]tea.Cmd) {
	m.pendingMood = md
	m.action = actionNote
	m.input.Reset()
	m.setMode(modeInsert)
	m.bottom.SetStatus("Feeling " + string(md))
	m.focusInput("Tell us more about your day... (optional)", cmds)
}

func (m *Model) enterOnboarding(cmds *[]tea.Cmd) {
	m.action = actionNone
	m.input.Reset()
	m.input.SetValue(m.userName)
	m.input.CursorEnd()
	m.setMode(modeOnboarding)
	m.focusInput("Your name", cmds)
}

func (m *Model) enterChatInput(cmds *[]tea.Cmd) {
	m.action = actionChat
	m.input.Reset()
	m.setMode(modeInsert)
	m.focusInput("Type your message...", cmds)
}

func (m *Model) startSuggestions(cmds *[]tea.Cmd) {
	if m.suggesting {
		m.bottom.SetStatus(companion.ErrBusy.Error())
		return
	}
	m.suggesting = true
	m.bottom.SetBusy(thinking)
	*cmds = append(*cmds, m.requestSuggestions())
}

func (m *Model) leaveInput() {
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
	m.setMode(modeNormal)
}

func (m *Model) setMode(md mode) {
	m.mode = md
	m.updateBottomContext()
}

func (m *Model) setScreen(s screen) {
	m.screen = s
	m.updateBottomContext()
}

func (m *Model) setEntries(entries []entry.MoodEntry) {
	m.entries = entries
	m.week = trend.Week(entries, m.now())
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{e: e})
	}
	m.entList.SetItems(items)
}

func (m *Model) updateBottomContext() {
	switch m.mode {
	case modeHelp:
		m.bottom.SetMode(bottombar.ModeHelp)
		m.bottom.SetHelp("j/k scroll · esc close")
		return
	case modeOnboarding:
		m.bottom.SetMode(bottombar.ModeOnboarding)
		m.bottom.SetHelp("enter save · esc skip")
		return
	case modeInsert:
		m.bottom.SetMode(bottombar.ModeInsert)
		if m.action == actionChat {
			m.bottom.SetHelp("enter send · esc leave input")
		} else {
			m.bottom.SetHelp("enter save · esc cancel")
		}
		return
	}
	m.bottom.SetMode(bottombar.ModeNormal)
	switch m.screen {
	case screenToday:
		m.bottom.SetHelp("j/k move · enter pick · h/c/o/s/a quick pick · ? help")
	case screenJournal:
		m.bottom.SetHelp("j/k scroll · tab next · ? help")
	case screenSuggestions:
		m.bottom.SetHelp("r get suggestions · tab next · ? help")
	case screenChat:
		m.bottom.SetHelp("i type · ctrl+l new chat · ? help")
	}
}

func (m *Model) updateCards() {
	m.cards.Reset()
	if m.suggestions == nil {
		return
	}
	if m.suggestions.Message != "" {
		m.cards.SetContent("", []string{m.suggestions.Message})
		return
	}
	lines := make([]string, 0, len(m.suggestions.Suggestions)*3)
	for i, s := range m.suggestions.Suggestions {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.theme.Panel.Title.Render(companion.IconSymbol(i)+" "+s.Title), s.Description)
	}
	m.cards.SetContent("Personalized Self-Care", lines)
}

func (m *Model) updateChatView() {
	width := max(m.chatView.Width()-2, 20)
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		name, style := "You", m.theme.Chat.User
		if t.Role == companion.RoleBot {
			name, style = "MindMate", m.theme.Chat.Bot
		}
		b.WriteString(m.theme.Chat.Name.Inherit(style).Render(name))
		b.WriteString("\n")
		b.WriteString(style.Render(wordwrap.String(t.Content, width)))
	}
	if m.chatting {
		b.WriteString("\n\n" + m.theme.Faint.Render(thinking))
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

// View renders the active screen between the tab bar and the footer.
func (m Model) View() string {
	var body string
	switch {
	case m.mode == modeHelp:
		body = m.help.View()
	case m.mode == modeOnboarding:
		body = m.onboardingView()
	default:
		switch m.screen {
		case screenToday:
			body = m.todayView()
		case screenJournal:
			body = m.journalView()
		case screenSuggestions:
			body = m.suggestionsView()
		case screenChat:
			body = m.chatBody()
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tabs(), "", body, "", m.bottom.View())
}

func (m Model) tabs() string {
	parts := make([]string, len(screenNames))
	for i, name := range screenNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if screen(i) == m.screen {
			parts[i] = m.theme.ActiveTab.Render(label)
		} else {
			parts[i] = m.theme.Tab.Render(label)
		}
	}
	return strings.Join(parts, "")
}

func (m Model) greeting() string {
	if m.userName == "" {
		return m.theme.Greeting.Render("Hello!")
	}
	return m.theme.Greeting.Render(profile.Greeting(m.userName, m.now()))
}

func (m Model) todayView() string {
	left := []string{m.greeting(), m.theme.Faint.Render(checkIn), "", m.moodList.View()}
	if m.mode == modeInsert && m.action == actionNote {
		left = append(left, "", "Feeling "+m.theme.Mood(m.pendingMood).Label.Render(string(m.pendingMood)), m.input.View())
	}

	latest := m.theme.Faint.Render(noEntries)
	if e, ok := entry.Latest(m.entries); ok {
		p := panel.New(m.theme.Panel)
		p.SetWidth(max(m.rightWidth(), 24))
		p.SetContent("Latest: "+e.Mood.Glyph().Symbol+" "+string(e.Mood)+" · "+e.DisplayTime, []string{e.JournalOrPlaceholder()})
		latest, _ = p.View()
	}
	right := []string{
		m.theme.Panel.Title.Render("Your week"),
		chart.Render(m.week, m.theme, chartHeight),
		"",
		chart.Legend(m.week, m.theme),
		"",
		latest,
	}

	leftCol := lipgloss.NewStyle().Width(leftWidth).Render(lipgloss.JoinVertical(lipgloss.Left, left...))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", lipgloss.JoinVertical(lipgloss.Left, right...))
}

func (m Model) journalView() string {
	if len(m.entries) == 0 {
		return m.theme.Faint.Render(noEntries)
	}
	return m.entList.View()
}

func (m Model) suggestionsView() string {
	lastMood := app.UnknownMood
	if e, ok := entry.Latest(m.entries); ok {
		lastMood = string(e.Mood)
	}
	lines := []string{
		m.theme.Faint.Render(feelingLine),
		m.theme.Greeting.Render(lastMood),
		"",
	}
	switch {
	case m.suggesting:
		lines = append(lines, m.theme.Footer.Busy.Render("Generating..."))
	case !m.cards.Empty():
		view, _ := m.cards.View()
		lines = append(lines, view)
	default:
		lines = append(lines, "No suggestions yet", m.theme.Faint.Render("Press r to generate some ideas."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) chatBody() string {
	lines := []string{m.theme.Faint.Render(chatIntro), ""}
	if len(m.turns) == 0 && !m.chatting {
		lines = append(lines, m.theme.Faint.Render("Say hello to start the conversation."))
	} else {
		lines = append(lines, m.chatView.View())
	}
	if m.mode == modeInsert && m.action == actionChat {
		lines = append(lines, "", m.input.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) onboardingView() string {
	p := panel.New(m.theme.Panel)
	p.SetWidth(min(max(m.termWidth-4, 40), 64))
	p.SetContent(welcomeTitle, []string{welcomeBody, "", "Name " + m.input.View()})
	view, _ := p.View()
	return view
}

func (m Model) rightWidth() int {
	if m.termWidth == 0 {
		return 48
	}
	return m.termWidth - leftWidth - 2
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Leave room for the tab bar, spacers and footer.
	height := max(m.termHeight-4, 5)
	m.moodList.SetSize(leftWidth, len(m.moodList.Items())+3)
	m.entList.SetSize(m.termWidth, height)
	m.chatView.SetWidth(m.termWidth)
	m.chatView.SetHeight(max(height-4, 3))
	m.help.SetSize(m.termWidth, height)
	m.cards.SetWidth(min(m.termWidth, 80))
	m.updateChatView()
}

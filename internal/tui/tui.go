package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Model is the Bubble Tea model for interactive play. It runs each round
// in a goroutine and bridges the player's keypresses into the round's
// strategy callbacks via HumanStrategy.
type Model struct {
	rules  game.Rules
	shoe   *deck.Shoe
	bet    int64
	logger *log.Logger
	human  *HumanStrategy

	keys keyMap
	help help.Model

	prompt *Prompt
	result *roundDoneMsg
	armed  bool

	rounds   int
	netCents int64

	width    int
	quitting bool
}

type promptMsg Prompt

type roundDoneMsg struct {
	result  game.RoundResult
	player  []deck.Card
	dealer  []deck.Card
	doubled bool
}

type keyMap struct {
	Hit       key.Binding
	Stand     key.Binding
	Double    key.Binding
	Surrender key.Binding
	Next      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Double, k.Surrender, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hit:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Double:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "double")),
		Surrender: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "surrender")),
		Next:      key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next hand")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// New creates the interactive table model. The shoe persists across
// rounds, exactly as in a batch simulation.
func New(rules game.Rules, shoe *deck.Shoe, bet int64, logger *log.Logger) *Model {
	return &Model{
		rules:  rules,
		shoe:   shoe,
		bet:    bet,
		logger: logger,
		human:  NewHumanStrategy(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.armPrompt(), m.startRound())
}

// startRound plays one round on its own goroutine; the human strategy
// blocks it at each decision until a keypress arrives.
func (m *Model) startRound() tea.Cmd {
	m.result = nil
	m.prompt = nil
	m.human.Reset()
	return func() tea.Msg {
		round := game.NewRound(m.rules, m.shoe, m.human, m.bet, m.logger)
		result := round.Play()
		return roundDoneMsg{
			result:  result,
			player:  round.Player().Snapshot(),
			dealer:  round.Dealer().Snapshot(),
			doubled: round.Player().Doubled,
		}
	}
}

// armPrompt listens for the next decision point. Only one listener is
// kept outstanding; it is re-armed each time a prompt arrives.
func (m *Model) armPrompt() tea.Cmd {
	if m.armed {
		return nil
	}
	m.armed = true
	return func() tea.Msg {
		return promptMsg(<-m.human.Prompts())
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case promptMsg:
		m.armed = false
		p := Prompt(msg)
		m.prompt = &p
		return m, m.armPrompt()

	case roundDoneMsg:
		m.prompt = nil
		m.result = &msg
		m.rounds++
		stake := m.bet
		if msg.doubled {
			stake *= 2
		}
		m.netCents += msg.result.PayoutCents - stake
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.prompt != nil {
		switch {
		case key.Matches(msg, m.keys.Hit):
			m.answer(game.Hit)
		case key.Matches(msg, m.keys.Stand):
			m.answer(game.Stand)
		case key.Matches(msg, m.keys.Double):
			if m.prompt.CanDouble {
				m.answer(game.Double)
			}
		case key.Matches(msg, m.keys.Surrender):
			if m.prompt.CanSurrender {
				m.answer(game.Surrender)
			}
		}
		return m, nil
	}

	if m.result != nil && key.Matches(msg, m.keys.Next) {
		return m, m.startRound()
	}
	return m, nil
}

func (m *Model) answer(d game.Decision) {
	m.prompt = nil
	m.human.Answer(d)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("blackjack"))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("dealer "))
	sb.WriteString(m.dealerLine())
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("player "))
	sb.WriteString(m.playerLine())
	sb.WriteString("\n\n")

	if m.result != nil {
		sb.WriteString(m.resultLine())
		sb.WriteString("\n\n")
	}

	sb.WriteString(InfoStyle.Render(fmt.Sprintf("hands %d  net $%.2f  shoe %d",
		m.rounds, float64(m.netCents)/100, m.shoe.Remaining())))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) dealerLine() string {
	if m.result != nil {
		return renderCards(m.result.dealer) + total(m.result.dealer)
	}
	if m.prompt != nil {
		// Hole card stays hidden until the dealer's turn
		return renderCard(m.prompt.Upcard) + " " + HoleCardStyle.Render("[?]")
	}
	return InfoStyle.Render("dealing...")
}

func (m *Model) playerLine() string {
	if m.result != nil {
		return renderCards(m.result.player) + total(m.result.player)
	}
	if m.prompt != nil {
		soft := ""
		if m.prompt.PlayerSoft {
			soft = "soft "
		}
		return renderCards(m.prompt.PlayerCards) +
			InfoStyle.Render(fmt.Sprintf(" (%s%d)", soft, m.prompt.PlayerTotal))
	}
	return InfoStyle.Render("dealing...")
}

func (m *Model) resultLine() string {
	res := m.result.result
	stake := m.bet
	if m.result.doubled {
		stake *= 2
	}
	net := res.PayoutCents - stake
	line := fmt.Sprintf("%s  %+.2f", res.Outcome, float64(net)/100)
	switch {
	case net > 0:
		return WinStyle.Render(line)
	case net < 0:
		return LoseStyle.Render(line)
	default:
		return PushStyle.Render(line)
	}
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func total(cards []deck.Card) string {
	h := game.Hand{Cards: cards}
	soft := ""
	if h.IsSoft() {
		soft = "soft "
	}
	return InfoStyle.Render(fmt.Sprintf(" (%s%d)", soft, h.Total()))
}

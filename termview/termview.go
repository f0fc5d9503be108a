// Package termview prints a deal as a row of card boxes for terminals.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SvenDH/go-card-table/table"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(5).
			Align(lipgloss.Center)
	redStyle   = cardStyle.Foreground(lipgloss.Color("#cc0000"))
	blackStyle = cardStyle.Foreground(lipgloss.Color("#000000"))
	backStyle  = cardStyle.Foreground(lipgloss.Color("#3355aa"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// suit symbols in table.SuitNames order
var suits = [table.FrontRows]string{"♥", "♦", "♣", "♠"}

// Label is the short rank and suit of a card, like "10♣".
func Label(c *table.Card) string {
	return table.ValueNames[c.Value()] + suits[c.Suit()]
}

// Box draws one card. Face-down cards hide their rank unless reveal is set.
func Box(c *table.Card, reveal bool) string {
	if !c.FaceUp() && !reveal {
		return backStyle.Render("##")
	}
	style := blackStyle
	if c.Suit() < 2 {
		style = redStyle
	}
	label := Label(c)
	if c.State == table.StateSelected {
		label = "*" + label
	}
	return style.Render(label)
}

// Hand draws the cards of a hand side by side.
func Hand(h *table.DealtHand, reveal bool) string {
	if h == nil || len(h.Cards) == 0 {
		return "(empty)"
	}
	boxes := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		boxes[i] = Box(c, reveal)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Render draws both hands of a deal and the deck size. The opponent's cards
// are shown face down unless reveal is set.
func Render(res *table.DealResult, remaining int, reveal bool) string {
	if res == nil {
		return "no cards dealt\n"
	}
	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("opponent"),
		Hand(res.OpponentHand, reveal),
		titleStyle.Render("player"),
		Hand(res.PlayerHand, reveal),
	))
	fmt.Fprintf(&b, "\n%d cards left in deck\n", remaining)
	return b.String()
}

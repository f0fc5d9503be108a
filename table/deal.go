package table

import (
	"fmt"
)

// HandSize is the number of seats in a hand.
const HandSize = 5

const (
	playerCardName   = "in-hand"
	opponentCardName = "opponent-card"
)

// SeatLayout is where the Nth dealt card of a hand is placed.
type SeatLayout struct {
	Hand  Hand
	Seats [HandSize]Pose
}

func (l SeatLayout) Validate() error {
	if l.Hand != PlayerHand && l.Hand != OpponentHand {
		return fmt.Errorf("%w: hand %s", ErrInvalidLayout, l.Hand)
	}
	return nil
}

// DealtHand is the cards assigned to a layout, in draw order.
type DealtHand struct {
	Layout SeatLayout
	Cards  []*Card
}

// FrontIndices lists the hand's cards by front index.
func (h *DealtHand) FrontIndices() []int {
	out := make([]int, len(h.Cards))
	for i, c := range h.Cards {
		out[i] = c.FrontIndex()
	}
	return out
}

// DealResult is the outcome of a session's deal.
type DealResult struct {
	PlayerHand   *DealtHand
	OpponentHand *DealtHand
}

// DealPlanner moves cards from a deck onto seat layouts.
type DealPlanner struct {
	PlayerScale   float64
	OpponentScale float64
}

func NewDealPlanner() *DealPlanner {
	return &DealPlanner{PlayerScale: 1, OpponentScale: 0.65}
}

func (p *DealPlanner) scale(h Hand) float64 {
	if h == OpponentHand {
		return p.OpponentScale
	}
	return p.PlayerScale
}

// Deal draws one card per seat. When the deck runs out the cards dealt so far
// are kept and ErrEmptyDeck is returned.
func (p *DealPlanner) Deal(deck *Deck, layout SeatLayout, faceUp bool) (*DealtHand, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	hand := &DealtHand{Layout: layout, Cards: make([]*Card, 0, HandSize)}
	for i, pose := range layout.Seats {
		card, err := deck.Draw()
		if err != nil {
			return hand, fmt.Errorf("deal %s seat %d: %w", layout.Hand, i, err)
		}
		card.Pose = pose
		card.Scale = p.scale(layout.Hand)
		card.Seat = Seat{Hand: layout.Hand, Slot: i}
		card.State = StateInHand
		card.SetFaceUp(faceUp)
		if layout.Hand == PlayerHand {
			card.Name = playerCardName
		} else {
			card.Name = opponentCardName
		}
		hand.Cards = append(hand.Cards, card)
	}
	return hand, nil
}

// DealBoth deals the player's hand face up, then the opponent's face down.
func (p *DealPlanner) DealBoth(deck *Deck, player, opponent SeatLayout) (*DealResult, error) {
	if player.Hand != PlayerHand || opponent.Hand != OpponentHand {
		return nil, fmt.Errorf("%w: expected player and opponent layouts", ErrInvalidLayout)
	}
	res := &DealResult{}
	var err error
	if res.PlayerHand, err = p.Deal(deck, player, true); err != nil {
		return res, err
	}
	if res.OpponentHand, err = p.Deal(deck, opponent, false); err != nil {
		return res, err
	}
	return res, nil
}

package table

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Options is everything a session needs besides its assets.
type Options struct {
	CardScale     float64
	PlayerScale   float64
	OpponentScale float64
	Player        SeatLayout
	Opponent      SeatLayout
	Camera        Camera
	Selection     SelectionOptions
}

// Session owns one game's deck, hands and selection state.
type Session struct {
	ID        ulid.ULID
	Assets    *AssetBundle
	Deck      *Deck
	Planner   *DealPlanner
	Selection *SelectionController
	Camera    Camera

	opts   Options
	result *DealResult
	err    error
	log    logrus.FieldLogger
}

// NewSession wires a session. rng drives the shuffle; pass a seeded source
// for reproducible deals.
func NewSession(opts Options, assets *AssetBundle, rng *rand.Rand, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := ulid.Make()
	log = log.WithField("session", id.String())
	return &Session{
		ID:        id,
		Assets:    assets,
		Deck:      NewDeck(NewCardFactory(assets, opts.CardScale), rng),
		Planner:   &DealPlanner{PlayerScale: opts.PlayerScale, OpponentScale: opts.OpponentScale},
		Selection: NewSelectionController(opts.Selection, log),
		Camera:    opts.Camera,
		opts:      opts,
		log:       log,
	}
}

// Start waits for the assets and deals both hands.
func (s *Session) Start(ctx context.Context) (*DealResult, error) {
	if err := s.Assets.Wait(ctx); err != nil {
		s.fail(err)
		return nil, err
	}
	return s.TryDeal()
}

// TryDeal deals if the assets are ready. It returns ErrAssetsNotReady while
// they are still loading, and the stored result once dealt.
func (s *Session) TryDeal() (*DealResult, error) {
	if s.result != nil || s.err != nil {
		return s.result, s.err
	}
	if err := s.Deck.Populate(); err != nil {
		if errors.Is(err, ErrAssetsNotReady) {
			return nil, err
		}
		s.fail(err)
		return nil, err
	}
	s.Deck.Shuffle()
	res, err := s.Planner.DealBoth(s.Deck, s.opts.Player, s.opts.Opponent)
	if err != nil {
		s.fail(fmt.Errorf("deal: %w", err))
		return nil, s.err
	}
	s.result = res
	s.log.WithFields(logrus.Fields{
		"player":    res.PlayerHand.FrontIndices(),
		"opponent":  res.OpponentHand.FrontIndices(),
		"remaining": s.Deck.Len(),
	}).Info("cards dealt")
	return res, nil
}

func (s *Session) fail(err error) {
	s.err = err
	s.log.WithError(err).Error("session failed")
}

// Result is the deal, or nil before dealing.
func (s *Session) Result() *DealResult { return s.result }

// Err is the fatal error that ended the session, if any.
func (s *Session) Err() error { return s.err }

// Remaining is the number of cards left in the deck.
func (s *Session) Remaining() int { return s.Deck.Len() }

// Click forwards a pointer press to the selection controller.
func (s *Session) Click(ndc mgl64.Vec2) (*Card, bool) {
	if s.result == nil {
		return nil, false
	}
	return s.Selection.Click(ndc, &s.Camera, s.result.PlayerHand.Cards)
}

// Update advances animations by dt seconds.
func (s *Session) Update(dt float64) {
	s.Selection.Update(dt)
}

// Cards returns every dealt card, opponent's first.
func (s *Session) Cards() []*Card {
	if s.result == nil {
		return nil
	}
	out := make([]*Card, 0, 2*HandSize)
	out = append(out, s.result.OpponentHand.Cards...)
	return append(out, s.result.PlayerHand.Cards...)
}

package table

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// SelectionOptions configure the in-hand to selected transition.
type SelectionOptions struct {
	// Lift is added to the seat position to get the selected position.
	Lift     mgl64.Vec3
	Delay    float64
	Duration float64
}

func DefaultSelectionOptions() SelectionOptions {
	return SelectionOptions{
		Lift:     mgl64.Vec3{0, 0.3, 0.3},
		Delay:    0.1,
		Duration: 0.4,
	}
}

// SelectionController resolves clicks on the player's hand and animates the
// chosen card. Selection is one-way: a selected card ignores further clicks.
type SelectionController struct {
	Options SelectionOptions

	log        logrus.FieldLogger
	animations []*Animation
}

func NewSelectionController(opts SelectionOptions, log logrus.FieldLogger) *SelectionController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SelectionController{Options: opts, log: log}
}

// Pick returns the card nearest along the ray, testing both faces of each
// card whether or not they are visible.
func Pick(r Ray, cam *Camera, cards []*Card) *Card {
	var best *Card
	bestT := math.MaxFloat64
	for _, c := range cards {
		if c == nil {
			continue
		}
		for _, f := range [2]*Face{&c.Front, &c.Back} {
			t, ok := cam.billboard(r, c.Pose.Position, f.Width*c.Scale, f.Height*c.Scale, c.Pose.Roll())
			if ok && t < bestT {
				best, bestT = c, t
			}
		}
	}
	return best
}

// Click handles a pointer press at ndc. It returns the card that became
// selected, or false when the click hit nothing selectable.
func (s *SelectionController) Click(ndc mgl64.Vec2, cam *Camera, cards []*Card) (*Card, bool) {
	hit := Pick(cam.Ray(ndc), cam, cards)
	if hit == nil {
		return nil, false
	}
	if hit.Seat.Hand != PlayerHand || hit.State != StateInHand {
		s.log.WithFields(logrus.Fields{
			"card":  hit.FrontIndex(),
			"state": hit.State,
		}).Debug("click on card that can not be selected")
		return nil, false
	}

	hit.State = StateSelected
	to := hit.Pose
	to.Position = to.Position.Add(s.Options.Lift)
	to.Rotation[2] = 0
	s.animations = append(s.animations, newAnimation(hit, to,
		float32(s.Options.Delay), float32(s.Options.Duration), ease.OutQuad))

	s.log.WithFields(logrus.Fields{
		"card": hit.String(),
		"seat": hit.Seat.Slot,
	}).Info("card selected")
	return hit, true
}

// Update advances running animations and drops finished ones.
func (s *SelectionController) Update(dt float64) {
	running := s.animations[:0]
	for _, a := range s.animations {
		if !a.Update(float32(dt)) {
			running = append(running, a)
		}
	}
	for i := len(running); i < len(s.animations); i++ {
		s.animations[i] = nil
	}
	s.animations = running
}

// Animations returns the animations still in flight.
func (s *SelectionController) Animations() []*Animation {
	out := make([]*Animation, len(s.animations))
	copy(out, s.animations)
	return out
}

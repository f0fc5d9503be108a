package table

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation moves a card's position and roll to a target pose. All tweens
// share one timeline that starts after Delay seconds.
type Animation struct {
	Card     *Card
	Delay    float32
	Duration float32

	to      Pose
	elapsed float32
	pos     [3]*gween.Tween
	roll    *gween.Tween
	done    bool
}

func newAnimation(card *Card, to Pose, delay, duration float32, easing ease.TweenFunc) *Animation {
	from := card.Pose
	a := &Animation{Card: card, Delay: delay, Duration: duration, to: to}
	for i := range a.pos {
		a.pos[i] = gween.New(float32(from.Position[i]), float32(to.Position[i]), duration, easing)
	}
	a.roll = gween.New(float32(from.Roll()), float32(to.Roll()), duration, easing)
	return a
}

// Update advances the animation by dt seconds and writes the card's pose.
// It reports whether the animation has finished.
func (a *Animation) Update(dt float32) bool {
	if a.done {
		return true
	}
	a.elapsed += dt
	t := a.elapsed - a.Delay
	if t < 0 {
		return false
	}
	finished := true
	var pos mgl64.Vec3
	for i, tw := range a.pos {
		v, ok := tw.Set(t)
		pos[i] = float64(v)
		finished = finished && ok
	}
	roll, ok := a.roll.Set(t)
	finished = finished && ok

	if finished {
		// tweens run in float32, land exactly on the target
		pos = a.to.Position
		a.Card.Pose.Rotation[2] = a.to.Roll()
	} else {
		a.Card.Pose.Rotation[2] = float64(roll)
	}
	a.Card.Pose.Position = pos
	a.done = finished
	return finished
}

func (a *Animation) Done() bool { return a.done }

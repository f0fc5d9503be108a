package config

import (
	"fmt"
	"math"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SvenDH/go-card-table/table"
)

// A layout file overrides parts of the table options, one statement each:
//
//	seat player 0 at (0.5, 4.004, 4.21) rot (-pi/2, 0, -0.15)
//	hand opponent scale 0.65
//	card scale 1
//	camera at (0, 10, 6) look (0, 0, 0) fov 45
//	select lift (0, 0.3, 0.3) delay 0.1 duration 0.4
//
// Numbers may be written as multiples or fractions of pi: pi, 2*pi, -pi/2.
type layoutFile struct {
	Entries []*layoutEntry `@@*`
}

type layoutEntry struct {
	Seat   *seatEntry   `  @@`
	Hand   *handEntry   `| @@`
	Card   *cardEntry   `| @@`
	Camera *cameraEntry `| @@`
	Select *selectEntry `| @@`
}

type seatEntry struct {
	Pos  lexer.Position
	Hand string `"seat" @("player" | "opponent")`
	Slot int    `@Number`
	At   *vec   `"at" @@`
	Rot  *vec   `( "rot" @@ )?`
}

type handEntry struct {
	Hand  string  `"hand" @("player" | "opponent")`
	Scale *scalar `"scale" @@`
}

type cardEntry struct {
	Scale *scalar `"card" "scale" @@`
}

type cameraEntry struct {
	At   *vec    `"camera" ( "at" @@ )?`
	Look *vec    `( "look" @@ )?`
	FOV  *scalar `( "fov" @@ )?`
}

type selectEntry struct {
	Lift     *vec    `"select" ( "lift" @@ )?`
	Delay    *scalar `( "delay" @@ )?`
	Duration *scalar `( "duration" @@ )?`
}

type vec struct {
	X *scalar `"(" @@`
	Y *scalar `"," @@`
	Z *scalar `"," @@ ")"`
}

type scalar struct {
	Neg  bool     `@"-"?`
	Num  *float64 `( @Number`
	Pi   bool     `  ( "*" @"pi" )?`
	Bare bool     `| @"pi" )`
	Div  *float64 `( "/" @Number )?`
}

func (s *scalar) value() float64 {
	v := 1.0
	if s.Num != nil {
		v = *s.Num
	}
	if s.Pi || s.Bare {
		v *= math.Pi
	}
	if s.Div != nil {
		v /= *s.Div
	}
	if s.Neg {
		v = -v
	}
	return v
}

func (v *vec) value() mgl64.Vec3 {
	return mgl64.Vec3{v.X.value(), v.Y.value(), v.Z.value()}
}

var layoutParser = participle.MustBuild[layoutFile](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{"comment", `#[^\n]*`},
		{"whitespace", `\s+`},
		{"Number", `\d+(\.\d*)?|\.\d+`},
		{"Ident", `[a-zA-Z_]\w*`},
		{"Punct", `[-+*/(),]`},
	})),
	participle.UseLookahead(2),
)

// LoadLayout reads a layout file and applies it to opts.
func LoadLayout(path string, opts *table.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	return ApplyLayout(path, data, opts)
}

// ApplyLayout parses src and applies every statement to opts. Nothing is
// applied if the file fails to parse or validate.
func ApplyLayout(name string, src []byte, opts *table.Options) error {
	f, err := layoutParser.ParseBytes(name, src)
	if err != nil {
		return fmt.Errorf("%w: %w", table.ErrInvalidLayout, err)
	}
	next := *opts
	for _, e := range f.Entries {
		if err := e.apply(&next); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := validate(&next); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*opts = next
	return nil
}

func (e *layoutEntry) apply(o *table.Options) error {
	switch {
	case e.Seat != nil:
		s := e.Seat
		if s.Slot < 0 || s.Slot >= table.HandSize {
			return fmt.Errorf("%w: %s seat %d out of range", table.ErrInvalidLayout, s.Pos, s.Slot)
		}
		layout := &o.Player
		if s.Hand == "opponent" {
			layout = &o.Opponent
		}
		pose := &layout.Seats[s.Slot]
		pose.Position = s.At.value()
		if s.Rot != nil {
			pose.Rotation = s.Rot.value()
		}
	case e.Hand != nil:
		if e.Hand.Hand == "opponent" {
			o.OpponentScale = e.Hand.Scale.value()
		} else {
			o.PlayerScale = e.Hand.Scale.value()
		}
	case e.Card != nil:
		o.CardScale = e.Card.Scale.value()
	case e.Camera != nil:
		c := e.Camera
		if c.At != nil {
			o.Camera.Position = c.At.value()
		}
		if c.Look != nil {
			o.Camera.Target = c.Look.value()
		}
		if c.FOV != nil {
			o.Camera.FOV = c.FOV.value()
		}
	case e.Select != nil:
		s := e.Select
		if s.Lift != nil {
			o.Selection.Lift = s.Lift.value()
		}
		if s.Delay != nil {
			o.Selection.Delay = s.Delay.value()
		}
		if s.Duration != nil {
			o.Selection.Duration = s.Duration.value()
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validate(o *table.Options) error {
	for _, l := range []table.SeatLayout{o.Player, o.Opponent} {
		for i, p := range l.Seats {
			if !finite(p.Position[:]...) || !finite(p.Rotation[:]...) {
				return fmt.Errorf("%w: %s seat %d is not finite", table.ErrInvalidLayout, l.Hand, i)
			}
		}
	}
	c := o.Camera
	if !finite(c.Position[:]...) || !finite(c.Target[:]...) || !finite(c.FOV) {
		return fmt.Errorf("%w: camera is not finite", table.ErrInvalidLayout)
	}
	if !finite(o.Selection.Lift[:]...) || !finite(o.Selection.Delay, o.Selection.Duration) {
		return fmt.Errorf("%w: selection is not finite", table.ErrInvalidLayout)
	}
	if !finite(o.CardScale, o.PlayerScale, o.OpponentScale) {
		return fmt.Errorf("%w: scales are not finite", table.ErrInvalidLayout)
	}
	switch {
	case o.CardScale <= 0 || o.PlayerScale <= 0 || o.OpponentScale <= 0:
		return fmt.Errorf("%w: scales must be positive", table.ErrInvalidLayout)
	case o.Camera.FOV <= 0 || o.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v", table.ErrInvalidLayout, o.Camera.FOV)
	case o.Camera.Position == o.Camera.Target:
		return fmt.Errorf("%w: camera looks at itself", table.ErrInvalidLayout)
	case o.Selection.Delay < 0 || o.Selection.Duration <= 0:
		return fmt.Errorf("%w: selection timing", table.ErrInvalidLayout)
	}
	return nil
}

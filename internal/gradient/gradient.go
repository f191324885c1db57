// Package gradient maintains an ordered list of colour stops and renders it
// as a CSS linear or radial gradient.
package gradient

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/devkit/internal/color"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// Type is the CSS gradient function.
type Type string

const (
	Linear Type = "linear"
	Radial Type = "radial"
)

// ParseType validates a gradient type name.
func ParseType(name string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(name))) {
	case Linear:
		return Linear, nil
	case Radial:
		return Radial, nil
	default:
		return "", deverrors.NewValidationError("type", fmt.Sprintf("unknown gradient type %q", name), nil)
	}
}

const (
	// MinStops is the smallest number of stops a gradient may hold.
	MinStops = 2

	DefaultAngle = 90
	MaxAngle     = 360
	MaxPosition  = 100
	newStopPos   = 50
	maxRGB       = 0xffffff
)

// Stop is a colour at a position (percent) along the gradient line.
type Stop struct {
	ID       string `json:"id"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// StopUpdate carries the fields to change on a stop; nil fields are kept.
type StopUpdate struct {
	Color    *string
	Position *int
}

// Gradient is the mutable state of the gradient tool. The zero value is not
// usable; call New.
type Gradient struct {
	kind  Type
	angle int
	stops []Stop
	rng   *rand.Rand
	newID func() string
}

// Option customises New.
type Option func(*Gradient)

// WithRand sets the random source used for new stop colours.
func WithRand(rng *rand.Rand) Option {
	return func(g *Gradient) { g.rng = rng }
}

// WithIDGenerator sets the function producing stop IDs.
func WithIDGenerator(fn func() string) Option {
	return func(g *Gradient) { g.newID = fn }
}

// New returns a linear 90° gradient from #667eea to #764ba2.
func New(opts ...Option) *Gradient {
	g := &Gradient{
		kind:  Linear,
		angle: DefaultAngle,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.stops = []Stop{
		{ID: g.newID(), Color: "#667eea", Position: 0},
		{ID: g.newID(), Color: "#764ba2", Position: 100},
	}
	return g
}

// Type returns the gradient function.
func (g *Gradient) Type() Type { return g.kind }

// SetType switches between linear and radial.
func (g *Gradient) SetType(t Type) error {
	if t != Linear && t != Radial {
		return deverrors.NewValidationError("type", fmt.Sprintf("unknown gradient type %q", t), nil)
	}
	g.kind = t
	return nil
}

// Angle returns the linear gradient angle in degrees.
func (g *Gradient) Angle() int { return g.angle }

// SetAngle stores angle clamped to [0,360].
func (g *Gradient) SetAngle(angle int) {
	g.angle = clamp(angle, 0, MaxAngle)
}

// Stops returns a copy of the stops in ascending position order.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Add inserts a random colour at position 50.
func (g *Gradient) Add() Stop {
	stop := Stop{
		ID:       g.newID(),
		Color:    fmt.Sprintf("#%06x", g.rng.IntN(maxRGB)),
		Position: newStopPos,
	}
	g.stops = append(g.stops, stop)
	g.sort()
	return stop
}

// Remove deletes the stop with id. It refuses, returning false, when only
// MinStops remain or id is unknown.
func (g *Gradient) Remove(id string) bool {
	if len(g.stops) <= MinStops {
		return false
	}
	for i, s := range g.stops {
		if s.ID == id {
			g.stops = append(g.stops[:i], g.stops[i+1:]...)
			return true
		}
	}
	return false
}

// Update changes one stop's colour and/or position and re-sorts.
func (g *Gradient) Update(id string, u StopUpdate) error {
	idx := g.indexOf(id)
	if idx < 0 {
		return deverrors.NewValidationError("stop", fmt.Sprintf("stop %q not found", id), nil)
	}

	if u.Color != nil {
		hex, err := color.NormalizeHex(*u.Color)
		if err != nil {
			return err
		}
		g.stops[idx].Color = hex
	}
	if u.Position != nil {
		g.stops[idx].Position = clamp(*u.Position, 0, MaxPosition)
	}
	g.sort()
	return nil
}

// CSS renders the gradient function, e.g.
// "linear-gradient(90deg, #667eea 0%, #764ba2 100%)".
func (g *Gradient) CSS() string {
	parts := make([]string, len(g.stops))
	for i, s := range g.stops {
		parts[i] = fmt.Sprintf("%s %d%%", s.Color, s.Position)
	}
	stops := strings.Join(parts, ", ")

	if g.kind == Radial {
		return fmt.Sprintf("radial-gradient(circle, %s)", stops)
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.angle, stops)
}

// Sample returns n colours evenly spaced along the gradient line, blended
// in the Luv space. Positions before the first or after the last stop take
// that stop's colour. Stops with malformed colours are skipped.
func (g *Gradient) Sample(n int) []string {
	if n <= 0 {
		return nil
	}

	type point struct {
		c   colorful.Color
		pos float64
	}
	var points []point
	for _, s := range g.stops {
		c, err := color.ParseHex(s.Color)
		if err != nil {
			continue
		}
		points = append(points, point{c: c, pos: float64(s.Position)})
	}
	if len(points) == 0 {
		return nil
	}

	out := make([]string, n)
	for i := range out {
		at := 0.0
		if n > 1 {
			at = float64(i) * MaxPosition / float64(n-1)
		}

		c := points[len(points)-1].c
		switch {
		case at <= points[0].pos:
			c = points[0].c
		default:
			for j := 1; j < len(points); j++ {
				a, b := points[j-1], points[j]
				if at > b.pos {
					continue
				}
				t := 0.0
				if b.pos > a.pos {
					t = (at - a.pos) / (b.pos - a.pos)
				}
				c = a.c.BlendLuv(b.c, t).Clamped()
				break
			}
		}
		out[i] = c.Hex()
	}
	return out
}

// Declaration renders "background: <CSS>;".
func (g *Gradient) Declaration() string {
	return "background: " + g.CSS() + ";"
}

func (g *Gradient) sort() {
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].Position < g.stops[j].Position
	})
}

func (g *Gradient) indexOf(id string) int {
	for i, s := range g.stops {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

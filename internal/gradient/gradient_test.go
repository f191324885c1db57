package gradient

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGradient() *Gradient {
	n := 0
	return New(
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("stop-%d", n)
		}),
	)
}

func TestDefaultLinearCSS(t *testing.T) {
	g := newTestGradient()
	assert.Equal(t, "linear-gradient(90deg, #667eea 0%, #764ba2 100%)", g.CSS())
	assert.Equal(t, "background: linear-gradient(90deg, #667eea 0%, #764ba2 100%);", g.Declaration())
}

func TestRadialCSS(t *testing.T) {
	g := newTestGradient()
	require.NoError(t, g.SetType(Radial))
	g.SetAngle(45)
	assert.Equal(t, "radial-gradient(circle, #667eea 0%, #764ba2 100%)", g.CSS())
}

func TestAddInsertsRandomStopInOrder(t *testing.T) {
	g := newTestGradient()
	stop := g.Add()

	assert.Equal(t, 50, stop.Position)
	assert.Regexp(t, regexp.MustCompile(`^#[0-9a-f]{6}$`), stop.Color)

	stops := g.Stops()
	require.Len(t, stops, 3)
	assert.Equal(t, []int{0, 50, 100}, positions(stops))
	assert.Equal(t, stop.ID, stops[1].ID)
}

func TestRemoveKeepsAtLeastTwoStops(t *testing.T) {
	g := newTestGradient()
	first := g.Stops()[0].ID

	assert.False(t, g.Remove(first))
	assert.Len(t, g.Stops(), MinStops)

	added := g.Add()
	assert.False(t, g.Remove("missing"))
	assert.True(t, g.Remove(added.ID))
	assert.Len(t, g.Stops(), MinStops)
	assert.False(t, g.Remove(first))
}

func TestUpdateResorts(t *testing.T) {
	g := newTestGradient()
	first := g.Stops()[0]

	pos := 150
	col := "#ABC"
	require.NoError(t, g.Update(first.ID, StopUpdate{Color: &col, Position: &pos}))

	stops := g.Stops()
	assert.Equal(t, first.ID, stops[1].ID)
	assert.Equal(t, "#aabbcc", stops[1].Color)
	assert.Equal(t, 100, stops[1].Position)
	assert.Equal(t, "linear-gradient(90deg, #764ba2 100%, #aabbcc 100%)", g.CSS())
}

func TestUpdateErrors(t *testing.T) {
	g := newTestGradient()
	bad := "purple"
	require.Error(t, g.Update("missing", StopUpdate{}))
	require.Error(t, g.Update(g.Stops()[0].ID, StopUpdate{Color: &bad}))
	assert.Equal(t, "#667eea", g.Stops()[0].Color)
}

func TestSetAngleClamps(t *testing.T) {
	g := newTestGradient()
	g.SetAngle(400)
	assert.Equal(t, 360, g.Angle())
	g.SetAngle(-10)
	assert.Equal(t, 0, g.Angle())
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("Radial")
	require.NoError(t, err)
	assert.Equal(t, Radial, typ)

	_, err = ParseType("conic")
	require.Error(t, err)
	require.Error(t, newTestGradient().SetType("conic"))
}

func TestStopsReturnsCopy(t *testing.T) {
	g := newTestGradient()
	stops := g.Stops()
	stops[0].Color = "#000000"
	assert.Equal(t, "#667eea", g.Stops()[0].Color)
}

func positions(stops []Stop) []int {
	out := make([]int, len(stops))
	for i, s := range stops {
		out[i] = s.Position
	}
	return out
}

func TestSample(t *testing.T) {
	g := newTestGradient()

	samples := g.Sample(3)
	require.Len(t, samples, 3)
	assert.Equal(t, "#667eea", samples[0])
	assert.Equal(t, "#764ba2", samples[2])
	assert.NotEqual(t, samples[0], samples[1])

	assert.Nil(t, g.Sample(0))
	assert.Equal(t, []string{"#667eea"}, g.Sample(1))
}

package color

// hueBuckets maps the upper (exclusive) bound of a hue range to its label.
// Anything from 330 upward wraps back to red.
var hueBuckets = []struct {
	limit float64
	name  string
}{
	{30, "Red"},
	{60, "Orange"},
	{90, "Yellow"},
	{150, "Green"},
	{210, "Cyan"},
	{270, "Blue"},
	{330, "Purple"},
}

// Name returns a coarse human-readable label for a hue in degrees.
func Name(hue float64) string {
	for _, b := range hueBuckets {
		if hue < b.limit {
			return b.name
		}
	}
	return "Red"
}

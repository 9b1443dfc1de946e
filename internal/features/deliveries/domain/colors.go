package domain

// Color is a named marker color.
type Color string

const (
	ColorRed       Color = "red"
	ColorBlue      Color = "blue"
	ColorGreen     Color = "green"
	ColorPurple    Color = "purple"
	ColorOrange    Color = "orange"
	ColorDarkRed   Color = "darkred"
	ColorLightRed  Color = "lightred"
	ColorBeige     Color = "beige"
	ColorDarkBlue  Color = "darkblue"
	ColorDarkGreen Color = "darkgreen"
	ColorCadetBlue Color = "cadetblue"
	ColorPink      Color = "pink"
	ColorGray      Color = "gray"
)

// Palette is the fixed, ordered set of agent colors.
var Palette = []Color{
	ColorRed, ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorDarkRed, ColorLightRed,
	ColorBeige, ColorDarkBlue, ColorDarkGreen, ColorCadetBlue, ColorPink, ColorGray,
}

var hexByColor = map[Color]string{
	ColorRed:       "#D63E2A",
	ColorBlue:      "#38AADD",
	ColorGreen:     "#72B026",
	ColorPurple:    "#D252B9",
	ColorOrange:    "#F69730",
	ColorDarkRed:   "#A23336",
	ColorLightRed:  "#FF8E7F",
	ColorBeige:     "#FFCB92",
	ColorDarkBlue:  "#0067A3",
	ColorDarkGreen: "#728224",
	ColorCadetBlue: "#436978",
	ColorPink:      "#FF91EA",
	ColorGray:      "#575757",
}

// Hex returns the RGB rendering of the color.
func (c Color) Hex() string {
	if h, ok := hexByColor[c]; ok {
		return h
	}
	return "#575757"
}

// AgentColor pairs an agent with its color.
type AgentColor struct {
	Agent string `json:"agent"`
	Color Color  `json:"color"`
	Hex   string `json:"hex"`
}

// ColorMap is an ordered agent to color assignment.
type ColorMap struct {
	entries []AgentColor
	index   map[string]int
}

// AssignColors gives every distinct agent, in first-seen order, the palette
// color at its position modulo the palette size.
func AssignColors(agents []string) ColorMap {
	m := ColorMap{index: make(map[string]int)}
	for _, a := range agents {
		if _, seen := m.index[a]; seen {
			continue
		}
		c := Palette[len(m.entries)%len(Palette)]
		m.index[a] = len(m.entries)
		m.entries = append(m.entries, AgentColor{Agent: a, Color: c, Hex: c.Hex()})
	}
	return m
}

// Color returns the agent's color; unknown agents get gray.
func (m ColorMap) Color(agent string) Color {
	if i, ok := m.index[agent]; ok {
		return m.entries[i].Color
	}
	return ColorGray
}

// Entries returns the assignment in order, for legends.
func (m ColorMap) Entries() []AgentColor {
	return append([]AgentColor(nil), m.entries...)
}

// Len returns the number of agents.
func (m ColorMap) Len() int { return len(m.entries) }

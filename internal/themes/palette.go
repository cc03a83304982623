package themes

// Background styles one page section. Either Color or Gradient is set;
// Pattern is an optional overlay keyword.
type Background struct {
	Color    string
	Gradient string
	Pattern  string
}

// CSS returns the background declaration for inline section styling.
func (b Background) CSS() string {
	if value := b.Value(); value != "" {
		return "background: " + value + ";"
	}
	return ""
}

// Value returns the bare background value, usable inside a declaration.
func (b Background) Value() string {
	if b.Gradient != "" {
		return b.Gradient
	}
	return b.Color
}

// SectionBackground returns the background for the section at index, cycling
// through the business category's palette. Round-robin keeps consecutive
// sections visually distinct without repetition collisions.
func SectionBackground(businessType string, index int) Background {
	palette, ok := backgroundPalettes[normalizeKey(businessType)]
	if !ok {
		palette = backgroundPalettes["plombier"]
	}
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}

var backgroundPalettes = map[string][]Background{
	"plombier": {
		{Color: "#ffffff"},
		{Color: "#ebf5ff"},
		{Color: "#f0f9ff"},
		{Gradient: "linear-gradient(135deg, #EBF5FF 0%, #DBEAFE 100%)"},
		{Color: "#ffffff", Pattern: "dots"},
	},
	"electricien": {
		{Color: "#ffffff"},
		{Color: "#fffbeb"},
		{Color: "#fef3c7"},
		{Gradient: "linear-gradient(135deg, #FEF3C7 0%, #FDE68A 100%)"},
		{Color: "#ffffff", Pattern: "dots"},
	},
	"menuisier": {
		{Color: "#ffffff"},
		{Color: "#fef5e7"},
		{Color: "#faebd7"},
		{Gradient: "linear-gradient(135deg, #FAEBD7 0%, #DEB887 100%)"},
		{Color: "#ffffff"},
	},
	"peintre": {
		{Color: "#ffffff"},
		{Color: "#faf5ff"},
		{Color: "#f3e8ff"},
		{Gradient: "linear-gradient(135deg, #F3E8FF 0%, #E9D5FF 100%)"},
		{Color: "#ffffff"},
	},
	"macon": {
		{Color: "#ffffff"},
		{Color: "#f5f5f5"},
		{Color: "#eeeeee"},
		{Gradient: "linear-gradient(135deg, #F5F5F5 0%, #E0E0E0 100%)"},
		{Color: "#ffffff"},
	},
}

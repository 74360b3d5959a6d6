package console

// Color is an index into the runtime's 16-color palette.
type Color = uint8

// Palette indices.
const (
	ColorBlack Color = iota
	ColorPurple
	ColorRed
	ColorOrange
	ColorYellow
	ColorLightGreen
	ColorGreen
	ColorDarkGreen
	ColorDarkBlue
	ColorBlue
	ColorLightBlue
	ColorCyan
	ColorWhite
	ColorLightGrey
	ColorGrey
	ColorDarkGrey
)

// Roles the console assigns to palette entries.
const (
	ColorBG     = ColorBlack
	ColorCursor = ColorRed
	ColorInput  = ColorWhite
	ColorBack   = ColorGrey
	ColorFront  = ColorLightGrey
	ColorError  = ColorRed
	colorWrap   = ColorDarkGrey
)

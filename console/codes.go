package console

// Ansi codes.
const (
	Bold = "\x1b[1m"

	Reset = "\033[0m"
	// Foreground Colors.
	Red          = "\033[31m"
	Yellow       = "\033[33m"
	Cyan         = "\033[36m"
	DarkGray     = "\033[90m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"

	// Clear the whole screen and move the cursor home.
	ClearScreen = "\033[2J\033[H"
)

// Box drawing.
const (
	RoundTopLeft     = "╭"
	RoundTopRight    = "╮"
	RoundBottomLeft  = "╰"
	RoundBottomRight = "╯"

	SquareTopLeft     = "┌"
	SquareTopRight    = "┐"
	SquareBottomLeft  = "└"
	SquareBottomRight = "┘"

	Horizontal = "─"
	Vertical   = "│"

	TopT    = "┬"
	BottomT = "┴"
)

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Salesforce cloud blues with status accents
// ═══════════════════════════════════════════════════════════════════════════════

var (
	CloudBlue = lipgloss.Color("#00A1E0") // Brand blue
	DeepBlue  = lipgloss.Color("#032D60") // Navy
	Sky       = lipgloss.Color("#5DADE2") // Info blue
	Green     = lipgloss.Color("#58D68D") // Success
	Amber     = lipgloss.Color("#F5B041") // Warning
	Red       = lipgloss.Color("#EC7063") // Error
	Magenta   = lipgloss.Color("#E91E8C") // Commands and code

	// Neutrals
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for banners and page headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(CloudBlue)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Sky)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
		Foreground(White).
		Bold(true)

	// Code/command style
	Code = lipgloss.NewStyle().
		Foreground(Magenta)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BANNER
// ═══════════════════════════════════════════════════════════════════════════════

const (
	bannerTitle   = "SF Compound Engineering - Spec-Driven Development"
	bannerTagline = "23 agents • 9 commands • 6 skills"
)

// Banner returns the boxed program banner
func Banner() string {
	if !IsTTY {
		return fmt.Sprintf("\n  %s\n  %s\n", bannerTitle, bannerTagline)
	}

	title := Title.Render(bannerTitle)
	tagline := Muted.Render(bannerTagline)
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(CloudBlue).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(title + "\n\n" + tagline)
	return "\n" + box + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	if !IsTTY {
		return strings.Repeat("-", width)
	}
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := Title.Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft = 0
	}
	if padRight < 0 {
		padRight = 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// ═══════════════════════════════════════════════════════════════════════════════
// TABLES - For structured data
// ═══════════════════════════════════════════════════════════════════════════════

// Column widths used by the spec listing
const (
	NameColumnWidth   = 30
	StatusColumnWidth = 15
)

// TableHeader creates a styled table header; widths pad all but the last column
func TableHeader(widths []int, columns ...string) string {
	cells := padCells(widths, columns)
	if !IsTTY {
		return strings.Join(cells, " ")
	}
	for i, c := range cells {
		cells[i] = lipgloss.NewStyle().Foreground(CloudBlue).Bold(true).Render(c)
	}
	return strings.Join(cells, " ")
}

// TableRow creates a styled table row; widths pad all but the last column
func TableRow(widths []int, columns ...string) string {
	cells := padCells(widths, columns)
	if !IsTTY {
		return strings.Join(cells, " ")
	}
	for i, c := range cells {
		style := lipgloss.NewStyle().Foreground(White)
		if i > 0 {
			style = style.Foreground(Gray)
		}
		cells[i] = style.Render(c)
	}
	return strings.Join(cells, " ")
}

func padCells(widths []int, columns []string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		if i < len(widths) && i < len(columns)-1 {
			col = fmt.Sprintf("%-*s", widths[i], col)
		}
		cells[i] = col
	}
	return cells
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Red)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Amber)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Sky)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderHighlight renders text in highlight style (TTY-aware)
func RenderHighlight(text string) string {
	return Render(Highlight, text)
}

// RenderCode renders text in code style (TTY-aware)
func RenderCode(text string) string {
	return Render(Code, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

package helpers

import (
	"image/color"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the fixed-point scale between wei and ether
const EtherDecimals = 18

// ShortenAddr shortens an Ethereum address for display (0x1234...abcd).
// Short input is not special-cased: the ellipsis is always added.
func ShortenAddr(addr string) string {
	return addr[:Min(6, len(addr))] + "..." + addr[Max(0, len(addr)-4):]
}

// FormatEther formats a wei amount as an ether decimal string.
// Trailing zeros are trimmed but at least one fractional digit is kept,
// so 1.5e18 renders as "1.5" and 0 as "0.0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(wei, -EtherDecimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	if s == "" {
		return s
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), len(s))
	return rainbow(lipgloss.NewStyle(), s, blends)
}

// FadeLines applies FadeString to every line of a multi-line block
func FadeLines(s string, firstColor string, lastColor string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = FadeString(l, firstColor, lastColor)
	}
	return strings.Join(lines, "\n")
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	for i, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
	}
	return b.String()
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

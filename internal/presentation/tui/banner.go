package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for voxdoc.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String(` __   __   ___  __  __ `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` \ \ / /  / _ \ \ \/ / `).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(`  \ V /  | (_) | >  <  `).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(`   \_/    \___/ /_/\_\ doc`).Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}

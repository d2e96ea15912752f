package boot

import (
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗██╗███╗   ██╗██████╗ ██████╗ ██████╗  ██████╗ ██████╗ ███████╗
 ████╗ ████║██║████╗  ██║██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██╔════╝
 ██╔████╔██║██║██╔██╗ ██║██║  ██║██████╔╝██████╔╝██║   ██║██████╔╝█████╗
 ██║╚██╔╝██║██║██║╚██╗██║██║  ██║██╔═══╝ ██╔══██╗██║   ██║██╔══██╗██╔══╝
 ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝██║     ██║  ██║╚██████╔╝██████╔╝███████╗
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚══════╝`

const bannerCompact = "M I N D P R O B E"

// RenderBanner returns the MINDPROBE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 78 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 78 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/jcmontoya/omnilearn/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███╗   ███╗███╗   ██╗██╗██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗
██╔═══██╗████╗ ████║████╗  ██║██║██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║
██║   ██║██╔████╔██║██╔██╗ ██║██║██║     █████╗  ███████║██████╔╝██╔██╗ ██║
██║   ██║██║╚██╔╝██║██║╚██╗██║██║██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║
╚██████╔╝██║ ╚═╝ ██║██║ ╚████║██║███████╗███████╗██║  ██║██║  ██║██║ ╚████║
 ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═══╝╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "O M N I L E A R N"

// RenderBanner returns the OMNILEARN banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the full art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 78 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

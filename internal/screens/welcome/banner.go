package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗ ██████╗ ███╗   ██╗ █████╗ ██╗   ██╗██████╗  █████╗
 ██╔════╝██║██╔════╝ ████╗  ██║██╔══██╗██║   ██║██╔══██╗██╔══██╗
 ███████╗██║██║  ███╗██╔██╗ ██║███████║██║   ██║██████╔╝███████║
 ╚════██║██║██║   ██║██║╚██╗██║██╔══██║██║   ██║██╔══██╗██╔══██║
 ███████║██║╚██████╔╝██║ ╚████║██║  ██║╚██████╔╝██║  ██║██║  ██║
 ╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "S I G N A U R A"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 68

// RenderBanner returns the Signaura banner in the primary color, or the
// compact form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

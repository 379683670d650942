package tenfoot

import "github.com/orbitview/tenfoot/pkg/tenfoot/i18n"

// Hints returns the instruction strings the presentation layer shows for the
// engine's current state. Localized when an i18n bundle is loaded; English
// otherwise. Button names themselves are never translated.
func (e *Engine) Hints() []string {
	s := e.Snapshot()

	if s.MenuVisible {
		return []string{
			i18n.Localize(&i18n.Message{
				ID:    "hint_menu_navigate",
				Other: "Use the arrow buttons to choose, OK to select",
			}, nil),
			i18n.Localize(&i18n.Message{
				ID:    "hint_menu_back",
				Other: "Press BACK to return",
			}, nil),
		}
	}

	if s.Mode == ModeZoom {
		hints := []string{
			i18n.Localize(&i18n.Message{
				ID:    "hint_zoom_arrows",
				Other: "Hold UP or DOWN to zoom",
			}, nil),
			i18n.Localize(&i18n.Message{
				ID:    "hint_zoom_exit",
				Other: "Press SELECT to rotate instead",
			}, nil),
		}
		if s.IsZooming {
			hints = append(hints, i18n.Localize(&i18n.Message{
				ID:    "hint_zoom_active",
				Other: "Zooming {{.Direction}}",
			}, map[string]interface{}{"Direction": s.ZoomDirection.String()}))
		}
		return hints
	}

	return []string{
		i18n.Localize(&i18n.Message{
			ID:    "hint_rotate_arrows",
			Other: "Hold the arrow buttons to rotate the globe",
		}, nil),
		i18n.Localize(&i18n.Message{
			ID:    "hint_rotate_toggle",
			Other: "Press SELECT to zoom instead",
		}, nil),
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/canopy/pkg/tree"
)

// applyKeys runs a comma-separated sequence of navigation commands. page is
// the distance moved by pgup and pgdown.
func applyKeys(state *tree.State, roots []*tree.Node, keys string, page int) error {
	if strings.TrimSpace(keys) == "" {
		return nil
	}
	for _, key := range strings.Split(keys, ",") {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "up":
			state.MoveUp(roots)
		case "down":
			state.MoveDown(roots)
		case "left":
			state.MoveLeft()
		case "right":
			state.MoveRight()
		case "home":
			state.SelectFirst()
		case "end":
			state.SelectLast(roots)
		case "pgup":
			state.PageUp(roots, page)
		case "pgdown":
			state.PageDown(roots, page)
		case "toggle", "enter":
			state.ToggleSelected()
		case "collapse":
			state.CloseAll()
		case "expand":
			state.OpenAll(roots)
		case "":
		default:
			return fmt.Errorf("unknown key %q", strings.TrimSpace(key))
		}
	}
	return nil
}

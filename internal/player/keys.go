package player

import tea "github.com/charmbracelet/bubbletea"

// HandleKey maps a key press onto a player operation. The boolean reports
// whether the key was consumed; consumed keys must not reach the dashboard
// views underneath the overlay. While the player is inactive every key
// falls through.
func (p *Player) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !p.active {
		return nil, false
	}
	switch msg.String() {
	case "right", "down":
		return p.Advance(), true
	case "left", "up":
		return p.Retreat(), true
	case " ":
		return p.TogglePause(), true
	case "esc":
		return p.Close(), true
	}
	return nil, false
}

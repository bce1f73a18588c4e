package script

import (
	"fmt"
	"strings"
)

// ParseAction converts the compact wire form of a step action into its tagged
// value. Supported forms: "clear", "select:<entity-id>",
// "flag:<name>=<on|off>". The older camel-case verbs ("clearSelection",
// "selectPatient", "setFlag") remain accepted for existing script files.
func ParseAction(raw string) (Action, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Action{}, nil
	}
	verb, arg, _ := strings.Cut(raw, ":")
	switch strings.ToLower(strings.TrimSpace(verb)) {
	case "clear", "clearselection":
		return Action{Kind: ActionClearSelection}, nil
	case "select", "selectpatient", "selectentity":
		id := strings.TrimSpace(arg)
		if id == "" {
			return Action{}, fmt.Errorf("script: select action requires an entity id")
		}
		return Action{Kind: ActionSelectEntity, EntityID: id}, nil
	case "flag", "setflag":
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Action{}, fmt.Errorf("script: flag action requires name=value, got %q", raw)
		}
		on, err := parseFlagValue(value)
		if err != nil {
			return Action{}, fmt.Errorf("script: flag %s: %w", name, err)
		}
		return Action{Kind: ActionSetFlag, Flag: name, Value: on}, nil
	default:
		return Action{}, fmt.Errorf("script: unknown action %q", raw)
	}
}

func parseFlagValue(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", strings.TrimSpace(raw))
	}
}

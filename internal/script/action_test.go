package script

import (
	"strings"
	"testing"
)

func TestParseActionEmptyIsNoOp(t *testing.T) {
	action, err := ParseAction("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Kind != ActionNone {
		t.Fatalf("kind = %s, want none", action.Kind)
	}
}

func TestParseActionClear(t *testing.T) {
	for _, raw := range []string{"clear", "clearSelection"} {
		action, err := ParseAction(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if action.Kind != ActionClearSelection {
			t.Fatalf("parse %q: kind = %s", raw, action.Kind)
		}
	}
}

func TestParseActionSelect(t *testing.T) {
	for _, raw := range []string{"select:PT-0112", "selectPatient:PT-0112"} {
		action, err := ParseAction(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if action.Kind != ActionSelectEntity || action.EntityID != "PT-0112" {
			t.Fatalf("parse %q: got %+v", raw, action)
		}
	}
}

func TestParseActionSelectRequiresID(t *testing.T) {
	_, err := ParseAction("select:")
	if err == nil || !strings.Contains(err.Error(), "requires an entity id") {
		t.Fatalf("expected missing-id error, got %v", err)
	}
}

func TestParseActionFlag(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"flag:knowledgeLoss=on", true},
		{"flag:knowledgeLoss=true", true},
		{"flag:knowledgeLoss=1", true},
		{"setFlag:knowledgeLoss=off", false},
		{"flag:knowledgeLoss=no", false},
	}
	for _, tc := range cases {
		action, err := ParseAction(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if action.Kind != ActionSetFlag || action.Flag != "knowledgeLoss" || action.Value != tc.want {
			t.Fatalf("parse %q: got %+v", tc.raw, action)
		}
	}
}

func TestParseActionFlagRequiresAssignment(t *testing.T) {
	_, err := ParseAction("flag:knowledgeLoss")
	if err == nil || !strings.Contains(err.Error(), "requires name=value") {
		t.Fatalf("expected assignment error, got %v", err)
	}
}

func TestParseActionFlagRejectsBadBoolean(t *testing.T) {
	_, err := ParseAction("flag:knowledgeLoss=maybe")
	if err == nil || !strings.Contains(err.Error(), "invalid boolean") {
		t.Fatalf("expected boolean error, got %v", err)
	}
}

func TestParseActionRejectsUnknownVerb(t *testing.T) {
	_, err := ParseAction("openModal:settings")
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Fatalf("expected unknown-action error, got %v", err)
	}
}

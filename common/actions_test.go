package common

import (
	"encoding/json"
	"testing"
)

func TestActionKind_External(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want bool
	}{
		{ActionStop, true},
		{ActionEnable, true},
		{ActionDisable, true},
		{ActionToggle, true},
		{ActionReloadConfig, true},
		{ActionTrigger, false},
		{ActionNothing, false},
		{ActionKind("bogus"), false},
	}
	for _, tt := range tests {
		if got := tt.kind.External(); got != tt.want {
			t.Errorf("%s.External() = %t, want %t", tt.kind, got, tt.want)
		}
	}
}

func TestAction_WireShape(t *testing.T) {
	buf, err := json.Marshal(Action{Kind: ActionTrigger, Command: "night-mode on"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(buf) != `{"kind":"trigger","command":"night-mode on"}` {
		t.Errorf("wire form = %s", buf)
	}

	buf, err = json.Marshal(Action{Kind: ActionEnable})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(buf) != `{"kind":"enable"}` {
		t.Errorf("control actions must omit the command field: %s", buf)
	}
}

package server

import (
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/sunwatch/sunwatch/common"
	"github.com/sunwatch/sunwatch/pkg/logger"
)

func startTestServer(t *testing.T) (chan common.Action, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sock")
	t.Setenv(common.SocketPathEnv, path)

	actions := make(chan common.Action, 8)
	s := New(logger.NewNopLogger(), actions)
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	go func() {
		if err := s.Serve(); err != nil {
			t.Errorf("Serve: %v", err)
		}
	}()
	t.Cleanup(func() { _ = s.Shutdown() })
	return actions, path
}

func sendFrame(t *testing.T, conn net.Conn, payload []byte) {
	t.Helper()
	if err := writeFrame(conn, payload); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
}

func expectAction(t *testing.T, actions chan common.Action, want common.ActionKind) {
	t.Helper()
	select {
	case act := <-actions:
		if act.Kind != want {
			t.Fatalf("got action %s, want %s", act.Kind, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no %s action arrived", want)
	}
}

func expectNoAction(t *testing.T, actions chan common.Action) {
	t.Helper()
	select {
	case act := <-actions:
		t.Fatalf("unexpected action %s", act.Kind)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestServer_ForwardsExternalActions(t *testing.T) {
	actions, path := startTestServer(t)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for _, kind := range []common.ActionKind{
		common.ActionEnable,
		common.ActionDisable,
		common.ActionToggle,
		common.ActionReloadConfig,
		common.ActionStop,
	} {
		buf, err := json.Marshal(common.Action{Kind: kind})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		sendFrame(t, conn, buf)
		expectAction(t, actions, kind)
	}
}

func TestServer_MalformedInputEndsConnectionSilently(t *testing.T) {
	actions, path := startTestServer(t)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	sendFrame(t, conn, []byte("this is not json"))
	expectNoAction(t, actions)

	// The listener survives: a fresh connection still works.
	conn2, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("second dial: %v", err)
	}
	defer conn2.Close()
	buf, _ := json.Marshal(common.Action{Kind: common.ActionEnable})
	sendFrame(t, conn2, buf)
	expectAction(t, actions, common.ActionEnable)
}

func TestServer_RejectsInternalKinds(t *testing.T) {
	actions, path := startTestServer(t)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	buf, _ := json.Marshal(common.Action{Kind: common.ActionTrigger, Command: "rm -rf /"})
	sendFrame(t, conn, buf)
	expectNoAction(t, actions)
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    common.ActionKind
		wantErr bool
	}{
		{"enable", `{"kind":"enable"}`, common.ActionEnable, false},
		{"stop", `{"kind":"stop"}`, common.ActionStop, false},
		{"internal trigger rejected", `{"kind":"trigger","command":"x"}`, "", true},
		{"internal nothing rejected", `{"kind":"nothing"}`, "", true},
		{"unknown kind rejected", `{"kind":"dance"}`, "", true},
		{"garbage rejected", `{{{`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := decodeAction([]byte(tt.payload))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAction) {
					t.Fatalf("want ErrInvalidAction, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeAction: %v", err)
			}
			if act.Kind != tt.want {
				t.Fatalf("kind = %s, want %s", act.Kind, tt.want)
			}
		})
	}
}

func TestFrame_RoundTrip(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	go func() { _ = writeFrame(client, []byte("hello")) }()
	buf, err := readFrame(srv)
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("payload = %q", buf)
	}
}

func TestFrame_RejectsOversizedHeader(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	go func() {
		_, _ = client.Write([]byte{0xff, 0xff, 0xff, 0xff})
	}()
	if _, err := readFrame(srv); err == nil {
		t.Fatal("oversized frame accepted")
	}
}

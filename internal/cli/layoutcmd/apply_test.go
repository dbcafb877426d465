package layoutcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/regenrek/docktree/pkg/dock"
)

func writeActions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write actions: %v", err)
	}
	return path
}

func TestLoadActionsArray(t *testing.T) {
	path := writeActions(t, `[
  {"type": "selectTab", "data": {"node": "t1"}},
  {"type": "maximizeToggle", "data": {"node": "ts1"}}
]`)
	actions, err := loadActions(path)
	if err != nil {
		t.Fatalf("loadActions: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].Type != dock.ActionSelectTab || actions[1].Type != dock.ActionMaximizeToggle {
		t.Fatalf("types = %v, %v", actions[0].Type, actions[1].Type)
	}
}

func TestLoadActionsNewlineDelimited(t *testing.T) {
	path := writeActions(t, `{"type":"renameTab","data":{"node":"t1","text":"New"}}

{"type":"deleteTab","data":{"node":"t2"}}
`)
	actions, err := loadActions(path)
	if err != nil {
		t.Fatalf("loadActions: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].Data["text"] != "New" {
		t.Fatalf("data = %v", actions[0].Data)
	}
}

func TestLoadActionsEmptyFile(t *testing.T) {
	path := writeActions(t, "\n")
	actions, err := loadActions(path)
	if err != nil {
		t.Fatalf("loadActions: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("got %d actions, want 0", len(actions))
	}
}

func TestLoadActionsBadLineReportsPosition(t *testing.T) {
	path := writeActions(t, `{"type":"selectTab","data":{"node":"t1"}}
not json
`)
	if _, err := loadActions(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

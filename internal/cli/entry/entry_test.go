package entry

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func captureStdout(t *testing.T) func() string {
	t.Helper()
	prevStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = prevStdout })
	return func() string {
		_ = w.Close()
		var out bytes.Buffer
		_, _ = io.Copy(&out, r)
		_ = r.Close()
		return out.String()
	}
}

func TestRunVersionFlagExitsZero(t *testing.T) {
	t.Setenv("DOCKTREE_CONFIG_DIR", t.TempDir())
	t.Setenv("DOCKTREE_DATA_DIR", t.TempDir())

	prevExiter := cli.OsExiter
	prevErrWriter := cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	t.Cleanup(func() {
		cli.OsExiter = prevExiter
		cli.ErrWriter = prevErrWriter
	})

	read := captureStdout(t)
	exit := Run([]string{"docktree", "--version"}, "test")
	out := read()
	if exit != 0 {
		t.Fatalf("exit=%d", exit)
	}
	if !strings.Contains(out, "docktree test") {
		t.Fatalf("stdout=%q", out)
	}
}

func TestRunValidateWithoutFileFails(t *testing.T) {
	t.Setenv("DOCKTREE_CONFIG_DIR", t.TempDir())
	t.Setenv("DOCKTREE_DATA_DIR", t.TempDir())

	read := captureStdout(t)
	exit := Run([]string{"docktree", "validate"}, "test")
	_ = read()
	if exit == 0 {
		t.Fatalf("validate without a file should fail")
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/itemize"
)

func noEnv(string) (string, bool) { return "", false }

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut, noEnv)
	return code, out.String(), errOut.String()
}

func TestRunText(t *testing.T) {
	code, out, errOut := runCmd(t, "Hello", "-no-fonts")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	want := "Offset: 0\nLength: 5\n#chars: 5\nText: Hello\nAnalysis:\n" +
		"\tFont: \n\tScript ID: 1281455214\n\tScript is Latin script!\n\n"
	if out != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunJSONWithFonts(t *testing.T) {
	code, out, errOut := runCmd(t, "ABあい", "-format", "json", "-buffer", "4")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	var first struct {
		Text   string `json:"text"`
		Script string `json:"script"`
		Font   string `json:"font"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if first.Text != "AB" || first.Script != "Latin" || first.Font == "" {
		t.Errorf("first report = %+v", first)
	}
}

func TestRunEmptyInput(t *testing.T) {
	code, out, _ := runCmd(t, "", "-no-fonts")
	if code != 0 || out != "" {
		t.Errorf("empty input: code %d, stdout %q", code, out)
	}
}

func TestRunInvalidInput(t *testing.T) {
	code, _, errOut := runCmd(t, "ab\xff", "-no-fonts")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "ERROR:") || !strings.Contains(errOut, "offset 2") {
		t.Errorf("stderr = %q", errOut)
	}

	code, out, _ := runCmd(t, "ab\xff", "-no-fonts", "-invalid", "replace")
	if code != 0 || !strings.Contains(out, "Text: ab\uFFFD") {
		t.Errorf("replace policy: code %d, stdout %q", code, out)
	}
}

func TestRunBadFlags(t *testing.T) {
	if code, _, _ := runCmd(t, "", "-unknown"); code != 2 {
		t.Errorf("unknown flag: exit code %d, want 2", code)
	}
	if code, _, errOut := runCmd(t, "", "-dir", "up"); code != 1 || !strings.Contains(errOut, "direction") {
		t.Errorf("bad direction: code %d, stderr %q", code, errOut)
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itemize.toml")
	cfg := "format = \"json\"\n[fonts]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCmd(t, "abc", "-config", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "{") || strings.Contains(out, `"font"`) {
		t.Errorf("stdout = %q, want JSON without fonts", out)
	}

	// Flags win over the file.
	_, out, _ = runCmd(t, "abc", "-config", path, "-format", "text")
	if !strings.HasPrefix(out, "Offset: 0") {
		t.Errorf("stdout = %q, want text output", out)
	}
}

func TestRunVerbose(t *testing.T) {
	t.Cleanup(func() { itemize.SetLogger(nil) })

	code, _, errOut := runCmd(t, "a\nb", "-no-fonts", "-v")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(errOut, "itemize: pass") {
		t.Errorf("stderr = %q, want pass diagnostics", errOut)
	}
}

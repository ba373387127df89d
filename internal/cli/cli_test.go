package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := map[string]bool{"generate": false, "layout": false, "example": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestGenerate(t *testing.T) {
	base := filepath.Join(t.TempDir(), "house")

	if _, err := execute(t, "generate", "-o", base, "-f", "svg,json,planner"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, suffix := range []string{".svg", ".json", ".planner.json"} {
		if _, err := os.Stat(base + suffix); err != nil {
			t.Errorf("expected %s: %v", base+suffix, err)
		}
	}
}

func TestGenerateFromPlanFile(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "cottage.yaml")
	if _, err := execute(t, "example", "-f", "yaml", "-o", planPath); err != nil {
		t.Fatalf("example: %v", err)
	}

	base := filepath.Join(dir, "out", "cottage")
	if _, err := execute(t, "generate", planPath, "-o", base, "-f", "dxf"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(base + ".dxf"); err != nil {
		t.Errorf("expected dxf output: %v", err)
	}
}

func TestGenerateInvalidFormat(t *testing.T) {
	_, err := execute(t, "generate", "-o", filepath.Join(t.TempDir(), "x"), "-f", "svg,gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestGenerateMissingPlan(t *testing.T) {
	_, err := execute(t, "generate", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestGenerateExactAdjacency(t *testing.T) {
	base := filepath.Join(t.TempDir(), "house")
	if _, err := execute(t, "generate", "-o", base, "-f", "adjacency", "--adjacency-tolerance", "0"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(base + ".adjacency.svg"); err != nil {
		t.Errorf("expected adjacency output: %v", err)
	}
}

func TestGenerateEnvDefaults(t *testing.T) {
	base := filepath.Join(t.TempDir(), "env-house")
	t.Setenv(envFormats, "json")
	t.Setenv(envOutput, base)

	if _, err := execute(t, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("expected json output from env defaults: %v", err)
	}
	if _, err := os.Stat(base + ".svg"); err == nil {
		t.Error("svg should not be written when FLOORPLAN_FORMATS=json")
	}
}

func TestLayoutTable(t *testing.T) {
	out, err := execute(t, "layout")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"ROOM", "Bedroom1", "Kitchen", "Bathroom", "reference-50x30"} {
		if !strings.Contains(out, want) {
			t.Errorf("layout output missing %q", want)
		}
	}
}

func TestLayoutJSON(t *testing.T) {
	out, err := execute(t, "layout", "--json")
	if err != nil {
		t.Fatalf("layout --json: %v", err)
	}

	var doc struct {
		Name  string `json:"name"`
		Rooms []struct {
			Name string `json:"name"`
		} `json:"rooms"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Name != "reference-50x30" || len(doc.Rooms) != 7 {
		t.Errorf("got name %q with %d rooms", doc.Name, len(doc.Rooms))
	}
}

func TestExampleRoundTrip(t *testing.T) {
	for _, format := range []string{"toml", "yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			out, err := execute(t, "example", "-f", format)
			if err != nil {
				t.Fatalf("example: %v", err)
			}
			p, err := plan.Decode(strings.NewReader(out), plan.Format(format))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(p.Rooms) != 7 || len(p.Openings) != 3 {
				t.Errorf("got %d rooms and %d openings", len(p.Rooms), len(p.Openings))
			}
		})
	}
}

func TestExampleInvalidFormat(t *testing.T) {
	if _, err := execute(t, "example", "-f", "xml"); err == nil {
		t.Error("expected error for unknown plan format")
	}
}

func TestLoadEnv(t *testing.T) {
	const key = "FLOORPLAN_TEST_LOAD_ENV"
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadEnv(filepath.Join(dir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := envOr(key, "fallback"); got != "from-file" {
		t.Errorf("envOr(%s) = %q, want from-file", key, got)
	}
	if got := envOr("FLOORPLAN_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("envOr(unset) = %q, want fallback", got)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "floorplan") {
		t.Error("bash completion should mention the command name")
	}
}

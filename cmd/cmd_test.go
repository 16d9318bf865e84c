// cmd_test.go - Tests fuer CLI-Hilfsfunktionen und Anzeige
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/config"
)

func TestIsRecipeFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"Recipefile", true},
		{"Recipefile.csj", true},
		{"train.recipe", true},
		{"/tmp/exp/Recipefile", true},
		{"config.yaml", false},
		{"recipes.txt", false},
	}

	for _, tt := range cases {
		if got := isRecipeFile(tt.path); got != tt.want {
			t.Errorf("isRecipeFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLooksLikeFile(t *testing.T) {
	cases := []struct {
		arg  string
		want bool
	}{
		{"conf.yaml", true},
		{"conf.yml", true},
		{"Recipefile", true},
		{"csj/blstm-mocha:baseline", false},
		{"blstm", false},
	}

	for _, tt := range cases {
		if got := looksLikeFile(tt.arg); got != tt.want {
			t.Errorf("looksLikeFile(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("short note", 40); len(got) != 1 || got[0] != "short note" {
		t.Errorf("wrapText short = %q", got)
	}

	lines := wrapText("alpha beta gamma delta epsilon zeta", 20)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}

	if got := wrapText("", 40); len(got) != 0 {
		t.Errorf("expected no lines for empty text, got %q", got)
	}
}

func TestLoadConfigArgYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := config.Default()
	cfg.LR = 0.002

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, notes, err := loadConfigArg(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if got.LR != 0.002 {
		t.Errorf("lr = %v, want 0.002", got.LR)
	}
	if len(notes) != 0 {
		t.Errorf("unexpected notes %q", notes)
	}
}

func TestLoadConfigArgRecipe(t *testing.T) {
	dir := t.TempDir()

	base := config.Default()
	base.BatchSize = 20
	f, err := os.Create(filepath.Join(dir, "base.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := base.Save(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	recipePath := filepath.Join(dir, "Recipefile")
	recipeText := "FROM base.yaml\nPARAMETER lr 0.002\nNOTE tuned for quick turnaround\n"
	if err := os.WriteFile(recipePath, []byte(recipeText), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, notes, err := loadConfigArg(recipePath, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BatchSize != 20 {
		t.Errorf("batch_size = %d, want 20 from base", cfg.BatchSize)
	}
	if cfg.LR != 0.002 {
		t.Errorf("lr = %v, want 0.002 from recipe", cfg.LR)
	}
	if len(notes) != 1 || notes[0] != "tuned for quick turnaround" {
		t.Errorf("notes = %q", notes)
	}
}

func TestLoadConfigArgUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("enc_type: blstm\nunknown_key: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := loadConfigArg(path, false); err == nil {
		t.Error("expected strict load to fail on unknown key")
	}
	if _, _, err := loadConfigArg(path, true); err != nil {
		t.Errorf("lenient load failed: %v", err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	if err := config.Default().Save(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if result := validateFile(good, false); len(result.errs) != 0 {
		t.Errorf("expected no errors, got %q", result.errs)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lr: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := validateFile(bad, false); len(result.errs) == 0 {
		t.Error("expected errors for lr 0")
	}

	if result := validateFile(filepath.Join(dir, "missing.yaml"), false); len(result.errs) == 0 {
		t.Error("expected errors for missing file")
	}
}

func TestGetRecipefileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.recipe")
	if err := os.WriteFile(path, []byte("FROM default\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	createCmd := newCreateCmd()
	if err := createCmd.Flags().Set("file", path); err != nil {
		t.Fatal(err)
	}

	got, err := getRecipefileName(createCmd)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
}

func TestShowInfo(t *testing.T) {
	var buf bytes.Buffer
	evals := []api.EvalResponse{{Split: "dev", Epoch: 10, WER: 12.5, CER: 8.3}}
	notes := []string{"baseline schedule"}

	if err := showInfo(config.Default(), notes, evals, 80, &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Model",
		"Encoder",
		"Attention",
		"Decoder",
		"Optimization",
		"Decoding",
		"Streaming",
		"Evals",
		"Notes",
		"conv_lc_blstm",
		"mocha",
		"wer 12.50",
		"baseline schedule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{1, "1"},
		{0.001, "0.001"},
		{2.5, "2.5"},
	}

	for _, tt := range cases {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package bench

import (
	"os"
	"path/filepath"
	"testing"
)

const suiteTOML = `
name = "smoke"
cat_name = "망고"
models = ["qwen2.5:3b", "exaone3.5:2.4b"]

[[case]]
key = "hungry_morning"
user_text = "밥 먹었어?"
hour = 8
age_days = 200
last_interaction = "talk"
hunger = 85
energy = 60
stress = 10
fun = 50
affection = 50
trust = 60

[[case]]
user_text = "놀자!"
hour = 14
hunger = 30
energy = 80
fun = 20
trust = 40
`

func writeSuite(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSuite(t *testing.T) {
	s, err := LoadSuite(writeSuite(t, suiteTOML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "smoke" || len(s.Models) != 2 || len(s.Cases) != 2 {
		t.Fatalf("suite parsed wrong: %+v", s)
	}
	if s.Cases[0].Key != "hungry_morning" || s.Cases[0].Hunger != 85 {
		t.Fatalf("first case wrong: %+v", s.Cases[0])
	}
	// missing key and last_interaction get defaults
	if s.Cases[1].Key != "case_002" {
		t.Fatalf("missing key should be generated, got %q", s.Cases[1].Key)
	}
	if s.Cases[1].LastType != "none" {
		t.Fatalf("missing last_interaction should default to none, got %q", s.Cases[1].LastType)
	}
}

func TestLoadSuiteRejectsEmpty(t *testing.T) {
	if _, err := LoadSuite(writeSuite(t, `name = "x"` + "\n" + `models = ["m"]`)); err == nil {
		t.Fatal("suite without cases should be rejected")
	}
	if _, err := LoadSuite(writeSuite(t, "name = \"x\"\n[[case]]\nuser_text = \"hi\"")); err == nil {
		t.Fatal("suite without models should be rejected")
	}
	if _, err := LoadSuite(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file should error")
	}
}

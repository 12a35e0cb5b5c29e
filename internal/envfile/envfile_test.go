package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	err := Load("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	content := "TEST_ENVFILE_A=hello\nTEST_ENVFILE_B=world\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Ensure vars are unset
	t.Setenv("TEST_ENVFILE_A", "")
	t.Setenv("TEST_ENVFILE_B", "")
	_ = os.Unsetenv("TEST_ENVFILE_A") //nolint:errcheck
	_ = os.Unsetenv("TEST_ENVFILE_B") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_ENVFILE_A"); got != "hello" {
		t.Errorf("TEST_ENVFILE_A = %q, want %q", got, "hello")
	}
	if got := os.Getenv("TEST_ENVFILE_B"); got != "world" {
		t.Errorf("TEST_ENVFILE_B = %q, want %q", got, "world")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "TEST_ENVFILE_C=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_ENVFILE_C", "from_env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_ENVFILE_C"); got != "from_env" {
		t.Errorf("TEST_ENVFILE_C = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# This is a comment\n\nTEST_ENVFILE_D=yes\n  # indented comment\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_ENVFILE_D", "")
	_ = os.Unsetenv("TEST_ENVFILE_D") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_ENVFILE_D"); got != "yes" {
		t.Errorf("TEST_ENVFILE_D = %q, want %q", got, "yes")
	}
}

func TestLoad_QuotedAndExported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "export TEST_ENVFILE_E=\"quoted value\"\nTEST_ENVFILE_F='single quoted'\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_ENVFILE_E", "")
	t.Setenv("TEST_ENVFILE_F", "")
	_ = os.Unsetenv("TEST_ENVFILE_E") //nolint:errcheck
	_ = os.Unsetenv("TEST_ENVFILE_F") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TEST_ENVFILE_E"); got != "quoted value" {
		t.Errorf("TEST_ENVFILE_E = %q, want %q", got, "quoted value")
	}
	if got := os.Getenv("TEST_ENVFILE_F"); got != "single quoted" {
		t.Errorf("TEST_ENVFILE_F = %q, want %q", got, "single quoted")
	}
}

func TestLoadDefaults_ConfigDir(t *testing.T) {
	configDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(configDir, "env"), []byte("TEST_ENVFILE_G=from_config\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(t.TempDir())

	t.Setenv("TEST_ENVFILE_G", "")
	_ = os.Unsetenv("TEST_ENVFILE_G") //nolint:errcheck

	if err := LoadDefaults(configDir); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("TEST_ENVFILE_G"); got != "from_config" {
		t.Errorf("TEST_ENVFILE_G = %q, want %q", got, "from_config")
	}
}

func TestLoadDefaults_LocalWins(t *testing.T) {
	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, ".env.local"), []byte("TEST_ENVFILE_H=local\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, ".env"), []byte("TEST_ENVFILE_H=shared\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(work)

	t.Setenv("TEST_ENVFILE_H", "")
	_ = os.Unsetenv("TEST_ENVFILE_H") //nolint:errcheck

	if err := LoadDefaults(""); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("TEST_ENVFILE_H"); got != "local" {
		t.Errorf("TEST_ENVFILE_H = %q, want %q", got, "local")
	}
}

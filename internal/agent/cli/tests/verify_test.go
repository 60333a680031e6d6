package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-appointments/internal/agent/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/models"
)

// verifyServer принимает только alice/pw1.
func verifyServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user/verification", func(w http.ResponseWriter, r *http.Request) {
		var req models.CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Username == "alice" && req.Password == "pw1" {
			io.WriteString(w, `"User Verified"`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `"User NOT Verified"`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewVerifyCmd_PasswordFromStdin_SavesProfile(t *testing.T) {
	srv := verifyServer(t)
	p := filepath.Join(t.TempDir(), "profile.json")

	app := &cli.App{ServerURL: srv.URL, ProfilePath: p, Profile: &config.Profile{}}
	cmd := cli.NewVerifyCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("pw1\n"))
	cmd.SetArgs([]string{"--username", "alice", "--password-stdin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.String() != "User Verified\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}

	loaded, err := config.Load(p)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if loaded.Username != "alice" || loaded.ServerURL != srv.URL {
		t.Fatalf("unexpected profile %+v", *loaded)
	}
}

func TestNewVerifyCmd_WrongPassword_DoesNotSaveProfile(t *testing.T) {
	srv := verifyServer(t)
	p := filepath.Join(t.TempDir(), "profile.json")

	app := &cli.App{ServerURL: srv.URL, ProfilePath: p, Profile: &config.Profile{}}
	cmd := cli.NewVerifyCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader("nope"))
	cmd.SetArgs([]string{"--username", "alice", "--password-stdin"})

	err := cmd.Execute()
	if err == nil || err.Error() != "User NOT Verified" {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("profile must not be written on failure, stat err: %v", err)
	}
}

func TestNewVerifyCmd_UsernameFromProfile_PromptedPassword(t *testing.T) {
	srv := verifyServer(t)

	orig := cli.ReadPassword
	t.Cleanup(func() { cli.ReadPassword = orig })
	cli.ReadPassword = func(_ *cobra.Command, fromStdin bool) (string, error) {
		if fromStdin {
			t.Errorf("expected terminal mode")
		}
		return "pw1", nil
	}

	app := &cli.App{ServerURL: srv.URL, Profile: &config.Profile{Username: "alice"}}
	cmd := cli.NewVerifyCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewVerifyCmd_EmptyStdin_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: cli.DefaultServerURL, Profile: &config.Profile{}}
	cmd := cli.NewVerifyCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetArgs([]string{"--username", "alice", "--password-stdin"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "empty password") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewVerifyCmd_NoUsername_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: cli.DefaultServerURL, Profile: &config.Profile{}}
	cmd := cli.NewVerifyCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--password-stdin"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

package tests

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-appointments/internal/agent/config"
)

func TestUsersList_PrintsHashOnlyWhenPresent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/get", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":1,"username":"alice"},{"id":2,"username":"bob","password":"$2a$10$x"}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cmd := cli.NewUsersCmd(&cli.App{ServerURL: srv.URL, Profile: &config.Profile{}})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	want := "id=1 username=alice\nid=2 username=bob password=$2a$10$x\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestUsersGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/get/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `"user not found"`)
			return
		}
		io.WriteString(w, `{"id":1,"username":"alice"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Profile: &config.Profile{}}

	cmd := cli.NewUsersCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"get", "1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.String() != "id=1 username=alice\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	cmd = cli.NewUsersCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"get", "2"})
	if err := cmd.Execute(); err == nil || err.Error() != "user not found" {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd = cli.NewUsersCmd(app)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"get", "0"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for id 0")
	}
}

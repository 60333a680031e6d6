package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-appointments/internal/agent/api"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Errorf("expected Accept application/json, got %q", acc)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if got["a"] != float64(1) { // числа в map декодируются как float64
			t.Errorf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL+"/", false)

	var resp map[string]any
	if err := c.PostJSON("/x", map[string]any{"a": 1}, &resp); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_GetJSON_NoBody_NoContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("expected empty Content-Type, got %q", ct)
		}
		io.WriteString(w, `[1,2]`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	var resp []int
	if err := api.NewClient(srv.URL, false).GetJSON("/x", &resp); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 items, got %v", resp)
	}
}

func TestClient_Non2xx_JSONStringBody_BecomesMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `"User NOT Verified"`+"\n")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := api.NewClient(srv.URL, false).PostJSON("/x", map[string]string{}, nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "User NOT Verified" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
	if got := api.StatusOf(err); got != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", got)
	}
}

func TestClient_Non2xx_PlainTextOrEmptyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "bad request: invalid input")
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, false)

	err := c.GetJSON("/text", nil)
	if err == nil || err.Error() != "bad request: invalid input" {
		t.Fatalf("unexpected error: %v", err)
	}

	err = c.DeleteJSON("/empty", nil)
	if err == nil || err.Error() != "502 Bad Gateway" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_RespNil_And204_DoNotDecode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not a json")
	})
	mux.HandleFunc("/nocontent", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, false)

	if err := c.PostJSON("/ok", nil, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var resp map[string]any
	if err := c.DeleteJSON("/nocontent", &resp); err != nil {
		t.Fatalf("expected nil error for 204, got %v", err)
	}
	if err := c.GetJSON("/empty", &resp); err != nil {
		t.Fatalf("expected nil error for empty body, got %v", err)
	}
}

func TestClient_InsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `"ok"`)
	}))
	defer srv.Close()

	var msg string
	if err := api.NewClient(srv.URL, false).GetJSON("/", &msg); err == nil {
		t.Fatalf("expected certificate error without --insecure")
	}
	if err := api.NewClient(srv.URL, true).GetJSON("/", &msg); err != nil {
		t.Fatalf("expected nil error with insecure client, got %v", err)
	}
	if msg != "ok" {
		t.Fatalf("unexpected body %q", msg)
	}
}

func TestStatusOf_NonAPIError(t *testing.T) {
	if got := api.StatusOf(io.EOF); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

package flavor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testReport() Report {
	return Report{
		WinnerName:     "Zephyr",
		WinnerStyle:    "swift",
		LoserName:      "Bastion",
		LoserStyle:     "iron",
		WinnerHP:       140,
		WinnerMaxHP:    200,
		ElapsedSeconds: 42,
	}
}

func TestScriptSource(t *testing.T) {
	t.Run("composes_from_globals", func(t *testing.T) {
		gen := NewScriptSource([]byte(`line := winner_name + " defeats " + loser_name`))
		got, err := gen.Line(context.Background(), testReport())
		if err != nil {
			t.Fatal(err)
		}
		if got != "Zephyr defeats Bastion" {
			t.Fatalf("line = %q", got)
		}
	})

	t.Run("missing_line_is_an_error", func(t *testing.T) {
		gen := NewScriptSource([]byte(`x := 1`))
		if _, err := gen.Line(context.Background(), testReport()); err == nil {
			t.Fatalf("script with no line assignment accepted")
		}
	})

	t.Run("compile_error_is_an_error", func(t *testing.T) {
		gen := NewScriptSource([]byte(`line := `))
		if _, err := gen.Line(context.Background(), testReport()); err == nil {
			t.Fatalf("broken script accepted")
		}
	})
}

func TestEmbeddedScript(t *testing.T) {
	gen, err := NewScript()
	if err != nil {
		t.Fatal(err)
	}
	got, err := gen.Line(context.Background(), testReport())
	if err != nil {
		t.Fatal(err)
	}
	if got == "" || got == "<undefined>" {
		t.Fatalf("embedded script produced %q", got)
	}
	if !strings.Contains(got, "Zephyr") {
		t.Fatalf("line does not mention the winner: %q", got)
	}
}

func TestHTTPGenerator(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %s", ct)
			}
			w.Write([]byte(`{"line": "a remote verdict"}`))
		}))
		defer srv.Close()

		got, err := NewHTTP(srv.URL).Line(context.Background(), testReport())
		if err != nil {
			t.Fatal(err)
		}
		if got != "a remote verdict" {
			t.Fatalf("line = %q", got)
		}
	})

	t.Run("non_200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := NewHTTP(srv.URL).Line(context.Background(), testReport()); err == nil {
			t.Fatalf("500 response accepted")
		}
	})

	t.Run("bad_json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		}))
		defer srv.Close()

		if _, err := NewHTTP(srv.URL).Line(context.Background(), testReport()); err == nil {
			t.Fatalf("truncated json accepted")
		}
	})

	t.Run("empty_line", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"line": ""}`))
		}))
		defer srv.Close()

		if _, err := NewHTTP(srv.URL).Line(context.Background(), testReport()); err == nil {
			t.Fatalf("empty line accepted")
		}
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("url_selects_http", func(t *testing.T) {
		t.Setenv(EnvURL, "http://127.0.0.1:1/flavor")
		if _, ok := FromEnv().(*HTTP); !ok {
			t.Fatalf("FromEnv with url did not return the http generator")
		}
	})

	t.Run("default_is_script", func(t *testing.T) {
		t.Setenv(EnvURL, "")
		if _, ok := FromEnv().(*Script); !ok {
			t.Fatalf("FromEnv without url did not return the script generator")
		}
	})
}

package errors

import (
	"io"
	"net/http"
	"testing"
)

func TestFetchError(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		err := &FetchError{URL: "https://swapi.dev/api/people/999/", StatusCode: http.StatusNotFound}
		if got, want := err.Error(), "fetch https://swapi.dev/api/people/999/: unexpected status 404 Not Found"; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
		if !IsNotFound(err) {
			t.Fatal("expected IsNotFound to return true")
		}
		if got := err.Extensions()["status"]; got != http.StatusNotFound {
			t.Fatalf("unexpected status extension %v", got)
		}
	})

	t.Run("transport", func(t *testing.T) {
		err := &FetchError{URL: "https://swapi.dev/api/films/", Err: io.ErrUnexpectedEOF}
		if !Is(err, io.ErrUnexpectedEOF) {
			t.Fatal("expected errors.Is to see the cause")
		}
		if IsNotFound(err) {
			t.Fatal("transport failure reported as not found")
		}
		if _, ok := err.Extensions()["status"]; ok {
			t.Fatal("unexpected status extension")
		}
	})

	t.Run("wrapped not found", func(t *testing.T) {
		err := Wrap(&FetchError{URL: "u", StatusCode: http.StatusNotFound}, "load person")
		if !IsNotFound(err) {
			t.Fatal("expected IsNotFound to look through wrapping")
		}
	})

	t.Run("handles nil", func(t *testing.T) {
		if IsNotFound(nil) {
			t.Fatal("nil reported as not found")
		}
	})
}

func TestExtensionCodes(t *testing.T) {
	tests := []struct {
		err  interface{ Extensions() map[string]interface{} }
		code string
	}{
		{Configf("no type for kind %q", "droids"), CodeConfiguration},
		{MalformedIDf("badid", "invalid global id"), CodeMalformedID},
		{&FetchError{URL: "u", StatusCode: 500}, CodeUpstreamFetch},
		{Decodef("u", "missing url"), CodeDataShape},
	}
	for _, tt := range tests {
		if got := tt.err.Extensions()["code"]; got != tt.code {
			t.Errorf("%T: got code %v, want %s", tt.err, got, tt.code)
		}
	}
}

func TestMalformedIDError(t *testing.T) {
	err := &MalformedIDError{ID: "badid", Message: "invalid global id", Err: io.EOF}
	if got, want := err.Error(), "invalid global id: EOF"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	var target *MalformedIDError
	if !As(Wrap(err, "node"), &target) || target.ID != "badid" {
		t.Fatal("expected errors.As to recover the MalformedIDError")
	}
}

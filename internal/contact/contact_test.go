package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("+91 98765-43210", "Hi, I want to know about the program")
	want := "https://wa.me/919876543210?text=Hi%2C+I+want+to+know+about+the+program"
	if got != want {
		t.Errorf("link = %q, want %q", got, want)
	}
	if got := WhatsAppLink("919876543210", ""); got != "https://wa.me/919876543210" {
		t.Errorf("no-text link = %q", got)
	}
}

func TestRelaySendEnvelope(t *testing.T) {
	var received map[string]Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := Message{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Message: "Tell me more"}
	if err := NewRelay(srv.URL).Send(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if received["data"] != m {
		t.Errorf("relay received %+v, want %+v", received["data"], m)
	}
}

func TestRelaySendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRelay(srv.URL).Send(context.Background(), Message{Name: "x", Email: "x@x.io", Phone: "1", Message: "m"})
	if err == nil {
		t.Fatal("want error on 500")
	}
	if err := NewRelay("").Send(context.Background(), Message{}); err == nil {
		t.Fatal("unconfigured relay must error")
	}
}

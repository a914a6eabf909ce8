package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"statscards/internal/config"
)

func newTestClient(baseURL, token string) *Client {
	return NewClient(config.GitHubConfig{BaseURL: baseURL, Timeout: "5s"}, token)
}

func TestListRepos_PaginatesAndFiltersForks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/vnd.github+json" {
			t.Errorf("missing github accept header, got %q", r.Header.Get("Accept"))
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		if got := r.URL.Query().Get("type"); got != "owner" {
			t.Errorf("expected type=owner, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `[
				{"name":"alpha","fork":false,"languages_url":"http://x/alpha"},
				{"name":"beta","fork":true,"languages_url":"http://x/beta"}
			]`)
		case "2":
			fmt.Fprint(w, `[{"name":"gamma","fork":false,"languages_url":"http://x/gamma"}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	repos, err := client.ListRepos(context.Background(), "someone")
	if err != nil {
		t.Fatalf("ListRepos: %v", err)
	}

	if len(repos) != 2 {
		t.Fatalf("expected 2 non-fork repos, got %d: %+v", len(repos), repos)
	}
	if repos[0].Name != "alpha" || repos[1].Name != "gamma" {
		t.Errorf("unexpected repos order: %+v", repos)
	}
}

func TestListRepos_NoAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.ListRepos(context.Background(), "someone"); err != nil {
		t.Fatalf("ListRepos: %v", err)
	}
}

func TestListRepos_ServerErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.ListRepos(context.Background(), "someone"); err == nil {
		t.Fatal("expected error on 403 listing response")
	}
}

func TestListRepos_MalformedJSONIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"an array"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.ListRepos(context.Background(), "someone"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go":700,"Rust":300}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	langs, err := client.Languages(context.Background(), server.URL+"/repos/x/y/languages")
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if langs["Go"] != 700 || langs["Rust"] != 300 {
		t.Errorf("unexpected breakdown: %v", langs)
	}
}

func TestLanguages_EmptyURL(t *testing.T) {
	client := newTestClient("http://unused", "")
	langs, err := client.Languages(context.Background(), "")
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if len(langs) != 0 {
		t.Errorf("expected empty map, got %v", langs)
	}
}

func TestLanguages_NonObjectPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[1,2,3]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.Languages(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}

// Package github is a minimal client for the two GitHub REST endpoints
// statscards consumes: the paginated repository listing and the
// per-repository language breakdown.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"statscards/internal/config"
)

const (
	acceptHeader     = "application/vnd.github+json"
	defaultUserAgent = "statscards"

	// Listing page size. Pagination stops at the first empty page.
	perPage = 100
)

// Repo is one entry of the repository listing. Forked repositories are
// filtered out by ListRepos; they never reach the aggregator.
type Repo struct {
	Name         string `json:"name"`
	Fork         bool   `json:"fork"`
	LanguagesURL string `json:"languages_url"`
}

// Client calls the GitHub REST API with optional bearer-token auth and
// a fixed per-call timeout.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a Client from configuration. An empty token means
// unauthenticated (rate-limited) access.
func NewClient(cfg config.GitHubConfig, token string) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		token:     token,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
	}
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return body, nil
}

// ListRepos fetches every non-fork repository owned by user, following
// pagination until a page comes back empty. Any transport or decode
// error aborts the listing; there is no partial result.
func (c *Client) ListRepos(ctx context.Context, user string) ([]Repo, error) {
	var repos []Repo
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("per_page", strconv.Itoa(perPage))
		q.Set("page", strconv.Itoa(page))
		q.Set("type", "owner")
		q.Set("sort", "full_name")
		u := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(user), q.Encode())

		body, err := c.get(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("list repos page %d: %w", page, err)
		}

		var batch []Repo
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, fmt.Errorf("decode repos page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}
		for _, r := range batch {
			if !r.Fork {
				repos = append(repos, r)
			}
		}
	}
	return repos, nil
}

// Languages fetches a repository's language byte breakdown. The payload
// is a flat object with language names as keys, so it is walked with
// gjson rather than decoded into a struct.
func (c *Client) Languages(ctx context.Context, languagesURL string) (map[string]int64, error) {
	if languagesURL == "" {
		return map[string]int64{}, nil
	}

	body, err := c.get(ctx, languagesURL)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("languages payload from %s is not an object", languagesURL)
	}

	langs := make(map[string]int64)
	parsed.ForEach(func(key, value gjson.Result) bool {
		langs[key.String()] = value.Int()
		return true
	})
	return langs, nil
}

// Package stats turns repository language breakdowns into ordered
// percentage shares suitable for chart rendering.
package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"statscards/internal/github"
)

// Totals maps a language name to its accumulated byte count across all
// aggregated repositories.
type Totals map[string]int64

// RepoLister is the slice of the GitHub client the aggregator needs.
type RepoLister interface {
	ListRepos(ctx context.Context, user string) ([]github.Repo, error)
	Languages(ctx context.Context, languagesURL string) (map[string]int64, error)
}

// Aggregator sums language bytes over an account's non-fork repos.
type Aggregator struct {
	client      RepoLister
	log         *zap.Logger
	concurrency int
}

// NewAggregator wires an aggregator. concurrency bounds the number of
// in-flight language-breakdown fetches; values < 1 mean sequential.
func NewAggregator(client RepoLister, log *zap.Logger, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{client: client, log: log, concurrency: concurrency}
}

// Aggregate lists the user's repositories and sums their language byte
// counts. A listing failure is fatal. A failed language fetch for one
// repository is logged and that repository contributes nothing; the
// remaining repositories still count. Fetches run concurrently, but
// results are summed in listing order, so the totals are deterministic.
func (a *Aggregator) Aggregate(ctx context.Context, user string) (Totals, error) {
	repos, err := a.client.ListRepos(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("aggregate languages for %s: %w", user, err)
	}

	breakdowns := make([]map[string]int64, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			langs, err := a.client.Languages(gctx, repo.LanguagesURL)
			if err != nil {
				a.log.Warn("skipping repository: language fetch failed",
					zap.String("repo", repo.Name),
					zap.Error(err))
				return nil
			}
			breakdowns[i] = langs
			return nil
		})
	}
	// Workers swallow fetch errors, so Wait cannot fail; cancellation
	// is checked separately.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	totals := make(Totals)
	for _, langs := range breakdowns {
		for lang, size := range langs {
			totals[lang] += size
		}
	}
	return totals, nil
}

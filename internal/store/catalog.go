// ABOUTME: Catalog store owning problem listings, the viewed problem,
// ABOUTME: and the submission history with its fetch/submit operations

package store

import (
	"context"
	"sync"

	"github.com/codementor/cli/internal/client"
)

// Catalog owns the problem list, at most one current problem, and the
// ordered submission history (most recent first). Read-only fetches
// record failures in state without returning them; SubmitSolution both
// records and returns the failure so the initiating UI can react.
type Catalog struct {
	mu  sync.Mutex
	api *client.Client

	problems    []client.Problem
	current     *client.Problem
	submissions []client.Submission
	loading     bool
	err         string
	seq         uint64
}

// CatalogSnapshot is a point-in-time copy of the catalog state
type CatalogSnapshot struct {
	Problems       []client.Problem
	CurrentProblem *client.Problem
	Submissions    []client.Submission
	Loading        bool
	Err            string
}

// NewCatalog creates an empty catalog store
func NewCatalog(api *client.Client) *Catalog {
	return &Catalog{api: api}
}

func (c *Catalog) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.loading = true
	c.err = ""
	return c.seq
}

func (c *Catalog) commit(seq uint64, mutate func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.loading = false
	mutate()
}

// FetchProblems replaces the full problem list with the server's result,
// preserving server order. On failure the previously loaded list is kept.
func (c *Catalog) FetchProblems(ctx context.Context, filters client.ProblemFilters) {
	seq := c.begin()

	problems, err := c.api.ListProblems(ctx, filters)
	if err != nil {
		msg := errorMessage(err, "Failed to fetch problems")
		c.commit(seq, func() { c.err = msg })
		return
	}

	c.commit(seq, func() { c.problems = problems })
}

// FetchProblem replaces the current problem on success. On failure the
// stale problem stays visible alongside the error message.
func (c *Catalog) FetchProblem(ctx context.Context, slug string) {
	seq := c.begin()

	problem, err := c.api.GetProblem(ctx, slug)
	if err != nil {
		msg := errorMessage(err, "Failed to fetch problem")
		c.commit(seq, func() { c.err = msg })
		return
	}

	c.commit(seq, func() { c.current = problem })
}

// SubmitSolution posts a solution and prepends the server-returned
// submission record. The failure is recorded and returned.
func (c *Catalog) SubmitSolution(ctx context.Context, req client.SubmissionRequest) error {
	seq := c.begin()

	sub, err := c.api.SubmitSolution(ctx, req)
	if err != nil {
		msg := errorMessage(err, "Failed to submit solution")
		c.commit(seq, func() { c.err = msg })
		return err
	}

	c.commit(seq, func() {
		c.submissions = append([]client.Submission{*sub}, c.submissions...)
	})
	return nil
}

// FetchSubmissions replaces the submission list with the server's
// ordered result; the client does not re-sort.
func (c *Catalog) FetchSubmissions(ctx context.Context) {
	seq := c.begin()

	subs, err := c.api.ListSubmissions(ctx)
	if err != nil {
		msg := errorMessage(err, "Failed to fetch submissions")
		c.commit(seq, func() { c.err = msg })
		return
	}

	c.commit(seq, func() { c.submissions = subs })
}

// ClearError clears the error field only
func (c *Catalog) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = ""
}

// Snapshot returns a copy of the current catalog state
func (c *Catalog) Snapshot() CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := CatalogSnapshot{
		Problems:    append([]client.Problem(nil), c.problems...),
		Submissions: append([]client.Submission(nil), c.submissions...),
		Loading:     c.loading,
		Err:         c.err,
	}
	if c.current != nil {
		current := *c.current
		snap.CurrentProblem = &current
	}
	return snap
}

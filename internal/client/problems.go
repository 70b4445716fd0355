// ABOUTME: Problem resource calls for the codementor API
// ABOUTME: Listing, slug lookup, solution submission, and submission history

package client

import (
	"context"
	"net/url"
)

// QueryString serializes the filters for the problem listing endpoint.
// Both fields are forwarded verbatim when present; the result is empty
// when no filter is set.
func (f ProblemFilters) QueryString() string {
	params := url.Values{}
	if f.Difficulty != "" {
		params.Set("difficulty", f.Difficulty)
	}
	if f.Tags != "" {
		params.Set("tags", f.Tags)
	}
	return params.Encode()
}

// ListProblems fetches problems, optionally filtered by difficulty and tags
func (c *Client) ListProblems(ctx context.Context, filters ProblemFilters) ([]Problem, error) {
	path := "/problems/"
	if qs := filters.QueryString(); qs != "" {
		path += "?" + qs
	}

	var problems []Problem
	if err := c.get(ctx, path, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// GetProblem fetches a single problem by slug
func (c *Client) GetProblem(ctx context.Context, slug string) (*Problem, error) {
	var problem Problem
	if err := c.get(ctx, "/problems/"+url.PathEscape(slug)+"/", &problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

// SubmitSolution posts a solution; the server is authoritative for the
// returned submission's id, status, and timestamp
func (c *Client) SubmitSolution(ctx context.Context, req SubmissionRequest) (*Submission, error) {
	var sub Submission
	if err := c.post(ctx, "/problems/submit/", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubmissions fetches the current user's submissions in server order
func (c *Client) ListSubmissions(ctx context.Context) ([]Submission, error) {
	var subs []Submission
	if err := c.get(ctx, "/problems/submissions/", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

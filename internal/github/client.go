// MIT License
//
// Copyright (c) 2025 Mike Lane
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/mikelane/prrecord/internal/pullrequest"
)

// githubClient implements the Client interface using go-github
type githubClient struct {
	client *github.Client
}

// NewClient creates a new GitHub client. An empty token makes
// unauthenticated requests.
func NewClient(token string) (Client, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &githubClient{
		client: client,
	}, nil
}

// NewEnterpriseClient creates a client for a GitHub Enterprise Server
// instance rooted at baseURL.
func NewEnterpriseClient(baseURL, token string) (Client, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	client, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure enterprise URL: %w", err)
	}

	return &githubClient{
		client: client,
	}, nil
}

// Account looks up a GitHub user by login
func (c *githubClient) Account(ctx context.Context, login string) (*pullrequest.Account, error) {
	// Users.Get with an empty login returns the authenticated user
	if login == "" {
		return nil, pullrequest.ErrAccountNotFound
	}

	user, _, err := c.client.Users.Get(ctx, login)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("failed to get account %q: %w", login, pullrequest.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account %q: %w", login, err)
	}

	return convertAccount(user), nil
}

// GetPullRequest retrieves a pull request and builds a record from the raw
// response body, so the record's Message is exactly what the API sent.
func (c *githubClient) GetPullRequest(ctx context.Context, owner, repo string, number int, opts ...pullrequest.Option) (*pullrequest.Record, error) {
	logger := log.FromContext(ctx)

	u := fmt.Sprintf("repos/%v/%v/pulls/%d", owner, repo, number)
	req, err := c.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pull request request: %w", err)
	}

	var raw json.RawMessage
	if _, err := c.client.Do(ctx, req, &raw); err != nil {
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	record, err := pullrequest.FromJSON(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}

	logger.V(1).Info("Fetched pull request", "owner", owner, "repo", repo, "number", number)
	return record, nil
}

// isNotFound reports whether err is a GitHub 404
func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil {
		return false
	}
	return ghErr.Response.StatusCode == http.StatusNotFound
}

// convertAccount converts a GitHub User to our domain model
func convertAccount(user *github.User) *pullrequest.Account {
	if user == nil {
		return nil
	}

	return &pullrequest.Account{
		Name:    user.GetName(),
		Email:   user.GetEmail(),
		Company: user.GetCompany(),
		HTMLURL: user.GetHTMLURL(),
	}
}

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

// Package github provides GitHub API integration for prrecord.
//
// This package implements a client for the GitHub REST API that resolves
// pull request authors to account details and fetches pull requests by
// number.
//
// Key features:
//   - Resolve a login to name, email, company and profile URL
//     (implements pullrequest.AccountLookup)
//   - Fetch a pull request and build a pullrequest.Record from the raw
//     API response
//   - GitHub Enterprise Server support
//
// Authentication:
//
// A personal access token is optional. Without one, requests are
// unauthenticated and only public profile fields are returned. With the
// user:email scope, private email addresses are visible too.
//
// Example usage:
//
//	client, err := github.NewClient(token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch pull request as a record
//	rec, err := client.GetPullRequest(ctx, "owner", "repo", 123)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render it, resolving the author through the same client
//	fmt.Println(rec.Summary(ctx, client))
//
// Errors:
//
// A login without a GitHub account yields an error wrapping
// pullrequest.ErrAccountNotFound. Requests are not retried.
package github

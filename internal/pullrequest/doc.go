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

// Package pullrequest models a GitHub pull request as received from a webhook
// delivery or from the REST API.
//
// GitHub describes a pull request in two slightly different JSON shapes:
//   - Event shape: a pull_request webhook delivery, where the pull request
//     is nested under "pull_request", the repository under "repository" and
//     the acting user under "sender".
//   - Direct shape: the response of GET /repos/{owner}/{repo}/pulls/{number},
//     where the pull request fields are top level, the repository is under
//     "base.repo" and the author is under "user".
//
// Both shapes are normalized into a single Record. Fields missing from the
// payload, or carrying an unexpected JSON type, are left nil. Only JSON that
// cannot be decoded into an object is an error (*ParseError).
//
// Action inference:
//
// When the payload carries no "action", event-shape payloads get "opened"
// if their top-level "state" is "open" and stay nil otherwise. Direct-shape
// payloads always get "opened", since they are only looked up for pull
// requests that are already open.
//
// Rendering:
//
// Summary and Description combine the record with account details (name,
// email, company, profile URL) resolved through an AccountLookup keyed by
// the author's login. A missing or failing lookup renders empty account
// details rather than an error.
//
// Example usage:
//
//	rec, err := pullrequest.FromJSON(payload, pullrequest.WithProcessEnvironment())
//	if err != nil {
//	    var perr *pullrequest.ParseError
//	    if errors.As(err, &perr) {
//	        // reject the delivery
//	    }
//	    return err
//	}
//	fmt.Println(rec.Summary(ctx, accounts))
package pullrequest

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

package pullrequest

import (
	"encoding/json"
)

// Record is a normalized pull request. It is built once from a payload and
// read afterwards; Load and LoadJSON overwrite every parsed field.
type Record struct {
	Number          *int
	RepoName        *string
	Title           *string
	HTMLURL         *string
	Body            *string
	Action          *string
	CreatedAt       *string // passed through as sent, not parsed
	Author          *string
	AuthorAvatarURL *string

	// Message is the decoded payload, kept verbatim for forwarding.
	Message map[string]any
	// Env is the environment snapshot supplied at construction, if any.
	Env map[string]string
	// Shape is the payload shape detected by the last load.
	Shape Shape
}

// Option configures a Record at construction time
type Option func(*Record)

// FromJSON decodes a JSON payload and builds a Record from it.
// It returns a *ParseError when data is not a JSON object.
func FromJSON(data []byte, opts ...Option) (*Record, error) {
	r := newRecord(opts)
	if err := r.LoadJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

// FromData builds a Record from an already decoded payload
func FromData(data map[string]any, opts ...Option) *Record {
	r := newRecord(opts)
	r.Load(data)
	return r
}

func newRecord(opts []Option) *Record {
	r := &Record{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadJSON decodes data and re-loads the record from it. The record is left
// untouched when decoding fails.
func (r *Record) LoadJSON(data []byte) error {
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &ParseError{Err: err}
	}
	r.Load(decoded)
	return nil
}

// Load re-loads the record from a decoded payload, overwriting every parsed
// field. Env is not touched.
func (r *Record) Load(data map[string]any) {
	env := r.Env
	*r = Record{Env: env}

	r.Message = data
	r.Shape = DetectShape(data)

	switch r.Shape {
	case ShapeEvent:
		r.loadEvent(object(data))
	default:
		r.loadDirect(object(data))
	}
}

func (r *Record) loadEvent(data object) {
	r.loadPullRequest(data.object("pull_request"))
	r.RepoName = data.object("repository").string("name")

	r.Action = data.string("action")
	if r.Action == nil && data.isString("state", "open") {
		r.Action = stringPtr(ActionOpened)
	}

	actor := data.object("sender")
	if actor == nil {
		actor = data.object("user")
	}
	r.loadActor(actor)
}

func (r *Record) loadDirect(data object) {
	r.loadPullRequest(data)
	r.RepoName = data.object("base").object("repo").string("name")

	r.Action = data.string("action")
	if r.Action == nil {
		r.Action = stringPtr(ActionOpened)
	}

	r.loadActor(data.object("user"))
}

func (r *Record) loadPullRequest(pr object) {
	r.Number = pr.int("number")
	r.Title = pr.string("title")
	r.HTMLURL = pr.string("html_url")
	r.Body = pr.string("body")
	r.CreatedAt = pr.string("created_at")
}

func (r *Record) loadActor(actor object) {
	r.Author = actor.string("login")
	r.AuthorAvatarURL = actor.string("avatar_url")
}

// FilesURL returns the file diff view of the pull request
func (r *Record) FilesURL() string {
	return r.GetHTMLURL() + "/files"
}

// GetNumber returns the Number field if it's non-nil, zero value otherwise.
func (r *Record) GetNumber() int {
	if r == nil || r.Number == nil {
		return 0
	}
	return *r.Number
}

// GetRepoName returns the RepoName field if it's non-nil, zero value otherwise.
func (r *Record) GetRepoName() string {
	if r == nil {
		return ""
	}
	return deref(r.RepoName)
}

// GetTitle returns the Title field if it's non-nil, zero value otherwise.
func (r *Record) GetTitle() string {
	if r == nil {
		return ""
	}
	return deref(r.Title)
}

// GetHTMLURL returns the HTMLURL field if it's non-nil, zero value otherwise.
func (r *Record) GetHTMLURL() string {
	if r == nil {
		return ""
	}
	return deref(r.HTMLURL)
}

// GetBody returns the Body field if it's non-nil, zero value otherwise.
func (r *Record) GetBody() string {
	if r == nil {
		return ""
	}
	return deref(r.Body)
}

// GetAction returns the Action field if it's non-nil, zero value otherwise.
func (r *Record) GetAction() string {
	if r == nil {
		return ""
	}
	return deref(r.Action)
}

// GetCreatedAt returns the CreatedAt field if it's non-nil, zero value otherwise.
func (r *Record) GetCreatedAt() string {
	if r == nil {
		return ""
	}
	return deref(r.CreatedAt)
}

// GetAuthor returns the Author field if it's non-nil, zero value otherwise.
func (r *Record) GetAuthor() string {
	if r == nil {
		return ""
	}
	return deref(r.Author)
}

// GetAuthorAvatarURL returns the AuthorAvatarURL field if it's non-nil, zero value otherwise.
func (r *Record) GetAuthorAvatarURL() string {
	if r == nil {
		return ""
	}
	return deref(r.AuthorAvatarURL)
}

func stringPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Copyright 2025 The prrecord Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webhook

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/mikelane/prrecord/internal/pullrequest"
)

// Handler consumes pull request records built from webhook deliveries
type Handler interface {
	HandlePullRequest(ctx context.Context, record *pullrequest.Record) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, record *pullrequest.Record) error

// HandlePullRequest calls f(ctx, record)
func (f HandlerFunc) HandlePullRequest(ctx context.Context, record *pullrequest.Record) error {
	return f(ctx, record)
}

// LoggingHandler logs the summary of every pull request it receives.
// Description is logged at debug verbosity.
type LoggingHandler struct {
	accounts pullrequest.AccountLookup
}

// NewLoggingHandler creates a LoggingHandler resolving authors through
// accounts, which may be nil.
func NewLoggingHandler(accounts pullrequest.AccountLookup) *LoggingHandler {
	return &LoggingHandler{accounts: accounts}
}

// HandlePullRequest logs the record
func (h *LoggingHandler) HandlePullRequest(ctx context.Context, record *pullrequest.Record) error {
	logger := log.FromContext(ctx)

	logger.Info(record.Summary(ctx, h.accounts),
		"action", record.GetAction(),
		"repository", record.GetRepoName(),
		"url", record.GetHTMLURL())
	if debug := logger.V(1); debug.Enabled() {
		debug.Info("Pull request description", "description", record.Description(ctx, h.accounts))
	}
	return nil
}

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


// Package webhook provides GitHub webhook handling for prrecord.
//
// This package implements an HTTP server that receives GitHub pull request
// webhook deliveries, turns each one into a pullrequest.Record and passes it
// to a Handler.
//
// Key features:
//   - Handles pull_request events; every other event is acknowledged and ignored
//   - Builds records with the options given to NewServer (for example an
//     environment snapshot)
//   - Tags the request logger with the X-GitHub-Delivery ID
//   - Health check endpoint
//
// Responses:
//   - 202 Accepted: the handler accepted the record
//   - 200 OK: the event is not a pull_request event
//   - 400 Bad Request: the payload is not a JSON object
//   - 405 Method Not Allowed: the request is not a POST
//   - 500 Internal Server Error: the handler failed
//
// Deliveries are not authenticated. Run the server behind something that
// verifies X-Hub-Signature-256 if the endpoint is reachable from the internet.
//
// Example usage:
//
//	server := webhook.NewServer(
//		"0.0.0.0",
//		8080,
//		webhook.NewLoggingHandler(accounts),
//		pullrequest.WithProcessEnvironment(),
//	)
//	if err := server.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
package webhook

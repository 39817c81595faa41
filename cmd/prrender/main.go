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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/mikelane/prrecord/internal/github"
	"github.com/mikelane/prrecord/internal/pullrequest"
)

var setupLog = log.Log.WithName("setup")

func main() {
	var payloadPath string
	var owner, repo string
	var number int
	var format string
	var githubToken string
	var githubURL string
	var captureEnv bool
	flag.StringVar(&payloadPath, "payload", "-", "Path to a pull request JSON payload, or - for stdin.")
	flag.StringVar(&owner, "owner", "", "Repository owner, used with --number to fetch the pull request from GitHub.")
	flag.StringVar(&repo, "repo", "", "Repository name, used with --number to fetch the pull request from GitHub.")
	flag.IntVar(&number, "number", 0, "Pull request number to fetch instead of reading --payload.")
	flag.StringVar(&format, "format", "summary", "Output format: summary or description.")
	flag.StringVar(&githubToken, "github-token", "", "GitHub token for account lookups. Defaults to $GITHUB_TOKEN.")
	flag.StringVar(&githubURL, "github-url", "", "GitHub Enterprise Server URL. Empty means github.com.")
	flag.BoolVar(&captureEnv, "capture-env", false, "Attach a snapshot of the process environment to the record.")
	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	if format != "summary" && format != "description" {
		setupLog.Error(fmt.Errorf("unknown format %q", format), "Invalid flags")
		os.Exit(2)
	}
	if githubToken == "" {
		githubToken = os.Getenv("GITHUB_TOKEN")
	}

	client, err := newClient(githubURL, githubToken)
	if err != nil {
		setupLog.Error(err, "Failed to create GitHub client")
		os.Exit(1)
	}

	var recordOpts []pullrequest.Option
	if captureEnv {
		recordOpts = append(recordOpts, pullrequest.WithProcessEnvironment())
	}

	ctx := signals.SetupSignalHandler()
	record, err := loadRecord(ctx, client, payloadPath, owner, repo, number, recordOpts)
	if err != nil {
		setupLog.Error(err, "Failed to load pull request")
		os.Exit(1)
	}

	if format == "description" {
		fmt.Print(record.Description(ctx, client))
		return
	}
	fmt.Println(record.Summary(ctx, client))
}

func newClient(githubURL, token string) (github.Client, error) {
	if githubURL != "" {
		return github.NewEnterpriseClient(githubURL, token)
	}
	return github.NewClient(token)
}

func loadRecord(ctx context.Context, client github.Client, path, owner, repo string, number int, opts []pullrequest.Option) (*pullrequest.Record, error) {
	if number > 0 {
		if owner == "" || repo == "" {
			return nil, errors.New("--owner and --repo are required with --number")
		}
		return client.GetPullRequest(ctx, owner, repo, number, opts...)
	}

	payload, err := readPayload(path)
	if err != nil {
		return nil, err
	}
	return pullrequest.FromJSON(payload, opts...)
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return payload, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}

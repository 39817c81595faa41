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
	"flag"
	"os"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/mikelane/prrecord/internal/github"
	"github.com/mikelane/prrecord/internal/pullrequest"
	"github.com/mikelane/prrecord/internal/webhook"
)

var setupLog = log.Log.WithName("setup")

func main() {
	var bindAddress string
	var port int
	var githubToken string
	var githubURL string
	var captureEnv bool
	flag.StringVar(&bindAddress, "bind-address", "0.0.0.0", "The address the webhook endpoint binds to.")
	flag.IntVar(&port, "port", 8080, "The port the webhook endpoint listens on.")
	flag.StringVar(&githubToken, "github-token", "", "GitHub token for account lookups. Defaults to $GITHUB_TOKEN.")
	flag.StringVar(&githubURL, "github-url", "", "GitHub Enterprise Server URL. Empty means github.com.")
	flag.BoolVar(&captureEnv, "capture-env", false, "Attach a snapshot of the process environment to each record.")
	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	if githubToken == "" {
		githubToken = os.Getenv("GITHUB_TOKEN")
	}

	var client github.Client
	var err error
	if githubURL != "" {
		client, err = github.NewEnterpriseClient(githubURL, githubToken)
	} else {
		client, err = github.NewClient(githubToken)
	}
	if err != nil {
		setupLog.Error(err, "Failed to create GitHub client")
		os.Exit(1)
	}

	var recordOpts []pullrequest.Option
	if captureEnv {
		recordOpts = append(recordOpts, pullrequest.WithProcessEnvironment())
	}

	server := webhook.NewServer(bindAddress, port, webhook.NewLoggingHandler(client), recordOpts...)

	setupLog.Info("Starting webhook server")
	if err := server.Start(signals.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "Problem running webhook server")
		os.Exit(1)
	}
}

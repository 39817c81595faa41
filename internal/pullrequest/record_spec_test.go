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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func loadFixture(name string) ([]byte, map[string]any) {
	payload, err := os.ReadFile(filepath.Join("testdata", name))
	Expect(err).NotTo(HaveOccurred())

	var data map[string]any
	Expect(json.Unmarshal(payload, &data)).To(Succeed())
	return payload, data
}

func field(data map[string]any, path ...string) any {
	var v any = data
	for _, key := range path {
		v = v.(map[string]any)[key]
	}
	return v
}

var _ = Describe("Record", func() {
	var (
		payload []byte
		data    map[string]any
	)

	BeforeEach(func() {
		payload, data = loadFixture("pull_request_opened.json")
	})

	Context("construction", func() {
		It("builds from JSON", func() {
			rec, err := FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.GetAction()).To(Equal(ActionOpened))
		})

		It("builds from decoded data", func() {
			Expect(FromData(data).GetAction()).To(Equal(ActionOpened))
		})

		It("re-loads JSON in place", func() {
			rec := &Record{}
			Expect(rec.LoadJSON(payload)).To(Succeed())
			Expect(rec.GetAction()).To(Equal(ActionOpened))
		})

		It("re-loads decoded data in place", func() {
			rec := &Record{}
			rec.Load(data)
			Expect(rec.GetAction()).To(Equal(ActionOpened))
		})

		It("tolerates data without sender or user", func() {
			data["sender"] = nil
			data["user"] = nil

			rec := &Record{}
			Expect(func() { rec.Load(data) }).NotTo(Panic())
			Expect(rec.Author).To(BeNil())
			Expect(rec.AuthorAvatarURL).To(BeNil())
		})
	})

	DescribeTable("action",
		func(fixture, action string) {
			payload, _ := loadFixture(fixture)

			rec := &Record{}
			Expect(rec.LoadJSON(payload)).To(Succeed())
			Expect(rec.GetAction()).To(Equal(action))
		},
		Entry("opened", "pull_request_opened.json", ActionOpened),
		Entry("closed", "pull_request_closed.json", ActionClosed),
		Entry("synchronize", "pull_request_synchronize.json", ActionSynchronize),
	)

	Context("newly created pull request", func() {
		var rec *Record

		BeforeEach(func() {
			var err error
			rec, err = FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())
		})

		It("is an event shape payload", func() {
			Expect(rec.Shape).To(Equal(ShapeEvent))
		})

		It("has the pull request fields", func() {
			Expect(rec.GetNumber()).To(BeEquivalentTo(field(data, "pull_request", "number")))
			Expect(rec.GetTitle()).To(Equal(field(data, "pull_request", "title")))
			Expect(rec.GetHTMLURL()).To(Equal(field(data, "pull_request", "html_url")))
			Expect(rec.GetBody()).To(Equal(field(data, "pull_request", "body")))
			Expect(rec.GetCreatedAt()).To(Equal(field(data, "pull_request", "created_at")))
		})

		It("has the repository name", func() {
			Expect(rec.GetRepoName()).To(Equal(field(data, "repository", "name")))
		})

		It("has the action", func() {
			Expect(rec.GetAction()).To(Equal(data["action"]))
		})

		It("has the sender as author", func() {
			Expect(rec.GetAuthor()).To(Equal(field(data, "sender", "login")))
			Expect(rec.GetAuthorAvatarURL()).To(Equal(field(data, "sender", "avatar_url")))
		})

		It("keeps the message", func() {
			Expect(rec.Message).To(Equal(data))
		})
	})

	Context("existing pull request", func() {
		var rec *Record

		BeforeEach(func() {
			payload, data = loadFixture("pull_request_by_id.json")

			var err error
			rec, err = FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())
		})

		It("is a direct shape payload", func() {
			Expect(rec.Shape).To(Equal(ShapeDirect))
		})

		It("has the pull request fields", func() {
			Expect(rec.GetNumber()).To(BeEquivalentTo(data["number"]))
			Expect(rec.GetTitle()).To(Equal(data["title"]))
			Expect(rec.GetHTMLURL()).To(Equal(data["html_url"]))
			Expect(rec.GetBody()).To(Equal(data["body"]))
			Expect(rec.GetCreatedAt()).To(Equal(data["created_at"]))
		})

		It("has the base repository name", func() {
			Expect(rec.GetRepoName()).To(Equal(field(data, "base", "repo", "name")))
		})

		It("is opened", func() {
			Expect(rec.GetAction()).To(Equal(ActionOpened))
		})

		It("has the user as author", func() {
			Expect(rec.GetAuthor()).To(Equal(field(data, "user", "login")))
			Expect(rec.GetAuthorAvatarURL()).To(Equal(field(data, "user", "avatar_url")))
		})

		It("keeps the message", func() {
			Expect(rec.Message).To(Equal(data))
		})
	})

	Context("rendering", func() {
		var (
			rec      *Record
			accounts *fakeAccounts
			ctx      context.Context
		)

		BeforeEach(func() {
			var err error
			rec, err = FromJSON(payload)
			Expect(err).NotTo(HaveOccurred())

			ctx = context.Background()
			accounts = &fakeAccounts{accounts: map[string]*Account{
				rec.GetAuthor(): {
					Name:    "Github user",
					Email:   "user@fqdn.blackhole",
					Company: "Company Inc.",
					HTMLURL: "fqdn.blackhole",
				},
			}}
		})

		Describe("Description", func() {
			It("contains every piece of the pull request", func() {
				desc := rec.Description(ctx, accounts)

				Expect(desc).To(ContainSubstring("Github user"))
				Expect(desc).To(ContainSubstring("user@fqdn.blackhole"))
				Expect(desc).To(ContainSubstring("Company Inc."))
				Expect(desc).To(ContainSubstring("[" + rec.GetAuthor() + "](fqdn.blackhole)"))
				Expect(desc).To(ContainSubstring(strconv.Itoa(rec.GetNumber())))
				Expect(desc).To(ContainSubstring(rec.GetHTMLURL()))
				Expect(desc).To(ContainSubstring(rec.GetHTMLURL() + "/files"))
				Expect(desc).To(HaveSuffix(rec.GetBody() + "\n"))
			})
		})

		Describe("Summary", func() {
			It("contains the number, title and author name", func() {
				Expect(rec.Summary(ctx, accounts)).To(Equal(
					"Pull Request " + strconv.Itoa(rec.GetNumber()) + ": " + rec.GetTitle() + " [Github user]"))
			})
		})
	})
})

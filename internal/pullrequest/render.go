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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// AccountLookup resolves a GitHub login to account details
type AccountLookup interface {
	// Account returns the account for login, or an error wrapping
	// ErrAccountNotFound when there is none.
	Account(ctx context.Context, login string) (*Account, error)
}

// Account holds the account details shown when rendering a pull request
type Account struct {
	Name    string
	Email   string
	Company string
	HTMLURL string
}

// Description renders the author header, the discussion and file diff links,
// and the pull request body as markdown.
func (r *Record) Description(ctx context.Context, accounts AccountLookup) string {
	account := r.resolveAuthor(ctx, accounts)

	var b strings.Builder
	b.WriteString("----\n\n")
	fmt.Fprintf(&b, " * Author: **%s** <%s>\n", account.Name, account.Email)
	fmt.Fprintf(&b, " * Company: %s\n", account.Company)
	fmt.Fprintf(&b, " * Github ID: [%s](%s)\n", r.GetAuthor(), account.HTMLURL)
	fmt.Fprintf(&b, " * [Pull Request %s Discussion](%s)\n", r.number(), r.GetHTMLURL())
	fmt.Fprintf(&b, " * [File Diff](%s)\n", r.FilesURL())
	b.WriteString("\nPull Request Description\n====\n\n")
	b.WriteString(r.GetBody())
	b.WriteString("\n")
	return b.String()
}

// Summary renders a one line summary: number, title and author name.
func (r *Record) Summary(ctx context.Context, accounts AccountLookup) string {
	account := r.resolveAuthor(ctx, accounts)
	return fmt.Sprintf("Pull Request %s: %s [%s]", r.number(), r.GetTitle(), account.Name)
}

// resolveAuthor never fails; unresolvable authors get an empty Account.
func (r *Record) resolveAuthor(ctx context.Context, accounts AccountLookup) Account {
	if accounts == nil || r.Author == nil {
		return Account{}
	}

	account, err := accounts.Account(ctx, *r.Author)
	if err != nil {
		logger := log.FromContext(ctx)
		if errors.Is(err, ErrAccountNotFound) {
			logger.V(1).Info("No account for pull request author", "author", *r.Author)
		} else {
			logger.V(1).Info("Failed to resolve pull request author", "author", *r.Author, "error", err.Error())
		}
		return Account{}
	}
	if account == nil {
		return Account{}
	}
	return *account
}

func (r *Record) number() string {
	if r.Number == nil {
		return ""
	}
	return strconv.Itoa(*r.Number)
}

package app

import (
	"context"
	"fmt"
	"strings"
)

// Candidate file names, in probing order.
var (
	ReadmeCandidates  = []string{"README.md", "README.MD", "readme.md", "README", "Readme.md"}
	LicenseCandidates = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "License", "license"}
)

// FetchFileFunc fetches a single file by name.
type FetchFileFunc func(ctx context.Context, name string) (string, error)

// ProbeCandidates tries names one by one and returns the first successfully fetched content.
// Fetch failures are ignored. Returns NotFoundError when no candidate succeeds.
func ProbeCandidates(ctx context.Context, names []string, fetch FetchFileFunc) (string, error) {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := fetch(ctx, name)
		if err == nil {
			return content, nil
		}
	}

	return "", NotFoundError(fmt.Sprintf("none of [%s] found", strings.Join(names, ", ")))
}

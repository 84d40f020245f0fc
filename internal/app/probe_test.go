package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		existing   map[string]string
		want       string
		wantCalls  []string
		wantErr    bool
	}{
		{
			name:       "first candidate exists",
			candidates: app.ReadmeCandidates,
			existing:   map[string]string{"README.md": "first"},
			want:       "first",
			wantCalls:  []string{"README.md"},
		},
		{
			name:       "third candidate exists, later ones not tried",
			candidates: app.ReadmeCandidates,
			existing:   map[string]string{"readme.md": "lower", "Readme.md": "mixed"},
			want:       "lower",
			wantCalls:  []string{"README.md", "README.MD", "readme.md"},
		},
		{
			name:       "nothing exists",
			candidates: app.LicenseCandidates,
			existing:   map[string]string{},
			wantCalls:  app.LicenseCandidates,
			wantErr:    true,
		},
		{
			name:       "empty candidate list",
			candidates: nil,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			fetch := func(ctx context.Context, name string) (string, error) {
				calls = append(calls, name)
				if c, ok := tt.existing[name]; ok {
					return c, nil
				}
				return "", app.UnreachableError("status 404")
			}

			got, err := app.ProbeCandidates(context.Background(), tt.candidates, fetch)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				assert.True(t, app.IsNotFoundError(err))
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestProbeCandidatesCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int
	_, err := app.ProbeCandidates(ctx, app.ReadmeCandidates, func(context.Context, string) (string, error) {
		calls++
		return "", nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, calls)
}

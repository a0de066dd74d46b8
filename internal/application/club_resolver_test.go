package application

import (
	"context"
	"strings"
	"testing"

	"fcclubs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		results   []models.ClubRef
		searchErr error
		wantErr   error
		want      models.ClubRef
	}{
		{name: "empty name", input: "   ", wantErr: ErrInvalidClubName},
		{name: "name too long", input: strings.Repeat("x", 33), wantErr: ErrInvalidClubName},
		{name: "no candidates", input: "Nobody", wantErr: ErrNotFound},
		{name: "provider failure", input: "Metallist", searchErr: errBoom, wantErr: ErrUpstream},
		{
			name:  "first candidate wins",
			input: " Metallist ",
			results: []models.ClubRef{
				{ClubID: "100", Name: "Metallist", Platform: models.PlatformGen5},
				{ClubID: "101", Name: "Metallist", Platform: models.PlatformGen5},
			},
			want: models.ClubRef{ClubID: "100", Name: "Metallist", Platform: models.PlatformGen5},
		},
		{
			name:    "missing platform falls back to requested",
			input:   "Metallist",
			results: []models.ClubRef{{ClubID: "100"}},
			want:    models.ClubRef{ClubID: "100", Name: "Metallist", Platform: models.PlatformGen5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var searched string
			provider := &fakeProvider{
				SearchClubFn: func(_ context.Context, name string, _ models.Platform) ([]models.ClubRef, error) {
					searched = name
					return tt.results, tt.searchErr
				},
			}

			got, err := NewClubResolver(provider, testLogger).Resolve(context.Background(), tt.input, models.PlatformGen5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == ErrInvalidClubName {
					assert.Empty(t, searched, "no search for invalid names")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Metallist", searched)
		})
	}
}

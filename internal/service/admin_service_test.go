package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"watchlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Forge(t *testing.T) {
	seed := &mockSeedRepo{}
	svc := NewAdminService(&mockUserRepo{}, seed, 1)

	require.NoError(t, svc.Forge(context.Background()))
	assert.Equal(t, models.User{Name: "Immensee"}, seed.user)
	require.Len(t, seed.movies, 10)
	assert.Equal(t, models.Movie{Title: "My Neighbor Totoro", Year: "1988"}, seed.movies[0])
	assert.Equal(t, models.Movie{Title: "The Pork of Music", Year: "2012"}, seed.movies[9])

	seed.err = errors.New("locked")
	assert.Error(t, svc.Forge(context.Background()))
}

func TestAdminService_UpsertAdmin_Creates(t *testing.T) {
	repo := &mockUserRepo{
		FirstFn:  func() (*models.User, error) { return nil, nil },
		CreateFn: func(models.User) (int, error) { return 1, nil },
	}
	created, err := NewAdminService(repo, &mockSeedRepo{}, 1).UpsertAdmin(context.Background(), "grey", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, repo.created, 1)
	u := repo.created[0]
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, "grey", u.Username)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.True(t, verifyPassword(u.PasswordHash, "pw"))
}

func TestAdminService_UpsertAdmin_UpdatesExisting(t *testing.T) {
	var gotID int
	repo := &mockUserRepo{
		FirstFn: func() (*models.User, error) { return &models.User{ID: 5, Name: "Immensee"}, nil },
		UpdateCredentialsFn: func(id int, username, hash string) error {
			gotID = id
			return nil
		},
	}
	created, err := NewAdminService(repo, &mockSeedRepo{}, 1).UpsertAdmin(context.Background(), "grey", "pw")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, gotID)
	require.Len(t, repo.credentials, 1)
	parts := strings.SplitN(repo.credentials[0], "|", 2)
	assert.Equal(t, "grey", parts[0])
	assert.True(t, verifyPassword(parts[1], "pw"))
	assert.Empty(t, repo.created)
}

func TestAdminService_UpsertAdmin_InvalidInput(t *testing.T) {
	repo := &mockUserRepo{
		FirstFn: func() (*models.User, error) {
			t.Fatal("First should not be called for invalid input")
			return nil, nil
		},
	}
	svc := NewAdminService(repo, &mockSeedRepo{}, 1)

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{strings.Repeat("u", 21), "pw"},
		{"grey", ""},
		{"grey", "   "},
	} {
		_, err := svc.UpsertAdmin(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q/%q", tc.username, tc.password)
	}
}

func TestSettingsService(t *testing.T) {
	var updated int
	repo := &mockUserRepo{
		FirstFn:      func() (*models.User, error) { return &models.User{ID: 1, Name: "Admin"}, nil },
		UpdateNameFn: func(id int, name string) error { updated = id; return nil },
	}
	svc := NewSettingsService(repo)

	owner, err := svc.Owner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Admin", owner.Name)

	require.NoError(t, svc.UpdateName(context.Background(), 1, "Grey Li"))
	assert.Equal(t, 1, updated)

	assert.ErrorIs(t, svc.UpdateName(context.Background(), 1, ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateName(context.Background(), 1, strings.Repeat("n", 21)), ErrInvalidInput)
	assert.Equal(t, []string{"Grey Li"}, repo.renamed)
}

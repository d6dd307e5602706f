package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/auth"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T, repo *fakeUsersRepo) *TokenValidator {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewTokenValidator(db, &fakeRepoManager{u: repo}, testConfig())
}

func mustToken(t *testing.T, userID int64, secret string, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte(secret), validity)
	require.NoError(t, err)
	return tok
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUsersRepo()
	alice := &models.User{ID: 7, UserName: "alice"}
	repo.byID[7] = alice

	v := newValidator(t, repo)
	good := mustToken(t, 7, "k", time.Hour)

	tests := []struct {
		name    string
		header  string
		want    *models.User
		wantErr error
	}{
		{name: "bearer prefix", header: "Bearer " + good, want: alice},
		{name: "lowercase prefix", header: "bearer " + good, want: alice},
		{name: "bare token", header: good, want: alice},
		{name: "padded", header: "  Bearer   " + good + " ", want: alice},
		{name: "missing", header: "", wantErr: common.ErrMissingToken},
		{name: "prefix only", header: "Bearer ", wantErr: common.ErrMissingToken},
		{name: "lowercase scheme only", header: "  bearer", wantErr: common.ErrMissingToken},
		{name: "scheme with blanks", header: "Bearer \t ", wantErr: common.ErrMissingToken},
		{name: "garbage", header: "Bearer abc.def", wantErr: common.ErrInvalidToken},
		{name: "other key", header: "Bearer " + mustToken(t, 7, "other", time.Hour), wantErr: common.ErrInvalidToken},
		{name: "expired", header: "Bearer " + mustToken(t, 7, "k", -time.Minute), wantErr: common.ErrTokenExpired},
		{name: "user gone", header: "Bearer " + mustToken(t, 8, "k", time.Hour), wantErr: common.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Authenticate(context.Background(), tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate_RepoError(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.getErr = errBoom{}
	v := newValidator(t, repo)

	_, err := v.Authenticate(context.Background(), "Bearer "+mustToken(t, 7, "k", time.Hour))
	assert.ErrorIs(t, err, errBoom{})
	assert.NotErrorIs(t, err, common.ErrUserNotFound)
}

package admin

import (
	"testing"

	"salonbook/models"
	"salonbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func (r *fakeAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	return r.admins[username], nil
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	if r.admins == nil {
		r.admins = map[string]*models.Admin{}
	}
	r.admins[admin.Username] = admin
	return nil
}

func seededRepo(t *testing.T, username, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminRepo{admins: map[string]*models.Admin{
		username: {ID: "admin-1", Username: username, PasswordHash: string(hash)},
	}}
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t, "admin", "s3cret")}

	token, err := svc.Authenticate("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must carry the admin's ID as its subject.
	id, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", id)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t, "admin", "s3cret")}

	_, err := svc.Authenticate("admin", "guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t, "admin", "s3cret")}

	// Same error as a wrong password, so callers cannot probe usernames.
	_, err := svc.Authenticate("ghost", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

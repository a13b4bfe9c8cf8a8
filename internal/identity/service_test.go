package identity

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

func newTestService() (*Service, Repository) {
	repo := NewMemoryRepository()
	return NewService(repo, NewBcryptHasher(bcrypt.MinCost)), repo
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Name: "Alice", Phone: "555-1", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	stored, err := repo.FindByPhone(ctx, "555-1")
	require.NoError(t, err)
	assert.NotEqual(t, "p@ss", stored.PasswordHash)

	authed, err := svc.Authenticate(ctx, Credentials{Phone: "555-1", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, reg := range []Registration{
		{Phone: "1", Password: "x"},
		{Name: "A", Password: "x"},
		{Name: "A", Phone: "1"},
		{Name: "  ", Phone: "1", Password: "x"},
	} {
		_, err := svc.Register(ctx, reg)
		assert.True(t, apperr.Is(err, apperr.KindValidation), "%+v: %v", reg, err)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, Registration{Name: "Alice", Phone: "555-1", Password: "p@ss"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, Registration{Name: "Bob", Phone: "555-1", Password: "other"})
	assert.True(t, apperr.Is(err, apperr.KindDuplicateUser))
}

func TestConcurrentRegistrationsCreateOneAccount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, Registration{Name: "Racer", Phone: "555-9", Password: "pw"})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !apperr.Is(err, apperr.KindDuplicateUser) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	svc, _ := newTestService()
	long := make([]byte, MaxPasswordBytes+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Register(context.Background(), Registration{Name: "A", Phone: "1", Password: string(long)})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestAuthenticateDoesNotRevealWhichPartFailed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, Registration{Name: "Alice", Phone: "555-1", Password: "p@ss"})
	require.NoError(t, err)

	_, unknownErr := svc.Authenticate(ctx, Credentials{Phone: "555-2", Password: "p@ss"})
	_, wrongErr := svc.Authenticate(ctx, Credentials{Phone: "555-1", Password: "nope"})

	require.True(t, apperr.Is(unknownErr, apperr.KindInvalidCredentials))
	require.True(t, apperr.Is(wrongErr, apperr.KindInvalidCredentials))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthenticateRequiresFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, creds := range []Credentials{
		{Phone: "555-1"},
		{Password: "pw"},
		{Phone: "   ", Password: "pw"},
		{Phone: "555-1", Password: " \t"},
	} {
		_, err := svc.Authenticate(ctx, creds)
		require.True(t, apperr.Is(err, apperr.KindValidation), "%q", creds.Phone)
		assert.Equal(t, msgCredentialsRequired, err.(*apperr.Error).Message)
	}
}

func TestProfileAndChangeRole(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Name: "Alice", Phone: "555-1", Password: "p@ss"})
	require.NoError(t, err)

	_, err = svc.Profile(ctx, "missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	updated, err := svc.ChangeRole(ctx, user.ID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, updated.Role)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, profile.Role)

	_, err = svc.ChangeRole(ctx, user.ID, Role("root"))
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

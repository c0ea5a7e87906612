package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/accounthub/account-system/internal/auth"
	"github.com/accounthub/account-system/internal/core/domain"
)

// memoryRepo is an in-memory UserRepository for exercising the service
// without a database.
type memoryRepo struct {
	users  map[string]*domain.User
	nextID int32
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: map[string]*domain.User{}}
}

func (r *memoryRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	copied := *user
	copied.ID = r.nextID
	r.users[user.Username] = &copied
	out := copied
	return &out, nil
}

func (r *memoryRepo) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func newService(repo *memoryRepo) (*UserService, *auth.TokenManager) {
	tokens := auth.NewTokenManager(auth.TokenConfig{Secret: "service-test-secret"})
	return NewUserService(repo, tokens), tokens
}

func seedUser(t *testing.T, repo *memoryRepo, username, password string, open bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Identity:     auth.IdentityMember,
		Open:         open,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func TestRegisterCreatesVerifiableAccount(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)

	result, err := svc.Register(context.Background(), "alice", "secret99")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result != "alice created. id: 1" {
		t.Fatalf("result = %q", result)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "secret99" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret99")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if stored.Identity != auth.IdentityMember || !stored.Open {
		t.Fatalf("new account state = %+v", stored)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestRegisterSequentialIDs(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("user%d", i)
		result, err := svc.Register(context.Background(), name, "secret99")
		if err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
		want := fmt.Sprintf("%s created. id: %d", name, i)
		if result != want {
			t.Fatalf("result = %q, want %q", result, want)
		}
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newMemoryRepo()
	svc, tokens := newService(repo)
	seeded := seedUser(t, repo, "alice", "secret99", true)

	token, err := svc.Login(context.Background(), "alice", "secret99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	principal, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if principal.ID != seeded.ID || principal.Username != "alice" || principal.Identity != auth.IdentityMember {
		t.Fatalf("principal = %+v", principal)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)
	seedUser(t, repo, "alice", "secret99", true)

	_, err := svc.Login(context.Background(), "alice", "not-the-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestLoginUnknownUser(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)

	_, err := svc.Login(context.Background(), "nobody", "secret99")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginClosedAccount(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)
	seedUser(t, repo, "alice", "secret99", false)

	_, err := svc.Login(context.Background(), "alice", "secret99")
	if !errors.Is(err, domain.ErrAccountClosed) {
		t.Fatalf("err = %v, want ErrAccountClosed", err)
	}
}

func TestExists(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)
	seedUser(t, repo, "alice", "secret99", true)

	for _, tc := range []struct {
		username string
		want     bool
	}{
		{"alice", true},
		{"bob", false},
	} {
		got, err := svc.Exists(context.Background(), tc.username)
		if err != nil {
			t.Fatalf("exists(%q): %v", tc.username, err)
		}
		if got != tc.want {
			t.Errorf("exists(%q) = %v, want %v", tc.username, got, tc.want)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)
	seedUser(t, repo, "alice", "secret99", true)

	_, err := svc.Register(context.Background(), "alice", "other-secret")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestLoginErrorNeverLeaksHash(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newService(repo)
	seeded := seedUser(t, repo, "alice", "secret99", true)

	_, err := svc.Login(context.Background(), "alice", "wrong-password")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), seeded.PasswordHash) {
		t.Fatal("error message contains the stored hash")
	}
}

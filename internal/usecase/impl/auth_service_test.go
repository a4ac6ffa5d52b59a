package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"hrdesk/internal/domain/entity"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/domain/repository"
	"hrdesk/internal/infra/auth"
	"hrdesk/internal/infra/persistence/memory"
	mockRepo "hrdesk/internal/mocks/repository"
	mockSvc "hrdesk/internal/mocks/service"
	"hrdesk/internal/usecase"

	"hrdesk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
)

var testIssuedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// directoryFixture wires the real verifiers to an in-memory directory.
type directoryFixture struct {
	service *authService
	store   *memory.Store
	admin   *entity.Credential
	alice   *entity.Credential
	bob     *entity.Credential
}

func newDirectoryFixture(t *testing.T) directoryFixture {
	t.Helper()

	cfg := newTestConfig()
	store := memory.NewStore()
	store.PutEmployee(&entity.Employee{ID: 7, Name: "Alice Martin", Email: "alice.martin@example.com"})

	bcryptHash, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost).Hash("alice123")
	require.NoError(t, err)
	argonHash, err := auth.NewArgon2idHasher().Hash("bob-secret")
	require.NoError(t, err)

	admin := store.PutCredential(&entity.Credential{Username: "admin", Email: "admin@example.com", Secret: "admin123", Role: entity.RoleAdmin})
	alice := store.PutCredential(&entity.Credential{Username: "alice", Email: "alice@example.com", Secret: bcryptHash, Role: entity.RoleHR, EmployeeID: ptr(int64(7))})
	bob := store.PutCredential(&entity.Credential{Email: "bob@example.com", Secret: argonHash, Role: entity.RoleEmployee})

	srv, err := newAuthService(AuthServiceParams{
		CredentialRepo: memory.NewCredentialRepository(store),
		Verifier:       auth.NewSecretVerifier(cfg),
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:         cfg,
		Logger:         newDiscardLogger(),
	}, fixedClock(testIssuedAt))
	require.NoError(t, err)

	return directoryFixture{service: srv, store: store, admin: admin, alice: alice, bob: bob}
}

func TestAuthenticate_EveryIdentifierOfEveryRecordForm(t *testing.T) {
	fx := newDirectoryFixture(t)

	tests := []struct {
		name       string
		identifier string
		password   string
		want       *entity.Credential
		canonical  string
	}{
		{name: "plaintext by username", identifier: "admin", password: "admin123", want: fx.admin, canonical: "admin"},
		{name: "plaintext by email", identifier: "admin@example.com", password: "admin123", want: fx.admin, canonical: "admin"},
		{name: "plaintext upper-cased identifier", identifier: "ADMIN@Example.com", password: "admin123", want: fx.admin, canonical: "admin"},
		{name: "bcrypt by username", identifier: "alice", password: "alice123", want: fx.alice, canonical: "alice"},
		{name: "bcrypt by email", identifier: "alice@example.com", password: "alice123", want: fx.alice, canonical: "alice"},
		{name: "bcrypt by employee email", identifier: "alice.martin@example.com", password: "alice123", want: fx.alice, canonical: "alice"},
		{name: "argon2id by email", identifier: "  bob@example.com ", password: "bob-secret", want: fx.bob, canonical: "bob@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{
				Identifier: tt.identifier,
				Password:   tt.password,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want.SubjectID, claim.SubjectID)
			assert.Equal(t, tt.want.Role, claim.Role)
			assert.Equal(t, tt.canonical, claim.Identifier)
			assert.Equal(t, time.Hour, claim.ExpiresAt.Sub(claim.IssuedAt))
		})
	}
}

func TestAuthenticate_AdminScenario(t *testing.T) {
	fx := newDirectoryFixture(t)

	claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{
		Identifier: "admin",
		Password:   "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, claim.Role)
	assert.Equal(t, "admin", claim.Identifier)
	assert.Nil(t, claim.LinkedProfileID)
	assert.Equal(t, testIssuedAt, claim.IssuedAt)
	assert.Equal(t, testIssuedAt.Add(time.Hour), claim.ExpiresAt)
}

func TestAuthenticate_LinkedProfile(t *testing.T) {
	fx := newDirectoryFixture(t)

	claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "alice", Password: "alice123"})
	require.NoError(t, err)
	require.NotNil(t, claim.LinkedProfileID)
	assert.Equal(t, int64(7), *claim.LinkedProfileID)

	fx.store.RemoveEmployee(7)

	claim, err = fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "alice", Password: "alice123"})
	require.NoError(t, err)
	assert.Nil(t, claim.LinkedProfileID)
}

func TestAuthenticate_RepeatedCallsIssueIndependentClaims(t *testing.T) {
	fx := newDirectoryFixture(t)
	input := &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"}

	first, err := fx.service.Authenticate(context.Background(), input)
	require.NoError(t, err)
	second, err := fx.service.Authenticate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.SubjectID, second.SubjectID)
	assert.Equal(t, first.Role, second.Role)
	assert.True(t, second.IssuedAt.After(first.IssuedAt))
	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestAuthenticate_Rejections(t *testing.T) {
	fx := newDirectoryFixture(t)

	tests := []struct {
		name    string
		input   *usecase.AuthenticateInput
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrInvalidRequest},
		{name: "empty identifier", input: &usecase.AuthenticateInput{Password: "admin123"}, wantErr: domainerrors.ErrInvalidRequest},
		{name: "blank identifier", input: &usecase.AuthenticateInput{Identifier: "   ", Password: "admin123"}, wantErr: domainerrors.ErrInvalidRequest},
		{name: "empty password", input: &usecase.AuthenticateInput{Identifier: "admin"}, wantErr: domainerrors.ErrInvalidRequest},
		{name: "wrong plaintext password", input: &usecase.AuthenticateInput{Identifier: "admin", Password: "admin124"}, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "password case matters", input: &usecase.AuthenticateInput{Identifier: "admin", Password: "ADMIN123"}, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "wrong bcrypt password", input: &usecase.AuthenticateInput{Identifier: "alice", Password: "alice124"}, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "wrong argon2id password", input: &usecase.AuthenticateInput{Identifier: "bob@example.com", Password: "nope"}, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "unknown identifier", input: &usecase.AuthenticateInput{Identifier: "mallory", Password: "admin123"}, wantErr: domainerrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim, err := fx.service.Authenticate(context.Background(), tt.input)
			assert.Nil(t, claim)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAuthenticate_StoredHashIsNotAPassword(t *testing.T) {
	fx := newDirectoryFixture(t)

	claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{
		Identifier: "alice",
		Password:   fx.alice.Secret,
	})
	assert.Nil(t, claim)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// mockFixture wires mocks for the failure paths the real directory cannot produce.
type mockFixture struct {
	service  *authService
	repo     *mockRepo.MockCredentialRepository
	verifier *mockSvc.MockSecretVerifier
	tokens   *mockSvc.MockTokenService
}

func newMockFixture(t *testing.T) mockFixture {
	t.Helper()

	repo := mockRepo.NewMockCredentialRepository(t)
	verifier := mockSvc.NewMockSecretVerifier(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$04$dummy", nil).Once()

	cfg := newTestConfig()
	cfg.Auth.LookupTimeout = 50 * time.Millisecond

	srv, err := newAuthService(AuthServiceParams{
		CredentialRepo: repo,
		Verifier:       verifier,
		Hasher:         hasher,
		TokenService:   tokens,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	}, fixedClock(testIssuedAt))
	require.NoError(t, err)

	return mockFixture{service: srv, repo: repo, verifier: verifier, tokens: tokens}
}

func TestAuthenticate_UnknownIdentifierStillVerifiesDummySecret(t *testing.T) {
	fx := newMockFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "ghost").Return(nil, repository.ErrCredentialNotFound).Once()
	fx.verifier.EXPECT().Verify("pw", "$2a$04$dummy").Return(false, nil).Once()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Identifier: "ghost", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_AmbiguousIdentifierIsInvalidCredentials(t *testing.T) {
	fx := newMockFixture(t)

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "shared@example.com").Return(nil, repository.ErrAmbiguousIdentifier).Once()
	fx.verifier.EXPECT().Verify("pw", "$2a$04$dummy").Return(false, nil).Once()

	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "shared@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_DirectoryFailure(t *testing.T) {
	fx := newMockFixture(t)

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(nil, errors.New("connection refused")).Once()

	claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.Nil(t, claim)
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_LookupTimeout(t *testing.T) {
	fx := newMockFixture(t)
	release := make(chan struct{})
	defer close(release)

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Credential, error) {
			// A directory that ignores its context.
			<-release

			return nil, repository.ErrCredentialNotFound
		}).Once()

	start := time.Now()
	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))
	assert.Less(t, time.Since(start), time.Second)
}

func TestAuthenticate_CancelledDuringVerification(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "admin123", Role: entity.RoleAdmin}
	started := make(chan struct{})
	release := make(chan struct{})

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", "admin123").
		RunAndReturn(func(string, string) (bool, error) {
			close(started)
			<-release

			return true, nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	claim, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.Nil(t, claim)
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))

	// The abandoned comparison finishes on its own once unblocked.
	close(release)
}

func TestAuthenticate_AlreadyCancelled(t *testing.T) {
	fx := newMockFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))
	fx.repo.AssertNotCalled(t, "FindByIdentifier", mock.Anything, mock.Anything)
}

func TestAuthenticate_MalformedStoredSecret(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "$2a$10$broken", Role: entity.RoleAdmin}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", cred.Secret).Return(false, auth.ErrMalformedSecret).Once()

	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_ArgonHashWithInvalidParameters(t *testing.T) {
	fx := newDirectoryFixture(t)
	fx.store.PutCredential(&entity.Credential{
		Username: "carol",
		Email:    "carol@example.com",
		Secret:   "$argon2id$v=19$m=65536,t=0,p=4$c2FsdHNhbHRzYWx0$aGFzaGhhc2hoYXNoaGFzaA",
		Role:     entity.RoleEmployee,
	})

	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "carol", Password: "anything"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_VerifierPanicIsInvalidCredentials(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "$2a$10$broken", Role: entity.RoleAdmin}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", cred.Secret).
		RunAndReturn(func(string, string) (bool, error) { panic("boom") }).Once()

	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticate_LinkedProfileFailure(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 2, Username: "alice", Secret: "alice123", Role: entity.RoleHR, EmployeeID: ptr(int64(7))}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "alice").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("alice123", "alice123").Return(true, nil).Once()
	fx.repo.EXPECT().ResolveLinkedProfile(mock.Anything, int64(2)).Return(nil, errors.New("timeout")).Once()

	_, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "alice", Password: "alice123"})
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))
}

func TestAuthenticate_NoLinkedProfileSkipsResolution(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "admin123", Role: entity.RoleAdmin}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", "admin123").Return(true, nil).Once()

	claim, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Nil(t, claim.LinkedProfileID)
	fx.repo.AssertNotCalled(t, "ResolveLinkedProfile", mock.Anything, mock.Anything)
}

func TestLogin_SignsClaim(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "admin123", Role: entity.RoleAdmin}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", "admin123").Return(true, nil).Once()
	fx.tokens.EXPECT().Sign(mock.MatchedBy(func(c *entity.SessionClaim) bool {
		return c.SubjectID == 1 && c.Role == entity.RoleAdmin
	})).Return("signed.jwt.token", nil).Once()

	out, err := fx.service.Login(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, int64(1), out.Claim.SubjectID)
}

func TestLogin_SigningFailure(t *testing.T) {
	fx := newMockFixture(t)
	cred := &entity.Credential{SubjectID: 1, Username: "admin", Secret: "admin123", Role: entity.RoleAdmin}

	fx.repo.EXPECT().FindByIdentifier(mock.Anything, "admin").Return(cred, nil).Once()
	fx.verifier.EXPECT().Verify("admin123", "admin123").Return(true, nil).Once()
	fx.tokens.EXPECT().Sign(mock.Anything).Return("", errors.New("hsm offline")).Once()

	_, err := fx.service.Login(context.Background(), &usecase.AuthenticateInput{Identifier: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestLogin_PropagatesAuthenticationError(t *testing.T) {
	fx := newMockFixture(t)

	_, err := fx.service.Login(context.Background(), &usecase.AuthenticateInput{Identifier: "", Password: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
	fx.tokens.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestVerifySession(t *testing.T) {
	fx := newMockFixture(t)
	claim := &entity.SessionClaim{SubjectID: 1, Role: entity.RoleAdmin}

	fx.tokens.EXPECT().Parse("good").Return(claim, nil).Once()
	fx.tokens.EXPECT().Parse("bad").Return(nil, auth.ErrInvalidToken).Once()

	got, err := fx.service.VerifySession(context.Background(), "good")
	require.NoError(t, err)
	assert.Same(t, claim, got)

	_, err = fx.service.VerifySession(context.Background(), "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = fx.service.VerifySession(context.Background(), " ")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestNewAuthService_Defaults(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("$2a$04$dummy", nil).Once()

	srv, err := newAuthService(AuthServiceParams{Hasher: hasher, Logger: newDiscardLogger()}, time.Now)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, srv.sessionTTL)
	assert.Equal(t, 3*time.Second, srv.lookupTimeout)
	assert.True(t, strings.HasPrefix(srv.dummySecret, "$2a$"))
}

func TestNewAuthService_DummySecretFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("no entropy")).Once()

	_, err := newAuthService(AuthServiceParams{Hasher: hasher, Logger: newDiscardLogger()}, time.Now)
	assert.Error(t, err)
}

package services

import (
	"context"
	"errors"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/logger"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/models"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/repositories"
)

// ErrInvalidCredentials is returned by Login for both an unknown username
// and a wrong password, so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid username or password")

// dummyPasswordHash is verified against when the username does not exist,
// so both login failure modes take comparable time. The verification result
// is always discarded.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (int64, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// PasswordHasher defines one-way hashing and verification of passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Validator defines credential validation for registration and login input.
type Validator interface {
	ValidateRegistration(ctx context.Context, rawUsername, rawPassword string) (*models.Credentials, error)
	ValidateLogin(ctx context.Context, rawUsername, rawPassword string) (*models.Credentials, error)
}

// AuthService handles registration and login.
type AuthService struct {
	validator Validator
	reader    UserReader
	writer    UserWriter
	hasher    PasswordHasher
	tokens    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(validator Validator, reader UserReader, writer UserWriter, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		validator: validator,
		reader:    reader,
		writer:    writer,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// Register validates the submitted credentials, creates the user record and
// returns a session token for it. A *ValidationError is returned when the
// input fails any rule, including a username collision.
func (svc *AuthService) Register(ctx context.Context, rawUsername, rawPassword string) (string, error) {
	creds, err := svc.validator.ValidateRegistration(ctx, rawUsername, rawPassword)
	if err != nil {
		return "", err
	}

	hashed, err := svc.hasher.Hash(creds.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	id, err := svc.writer.Save(ctx, creds.Username, hashed)
	if err != nil {
		// The validator's availability check raced with a concurrent
		// insert; the UNIQUE constraint wins.
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return "", &ValidationError{Messages: []string{MsgUsernameTaken}}
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, id, creds.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Login authenticates a user and returns a session token. No token is ever
// issued for a failed login.
func (svc *AuthService) Login(ctx context.Context, rawUsername, rawPassword string) (string, error) {
	creds, err := svc.validator.ValidateLogin(ctx, rawUsername, rawPassword)
	if err != nil {
		return "", err
	}

	user, err := svc.reader.GetByUsername(ctx, creds.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		svc.hasher.Verify(creds.Password, dummyPasswordHash)
		return "", ErrInvalidCredentials
	}

	if !svc.hasher.Verify(creds.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

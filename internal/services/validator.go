package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/logger"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/models"
)

// User-facing validation messages, in the order the rules are evaluated.
const (
	MsgUsernameRequired   = "Username is required"
	MsgUsernameLength     = "Username must be between 3 and 13 characters"
	MsgUsernameCharset    = "Username may only contain letters and numbers"
	MsgUsernameTaken      = "Username is already taken"
	MsgPasswordRequired   = "Password is required"
	MsgPasswordLength     = "Password must be between 8 and 100 characters"
	MsgPasswordCharset    = "Password may only contain letters and numbers"
	MsgInvalidCredentials = "Invalid username or password"
)

// alphanumeric applies to both usernames and passwords; special characters
// are deliberately not accepted in passwords.
var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidationError collects every rule a registration or login submission
// violated, as messages ready to render back to the user.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// CredentialValidator applies syntactic rules to raw form input and checks
// username availability against the user repository.
type CredentialValidator struct {
	reader UserReader
}

// NewCredentialValidator creates a new CredentialValidator instance.
func NewCredentialValidator(reader UserReader) *CredentialValidator {
	return &CredentialValidator{reader: reader}
}

// ValidateRegistration trims both fields and applies every registration rule,
// accumulating messages rather than stopping at the first failure. A non-nil
// error is either a *ValidationError or a repository failure.
func (v *CredentialValidator) ValidateRegistration(ctx context.Context, rawUsername, rawPassword string) (*models.Credentials, error) {
	username := strings.TrimSpace(rawUsername)
	password := strings.TrimSpace(rawPassword)

	var msgs []string

	if username == "" {
		msgs = append(msgs, MsgUsernameRequired)
	} else {
		if len(username) < 3 || len(username) > 13 {
			msgs = append(msgs, MsgUsernameLength)
		}
		if !alphanumeric.MatchString(username) {
			msgs = append(msgs, MsgUsernameCharset)
		}

		// The uniqueness check runs even when syntactic rules already
		// failed, but never for an empty username.
		existing, err := v.reader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username availability", "err", err)
			return nil, err
		}
		if existing != nil {
			msgs = append(msgs, MsgUsernameTaken)
		}
	}

	if password == "" {
		msgs = append(msgs, MsgPasswordRequired)
	} else {
		if len(password) < 8 || len(password) > 100 {
			msgs = append(msgs, MsgPasswordLength)
		}
		if !alphanumeric.MatchString(password) {
			msgs = append(msgs, MsgPasswordCharset)
		}
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	return &models.Credentials{Username: username, Password: password}, nil
}

// ValidateLogin only requires both fields to be non-empty after trimming.
// It reports a single generic message so a failed login never reveals
// whether the username or the password was wrong.
func (v *CredentialValidator) ValidateLogin(ctx context.Context, rawUsername, rawPassword string) (*models.Credentials, error) {
	username := strings.TrimSpace(rawUsername)
	password := strings.TrimSpace(rawPassword)

	if username == "" || password == "" {
		return nil, &ValidationError{Messages: []string{MsgInvalidCredentials}}
	}

	return &models.Credentials{Username: username, Password: password}, nil
}

package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/models"
	"github.com/tamisweitzer/Our-Wonderful-App/internal/services"
)

func TestCredentialValidator_ValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		existing   *models.UserDB
		skipLookup bool // no repository query expected
		wantMsgs   []string
		wantCreds  *models.Credentials
	}{
		{
			name:      "valid input",
			username:  "alice123",
			password:  "password1",
			wantCreds: &models.Credentials{Username: "alice123", Password: "password1"},
		},
		{
			name:      "input is trimmed",
			username:  "  alice123  ",
			password:  "\tpassword1\n",
			wantCreds: &models.Credentials{Username: "alice123", Password: "password1"},
		},
		{
			name:       "empty username skips the uniqueness lookup",
			username:   "   ",
			password:   "password1",
			skipLookup: true,
			wantMsgs:   []string{services.MsgUsernameRequired},
		},
		{
			name:     "username too short",
			username: "ab",
			password: "password1",
			wantMsgs: []string{services.MsgUsernameLength},
		},
		{
			name:     "username too long",
			username: "abcdefghijklmn", // 14 chars
			password: "password1",
			wantMsgs: []string{services.MsgUsernameLength},
		},
		{
			name:      "username boundary lengths are accepted",
			username:  "abc",
			password:  "password1",
			wantCreds: &models.Credentials{Username: "abc", Password: "password1"},
		},
		{
			name:     "username with special characters",
			username: "alice_123",
			password: "password1",
			wantMsgs: []string{services.MsgUsernameCharset},
		},
		{
			name:     "short and non-alphanumeric username accumulates both",
			username: "a!",
			password: "password1",
			wantMsgs: []string{services.MsgUsernameLength, services.MsgUsernameCharset},
		},
		{
			name:     "username taken",
			username: "alice123",
			password: "password1",
			existing: &models.UserDB{UserID: 1, Username: "alice123"},
			wantMsgs: []string{services.MsgUsernameTaken},
		},
		{
			name:     "uniqueness is still checked when syntax fails",
			username: "alice!",
			password: "password1",
			existing: &models.UserDB{UserID: 1, Username: "alice!"},
			wantMsgs: []string{services.MsgUsernameCharset, services.MsgUsernameTaken},
		},
		{
			name:       "empty password",
			username:   "",
			password:   "",
			skipLookup: true,
			wantMsgs:   []string{services.MsgUsernameRequired, services.MsgPasswordRequired},
		},
		{
			name:     "password too short",
			username: "alice123",
			password: "pass1",
			wantMsgs: []string{services.MsgPasswordLength},
		},
		{
			name:     "password too long",
			username: "alice123",
			password: strings.Repeat("a", 101),
			wantMsgs: []string{services.MsgPasswordLength},
		},
		{
			name:      "password boundary lengths are accepted",
			username:  "alice123",
			password:  strings.Repeat("a", 100),
			wantCreds: &models.Credentials{Username: "alice123", Password: strings.Repeat("a", 100)},
		},
		{
			name:     "password with special characters",
			username: "alice123",
			password: "pass word!1",
			wantMsgs: []string{services.MsgPasswordCharset},
		},
		{
			name:     "all failures accumulate in rule order",
			username: "a!",
			password: "p!",
			wantMsgs: []string{
				services.MsgUsernameLength,
				services.MsgUsernameCharset,
				services.MsgPasswordLength,
				services.MsgPasswordCharset,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			if !tt.skipLookup {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), strings.TrimSpace(tt.username)).
					Return(tt.existing, nil)
			}

			v := services.NewCredentialValidator(mockReader)
			creds, err := v.ValidateRegistration(context.Background(), tt.username, tt.password)

			if len(tt.wantMsgs) > 0 {
				assert.Nil(t, creds)
				var vErr *services.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantMsgs, vErr.Messages)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCreds, creds)
			}
		})
	}
}

func TestCredentialValidator_ValidateRegistration_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice123").
		Return(nil, assert.AnError)

	v := services.NewCredentialValidator(mockReader)
	creds, err := v.ValidateRegistration(context.Background(), "alice123", "password1")

	assert.Nil(t, creds)
	assert.ErrorIs(t, err, assert.AnError)

	// A storage failure is not a validation failure.
	var vErr *services.ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestCredentialValidator_ValidateLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	v := services.NewCredentialValidator(mockReader)

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"both present", "alice123", "password1", true},
		{"trimmed", " alice123 ", " password1 ", true},
		{"missing username", "", "password1", false},
		{"missing password", "alice123", "", false},
		{"whitespace only", "   ", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := v.ValidateLogin(context.Background(), tt.username, tt.password)
			if tt.wantOK {
				assert.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.username), creds.Username)
			} else {
				assert.Nil(t, creds)

				var vErr *services.ValidationError
				assert.ErrorAs(t, err, &vErr)
				// One generic message; never reveals which field was wrong.
				assert.Equal(t, []string{services.MsgInvalidCredentials}, vErr.Messages)
			}
		})
	}
}

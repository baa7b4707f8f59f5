package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tamisweitzer/Our-Wonderful-App/internal/services"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	rnd, err := NewRenderer()
	assert.NoError(t, err)
	return rnd
}

func postForm(t *testing.T, handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	return nil
}

func TestRegisterHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "alice123", "password1").
		Return("token123", nil)

	handler := NewRegisterHandler(mockSvc, newTestRenderer(t), 24*time.Hour)
	rr := postForm(t, handler, "/register", url.Values{
		"username": {"alice123"},
		"password": {"password1"},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/profile", rr.Header().Get("Location"))

	cookie := sessionCookie(rr.Result())
	assert.NotNil(t, cookie)
	assert.Equal(t, "token123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 86400, cookie.MaxAge)
}

func TestRegisterHandler_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "a!", "short").
		Return("", &services.ValidationError{Messages: []string{
			services.MsgUsernameLength,
			services.MsgUsernameCharset,
			services.MsgPasswordLength,
		}})

	handler := NewRegisterHandler(mockSvc, newTestRenderer(t), 24*time.Hour)
	rr := postForm(t, handler, "/register", url.Values{
		"username": {"a!"},
		"password": {"short"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, services.MsgUsernameLength)
	assert.Contains(t, body, services.MsgUsernameCharset)
	assert.Contains(t, body, services.MsgPasswordLength)

	// No session on a failed registration.
	assert.Nil(t, sessionCookie(rr.Result()))
}

func TestRegisterHandler_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "alice123", "password1").
		Return("", assert.AnError)

	handler := NewRegisterHandler(mockSvc, newTestRenderer(t), 24*time.Hour)
	rr := postForm(t, handler, "/register", url.Values{
		"username": {"alice123"},
		"password": {"password1"},
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Nil(t, sessionCookie(rr.Result()))
}

func TestRegisterPageHandler(t *testing.T) {
	handler := NewRegisterPageHandler(newTestRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/register"`)
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/sociable-server/internal/api/http/context"
	"github.com/dtroode/sociable-server/internal/mocks"
	"github.com/dtroode/sociable-server/internal/model"
	"github.com/dtroode/sociable-server/internal/testutil"
)

func TestAuthenticate_Require_MissingToken(t *testing.T) {
	tokMan := &mocks.TokenManager{}
	mw := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	called := false
	h := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, float64(1), body["resultCode"])
}

func TestAuthenticate_Require_InvalidToken(t *testing.T) {
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "bad-token").Return(model.TokenPayload{}, errors.New("token is invalid"))

	mw := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	called := false
	h := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_Require_WrongScheme(t *testing.T) {
	tokMan := &mocks.TokenManager{}
	mw := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	h := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	tokMan.AssertNotCalled(t, "Parse", mock.Anything)
}

func TestAuthenticate_Require_ValidToken(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "good-token").Return(model.TokenPayload{UserID: 7, Email: "a@b.c"}, nil)

	mw := NewAuthenticate(tokMan, ctxMgr, testutil.MakeNoopLogger())

	var gotSession model.TokenPayload
	h := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := ctxMgr.GetSessionFromContext(r.Context())
		require.True(t, ok)
		gotSession = session
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotSession.UserID)
	assert.Equal(t, "a@b.c", gotSession.Email)
}

func TestAuthenticate_Optional_Anonymous(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	tokMan := &mocks.TokenManager{}
	mw := NewAuthenticate(tokMan, ctxMgr, testutil.MakeNoopLogger())

	h := mw.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ctxMgr.GetSessionFromContext(r.Context())
		assert.False(t, ok)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_Optional_BadTokenStaysAnonymous(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "bad-token").Return(model.TokenPayload{}, errors.New("token is invalid"))

	mw := NewAuthenticate(tokMan, ctxMgr, testutil.MakeNoopLogger())

	h := mw.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ctxMgr.GetSessionFromContext(r.Context())
		assert.False(t, ok)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_Optional_ValidToken(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "good-token").Return(model.TokenPayload{UserID: 7}, nil)

	mw := NewAuthenticate(tokMan, ctxMgr, testutil.MakeNoopLogger())

	h := mw.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := ctxMgr.GetSessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(7), session.UserID)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

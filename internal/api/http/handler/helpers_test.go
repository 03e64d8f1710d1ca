package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/sociable-server/internal/api/http/context"
	"github.com/dtroode/sociable-server/internal/model"
	"github.com/dtroode/sociable-server/internal/service"
)

type fakeAuthService struct {
	register func(ctx context.Context, email, username, password string) (service.Session, error)
	login    func(ctx context.Context, email, password string) (service.Session, error)
	me       func(ctx context.Context, userID int64) (model.PublicUser, error)
}

func (f *fakeAuthService) Register(ctx context.Context, email, username, password string) (service.Session, error) {
	return f.register(ctx, email, username, password)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (service.Session, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthService) Me(ctx context.Context, userID int64) (model.PublicUser, error) {
	return f.me(ctx, userID)
}

type fakePostService struct {
	create       func(ctx context.Context, title, content string, authorID int64) (model.PostWithAuthor, error)
	get          func(ctx context.Context, id int64) (model.PostWithAuthor, error)
	listAll      func(ctx context.Context, limit, offset int) ([]model.PostWithAuthor, error)
	listByAuthor func(ctx context.Context, authorID int64, limit, offset int) ([]model.PostWithAuthor, error)
	update       func(ctx context.Context, id int64, patch model.PostPatch, callerID int64) (model.PostWithAuthor, error)
	delete       func(ctx context.Context, id int64, callerID int64) error
}

func (f *fakePostService) Create(ctx context.Context, title, content string, authorID int64) (model.PostWithAuthor, error) {
	return f.create(ctx, title, content, authorID)
}

func (f *fakePostService) Get(ctx context.Context, id int64) (model.PostWithAuthor, error) {
	return f.get(ctx, id)
}

func (f *fakePostService) ListAll(ctx context.Context, limit, offset int) ([]model.PostWithAuthor, error) {
	return f.listAll(ctx, limit, offset)
}

func (f *fakePostService) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.PostWithAuthor, error) {
	return f.listByAuthor(ctx, authorID, limit, offset)
}

func (f *fakePostService) Update(ctx context.Context, id int64, patch model.PostPatch, callerID int64) (model.PostWithAuthor, error) {
	return f.update(ctx, id, patch, callerID)
}

func (f *fakePostService) Delete(ctx context.Context, id int64, callerID int64) error {
	return f.delete(ctx, id, callerID)
}

type fakeProfileService struct {
	get         func(ctx context.Context, userID int64) (model.Profile, error)
	update      func(ctx context.Context, userID int64, input model.ProfileUpdate) error
	getStatus   func(ctx context.Context, userID int64) (string, error)
	setStatus   func(ctx context.Context, userID int64, status string) error
	updatePhoto func(ctx context.Context, userID int64) error
}

func (f *fakeProfileService) Get(ctx context.Context, userID int64) (model.Profile, error) {
	return f.get(ctx, userID)
}

func (f *fakeProfileService) Update(ctx context.Context, userID int64, input model.ProfileUpdate) error {
	return f.update(ctx, userID, input)
}

func (f *fakeProfileService) GetStatus(ctx context.Context, userID int64) (string, error) {
	return f.getStatus(ctx, userID)
}

func (f *fakeProfileService) SetStatus(ctx context.Context, userID int64, status string) error {
	return f.setStatus(ctx, userID, status)
}

func (f *fakeProfileService) UpdatePhoto(ctx context.Context, userID int64) error {
	return f.updatePhoto(ctx, userID)
}

type fakeFollowService struct {
	isFollowing  func(ctx context.Context, followerID, followingID int64) (bool, error)
	followUser   func(ctx context.Context, followerID, followingID int64) error
	unfollowUser func(ctx context.Context, followerID, followingID int64) error
}

func (f *fakeFollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return f.isFollowing(ctx, followerID, followingID)
}

func (f *fakeFollowService) FollowUser(ctx context.Context, followerID, followingID int64) error {
	return f.followUser(ctx, followerID, followingID)
}

func (f *fakeFollowService) UnfollowUser(ctx context.Context, followerID, followingID int64) error {
	return f.unfollowUser(ctx, followerID, followingID)
}

type fakeDirectoryService struct {
	list func(ctx context.Context, page, count int, term string, viewerID *int64) (service.DirectoryPage, error)
}

func (f *fakeDirectoryService) List(ctx context.Context, page, count int, term string, viewerID *int64) (service.DirectoryPage, error) {
	return f.list(ctx, page, count, term, viewerID)
}

// withSession injects an authenticated session the way the middleware
// would.
func withSession(r *http.Request, userID int64) *http.Request {
	ctx := httpctx.NewManager().SetSessionToContext(r.Context(), model.TokenPayload{UserID: userID, Email: "a@b.c"})
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, body io.Reader) Envelope {
	t.Helper()
	var envelope Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

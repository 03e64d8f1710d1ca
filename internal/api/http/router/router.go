// Package router wires handlers and middleware into the HTTP mux.
package router

import (
	"net/http"

	"github.com/dtroode/sociable-server/internal/api/http/handler"
	"github.com/dtroode/sociable-server/internal/api/http/middleware"
	"github.com/dtroode/sociable-server/internal/logger"
)

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Auth     *handler.Auth
	Post     *handler.Post
	Profile  *handler.Profile
	Follow   *handler.Follow
	Users    *handler.Users
	Security *handler.Security
}

// New builds the HTTP routing table. Mutating endpoints require
// authentication; the directory and public reads resolve the viewer
// opportunistically.
func New(h Handlers, auth *middleware.Authenticate, logging *middleware.Logging, logger *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/auth/me", auth.Require(http.HandlerFunc(h.Auth.Me)))

	mux.HandleFunc("GET /api/posts", h.Post.List)
	mux.HandleFunc("GET /api/posts/{id}", h.Post.Get)
	mux.HandleFunc("GET /api/users/{authorId}/posts", h.Post.ListByAuthor)
	mux.Handle("POST /api/posts", auth.Require(http.HandlerFunc(h.Post.Create)))
	mux.Handle("PUT /api/posts/{id}", auth.Require(http.HandlerFunc(h.Post.Update)))
	mux.Handle("DELETE /api/posts/{id}", auth.Require(http.HandlerFunc(h.Post.Delete)))

	mux.HandleFunc("GET /api/profile/{userId}", h.Profile.Get)
	mux.Handle("PUT /api/profile", auth.Require(http.HandlerFunc(h.Profile.Update)))
	mux.HandleFunc("GET /api/profile/status/{userId}", h.Profile.GetStatus)
	mux.Handle("PUT /api/profile/status", auth.Require(http.HandlerFunc(h.Profile.SetStatus)))
	mux.Handle("PUT /api/profile/photo", auth.Require(http.HandlerFunc(h.Profile.UpdatePhoto)))

	mux.Handle("GET /api/follow/{userId}", auth.Require(http.HandlerFunc(h.Follow.Check)))
	mux.Handle("POST /api/follow/{userId}", auth.Require(http.HandlerFunc(h.Follow.Follow)))
	mux.Handle("DELETE /api/follow/{userId}", auth.Require(http.HandlerFunc(h.Follow.Unfollow)))

	mux.Handle("GET /api/users", auth.Optional(http.HandlerFunc(h.Users.List)))

	mux.HandleFunc("GET /api/security/captcha-url", h.Security.CaptchaURL)

	return logging.Handle(mux)
}

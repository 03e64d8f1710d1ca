//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/sociable-server/internal/model"
	repo "github.com/dtroode/sociable-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "sociable_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/sociable_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func createUser(t *testing.T, ur *repo.UserRepository, email, username string) model.User {
	t.Helper()
	user, err := ur.Create(context.Background(), model.User{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$hashhashhashhashhashha",
	})
	require.NoError(t, err)
	return user
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)

		user := createUser(t, ur, "user@example.com", "user")
		require.NotZero(t, user.ID)

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "user", byID.Username)

		_, err = ur.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = ur.Create(ctx, model.User{
			Email:        "user@example.com",
			Username:     "other",
			PasswordHash: "x",
		})
		require.ErrorIs(t, err, model.ErrDuplicate)

		_, err = ur.Create(ctx, model.User{
			Email:        "other@example.com",
			Username:     "user",
			PasswordHash: "x",
		})
		require.ErrorIs(t, err, model.ErrDuplicate)
	})

	t.Run("post_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		pr := repo.NewPostRepository(conn)

		author := createUser(t, ur, "author@example.com", "author")

		first, err := pr.Create(ctx, "first", "content one", author.ID)
		require.NoError(t, err)
		second, err := pr.Create(ctx, "second", "content two", author.ID)
		require.NoError(t, err)

		got, err := pr.GetByIDWithAuthor(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, "first", got.Title)
		require.Equal(t, "author", got.Author.Username)

		list, err := pr.ListByAuthor(ctx, author.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		// Newest first.
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)

		updated, err := pr.Update(ctx, model.Post{ID: first.ID, Title: "renamed", Content: first.Content})
		require.NoError(t, err)
		require.Equal(t, "renamed", updated.Title)
		require.Equal(t, "content one", updated.Content)

		require.NoError(t, pr.Delete(ctx, first.ID))
		require.ErrorIs(t, pr.Delete(ctx, first.ID), model.ErrNotFound)

		_, err = pr.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("profile_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		pr := repo.NewProfileRepository(conn)

		user := createUser(t, ur, "profiled@example.com", "profiled")

		// No profile row yet: defaults, with full name falling back to the
		// username.
		profile, err := pr.Get(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.ID, profile.UserID)
		require.Equal(t, "profiled", profile.FullName)
		require.Empty(t, profile.AboutMe)
		require.False(t, profile.LookingForAJob)
		require.Nil(t, profile.Contacts.GitHub)
		require.Nil(t, profile.Photos.Small)

		_, err = pr.Get(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)

		github := "https://github.com/profiled"
		err = pr.Upsert(ctx, user.ID, model.ProfileUpdate{
			AboutMe:        "hello",
			FullName:       "Profiled Person",
			LookingForAJob: true,
			Contacts:       model.ProfileContacts{GitHub: &github},
		})
		require.NoError(t, err)

		profile, err = pr.Get(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Profiled Person", profile.FullName)
		require.True(t, profile.LookingForAJob)
		require.NotNil(t, profile.Contacts.GitHub)
		require.Equal(t, github, *profile.Contacts.GitHub)
		require.Nil(t, profile.Contacts.Twitter)

		status, err := pr.GetStatus(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, status)

		require.NoError(t, pr.SetStatus(ctx, user.ID, "busy"))
		status, err = pr.GetStatus(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "busy", status)

		// Status write must not clobber the rest of the profile.
		profile, err = pr.Get(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Profiled Person", profile.FullName)

		// Missing user polls as empty status, not an error.
		status, err = pr.GetStatus(ctx, 999999)
		require.NoError(t, err)
		require.Empty(t, status)
	})

	t.Run("follow_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		fr := repo.NewFollowRepository(conn)

		follower := createUser(t, ur, "follower@example.com", "follower")
		followee := createUser(t, ur, "followee@example.com", "followee")

		followed, err := fr.Exists(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		require.False(t, followed)

		require.NoError(t, fr.Create(ctx, follower.ID, followee.ID))
		// Idempotent.
		require.NoError(t, fr.Create(ctx, follower.ID, followee.ID))

		followed, err = fr.Exists(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		require.True(t, followed)

		// Directed: the reverse edge does not exist.
		followed, err = fr.Exists(ctx, followee.ID, follower.ID)
		require.NoError(t, err)
		require.False(t, followed)

		require.NoError(t, fr.Delete(ctx, follower.ID, followee.ID))
		require.NoError(t, fr.Delete(ctx, follower.ID, followee.ID))

		followed, err = fr.Exists(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		require.False(t, followed)
	})

	t.Run("directory_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		fr := repo.NewFollowRepository(conn)
		pr := repo.NewProfileRepository(conn)
		dr := repo.NewDirectoryRepository(conn)

		viewer := createUser(t, ur, "dir-viewer@example.com", "dirviewer")
		alice := createUser(t, ur, "dir-alice@example.com", "diralice")
		bob := createUser(t, ur, "dir-bob@example.com", "dirbob")

		require.NoError(t, fr.Create(ctx, viewer.ID, alice.ID))
		require.NoError(t, pr.SetStatus(ctx, alice.ID, "hello"))

		items, total, err := dr.List(ctx, model.DirectoryQuery{
			Limit:    10,
			Offset:   0,
			Term:     "dir",
			ViewerID: &viewer.ID,
		})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Len(t, items, 3)

		// Ordered by id ascending.
		require.Equal(t, viewer.ID, items[0].ID)
		require.Equal(t, alice.ID, items[1].ID)
		require.Equal(t, bob.ID, items[2].ID)

		require.True(t, items[1].Followed)
		require.False(t, items[2].Followed)
		require.Equal(t, "hello", items[1].Status)

		// Anonymous viewers see no follow state.
		items, _, err = dr.List(ctx, model.DirectoryQuery{Limit: 10, Term: "dir"})
		require.NoError(t, err)
		for _, item := range items {
			require.False(t, item.Followed)
		}

		// The count covers the filtered set even past the last page.
		items, total, err = dr.List(ctx, model.DirectoryQuery{Limit: 10, Offset: 100, Term: "dir"})
		require.NoError(t, err)
		require.Equal(t, 3, total)
		require.Empty(t, items)

		// LIKE metacharacters match literally.
		items, total, err = dr.List(ctx, model.DirectoryQuery{Limit: 10, Term: "%"})
		require.NoError(t, err)
		require.Equal(t, 0, total)
		require.Empty(t, items)
	})
}

func TestConnection_Ping(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Ping(ctx))
}

func TestConnection_BadDSN(t *testing.T) {
	_, err := repo.NewConection(context.Background(), "not-a-dsn")
	require.Error(t, err)
	require.False(t, errors.Is(err, model.ErrNotFound))
}

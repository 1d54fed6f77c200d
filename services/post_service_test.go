package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	db := openTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)

	alice, err := users.CreateUser("alice")
	require.NoError(t, err)

	post, err := posts.CreatePost("Hello", "World", alice.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(1), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, alice.ID, post.UserID)
}

func TestGetAllPostsEmpty(t *testing.T) {
	posts := NewPostService(openTestDB(t))

	all, err := posts.GetAllPosts()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetAllPostsResolvesOwner(t *testing.T) {
	db := openTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)

	alice, err := users.CreateUser("alice")
	require.NoError(t, err)

	_, err = posts.CreatePost("Hello", "World", alice.ID)
	require.NoError(t, err)

	all, err := posts.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].User.Username)
}

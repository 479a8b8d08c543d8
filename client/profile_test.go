package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"snapgram/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	profiles []*model.User
}

func (r *recordingStore) SetUserProfile(user *model.User) {
	r.profiles = append(r.profiles, user)
}

func TestFetchPublishesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/user/7/profile", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    model.User{ID: 7, Username: "alice"},
		})
	}))
	defer srv.Close()

	store := &recordingStore{}
	f := NewProfileFetcher(srv.URL, store)
	f.Fetch(context.Background(), 7)

	require.Len(t, store.profiles, 1)
	assert.Equal(t, "alice", store.profiles[0].Username)
}

func TestFetchErrorIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"User not found","success":false}`, http.StatusNotFound)
	}))
	defer srv.Close()

	store := &recordingStore{}
	f := NewProfileFetcher(srv.URL, store)
	f.Fetch(context.Background(), 404)

	assert.Empty(t, store.profiles, "errors are logged, never published")
}

func TestWatchRefetchesOnIDChange(t *testing.T) {
	var mu sync.Mutex
	var served []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		served = append(served, r.URL.Path)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    model.User{ID: 1, Username: "alice"},
		})
	}))
	defer srv.Close()

	store := &recordingStore{}
	f := NewProfileFetcher(srv.URL, store)

	ids := make(chan uint64, 2)
	ids <- 1
	ids <- 2
	close(ids)
	f.Watch(context.Background(), ids)

	require.Len(t, store.profiles, 2)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/api/v1/user/1/profile", "/api/v1/user/2/profile"}, served)
}

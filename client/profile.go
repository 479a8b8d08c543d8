// Package client provides a small helper the frontend uses to keep shared
// state in sync with a user's profile.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"snapgram/model"
)

// ProfileStore receives resolved profiles, the way a state store would.
type ProfileStore interface {
	SetUserProfile(user *model.User)
}

// ProfileFetcher fetches a profile by id and publishes it into the store.
// Fetch errors are logged, not surfaced; a watcher never stops on failure.
type ProfileFetcher struct {
	BaseURL string
	HTTP    *http.Client
	Store   ProfileStore
}

// NewProfileFetcher uses the default HTTP client, which carries no cookie
// jar; callers needing the session cookie supply their own client.
func NewProfileFetcher(baseURL string, store ProfileStore) *ProfileFetcher {
	return &ProfileFetcher{BaseURL: baseURL, HTTP: http.DefaultClient, Store: store}
}

type profileResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// Fetch requests the profile once and publishes it on success.
func (f *ProfileFetcher) Fetch(ctx context.Context, userID uint64) {
	url := fmt.Sprintf("%s/api/v1/user/%d/profile", f.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("profile fetch: %v", err)
		return
	}
	resp, err := f.HTTP.Do(req)
	if err != nil {
		log.Printf("profile fetch: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("profile fetch: status %d for user %d", resp.StatusCode, userID)
		return
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("profile fetch: decode: %v", err)
		return
	}
	if body.Success && body.User != nil {
		f.Store.SetUserProfile(body.User)
	}
}

// Watch refetches whenever a new user id arrives, until the channel closes
// or the context ends. Requests run sequentially; an id change does not
// cancel an in-flight fetch.
func (f *ProfileFetcher) Watch(ctx context.Context, userIDs <-chan uint64) {
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-userIDs:
			if !ok {
				return
			}
			f.Fetch(ctx, id)
		}
	}
}

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"
)

// TestUserLifecycle runs the whole identity flow against a live server:
// register both users, log in, follow, check the graph, toggle back, log out.
func TestUserLifecycle(t *testing.T) {
	baseURL := os.Getenv("INTEGRATION_BASE_URL")
	if baseURL == "" {
		t.Skip("INTEGRATION_BASE_URL not set; skipping integration test")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}

	suffix := time.Now().UnixNano()
	alice := fmt.Sprintf("it_alice_%d", suffix)
	bob := fmt.Sprintf("it_bob_%d", suffix)
	password := "Passw0rd!"

	// 1. Register two accounts.
	for _, name := range []string{alice, bob} {
		req := map[string]string{
			"username": name,
			"email":    name + "@example.com",
			"password": password,
		}
		if _, err := postJSON(client, baseURL+"/user/register", req, http.StatusCreated); err != nil {
			t.Fatalf("register %s failed: %v", name, err)
		}
	}

	// 2. Duplicate email is rejected.
	dup := map[string]string{"username": alice + "x", "email": alice + "@example.com", "password": password}
	if _, err := postJSON(client, baseURL+"/user/register", dup, http.StatusConflict); err != nil {
		t.Fatalf("duplicate register: %v", err)
	}

	// 3. Login as alice; the jar picks up the session cookie.
	login := map[string]string{"email": alice + "@example.com", "password": password}
	loginResp, err := postJSON(client, baseURL+"/user/login", login, http.StatusOK)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	aliceUser, ok := loginResp["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("login response missing user: %v", loginResp)
	}
	aliceID := uint64(aliceUser["id"].(float64))

	// 4. Bob's id via suggested users.
	suggested, err := getJSON(client, baseURL+"/user/suggested", http.StatusOK)
	if err != nil {
		t.Fatalf("suggested failed: %v", err)
	}
	users := suggested["users"].([]interface{})
	var bobID uint64
	for _, raw := range users {
		u := raw.(map[string]interface{})
		if u["username"] == bob {
			bobID = uint64(u["id"].(float64))
		}
	}
	if bobID == 0 {
		t.Fatalf("bob not in suggested users: %v", users)
	}

	// 5. Follow, verify both sides, toggle back.
	followURL := fmt.Sprintf("%s/user/followorunfollow/%d", baseURL, bobID)
	res, err := postJSON(client, followURL, nil, http.StatusOK)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if res["message"] != "Followed successfully" {
		t.Fatalf("unexpected follow message: %v", res["message"])
	}

	followers, err := getJSON(client, fmt.Sprintf("%s/user/%d/followers", baseURL, bobID), http.StatusOK)
	if err != nil {
		t.Fatalf("followers failed: %v", err)
	}
	found := false
	for _, raw := range followers["followers"].([]interface{}) {
		if uint64(raw.(map[string]interface{})["id"].(float64)) == aliceID {
			found = true
		}
	}
	if !found {
		t.Fatalf("alice missing from bob's followers")
	}

	if res, err = postJSON(client, followURL, nil, http.StatusOK); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	} else if res["message"] != "Unfollowed successfully" {
		t.Fatalf("unexpected unfollow message: %v", res["message"])
	}

	// 6. Logout clears the cookie; suggested now requires auth again.
	if _, err := postJSON(client, baseURL+"/user/logout", nil, http.StatusOK); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := getJSON(client, baseURL+"/user/suggested", http.StatusUnauthorized); err != nil {
		t.Fatalf("suggested after logout: %v", err)
	}
}

func postJSON(client *http.Client, url string, body interface{}, expectedStatus int) (map[string]interface{}, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, _ := http.NewRequest(http.MethodPost, url, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return doExpect(client, req, expectedStatus)
}

func getJSON(client *http.Client, url string, expectedStatus int) (map[string]interface{}, error) {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	return doExpect(client, req, expectedStatus)
}

func doExpect(client *http.Client, req *http.Request, expectedStatus int) (map[string]interface{}, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != expectedStatus {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

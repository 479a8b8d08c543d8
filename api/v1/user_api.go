package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"snapgram/api/v1/request"
	"snapgram/internal/auth"
	"snapgram/internal/metrics"
	"snapgram/service"

	"github.com/gin-gonic/gin"
)

// UserAPI exposes HTTP handlers for identity and social-graph flows.
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// fail translates service errors into the response envelope. Unknown errors
// are logged and reported generically so internals never leak.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "Try a different email", "success": false})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password", "success": false})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "success": false})
	case errors.Is(err, service.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow/unfollow yourself", "success": false})
	case errors.Is(err, service.ErrUpload):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Profile picture upload failed", "success": false})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "success": false})
	}
}

// Register handles new account creation. No session is established here.
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRegister("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing, please check!", "success": false})
		return
	}
	if err := u.service.Register(req.Username, req.Email, req.Password); err != nil {
		metrics.IncRegister("failed")
		fail(c, err)
		return
	}
	metrics.IncRegister("success")
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "success": true})
}

// Login validates credentials and delivers the session token as an
// HTTP-only, same-site-strict cookie alongside the sanitized user.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing, please check!", "success": false})
		return
	}
	user, token, err := u.service.Login(req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("unauthorized")
		fail(c, err)
		return
	}
	metrics.IncLogin("success")
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(auth.TokenTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome back " + user.Username,
		"success": true,
		"user":    user,
	})
}

// Logout clears the session cookie. The token is stateless, so there is
// nothing server-side to invalidate.
func (u *UserAPI) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

// GetProfile returns a user with posts, bookmarks and graph resolved.
func (u *UserAPI) GetProfile(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	user, err := u.service.GetProfile(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "success": true})
}

// EditProfile applies the supplied multipart fields to the caller's profile.
func (u *UserAPI) EditProfile(c *gin.Context) {
	callerID := c.GetUint64("user_id")

	var req request.EditProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile fields", "success": false})
		return
	}

	update := service.ProfileUpdate{Bio: req.Bio, Gender: req.Gender}
	if file, err := c.FormFile("profile_picture"); err == nil {
		f, err := file.Open()
		if err != nil {
			fail(c, err)
			return
		}
		defer f.Close()
		update.Picture = &service.PictureUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        f,
		}
	}

	user, err := u.service.EditProfile(c.Request.Context(), callerID, update)
	if err != nil {
		if errors.Is(err, service.ErrUpload) {
			metrics.IncUpload("failed")
		}
		fail(c, err)
		return
	}
	if update.Picture != nil {
		metrics.IncUpload("success")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "success": true, "user": user})
}

// GetSuggestedUsers lists every user except the caller. An empty platform
// yields an empty list, not an error.
func (u *UserAPI) GetSuggestedUsers(c *gin.Context) {
	callerID := c.GetUint64("user_id")
	users, err := u.service.GetSuggestedUsers(callerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// FollowOrUnfollow toggles the edge between the caller and the target.
func (u *UserAPI) FollowOrUnfollow(c *gin.Context) {
	actorID := c.GetUint64("user_id")
	targetID, ok := pathID(c)
	if !ok {
		return
	}
	result, err := u.service.FollowOrUnfollow(actorID, targetID)
	if err != nil {
		fail(c, err)
		return
	}
	if result.Following {
		metrics.IncFollow("follow")
	} else {
		metrics.IncFollow("unfollow")
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          result.Message,
		"success":          true,
		"following":        result.Following,
		"actor_following":  result.ActorFollowing,
		"target_followers": result.TargetFollowers,
	})
}

// GetFollowers lists the users following the given user.
func (u *UserAPI) GetFollowers(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	followers, err := u.service.GetFollowers(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "followers": followers})
}

// GetFollowing lists the users the given user follows.
func (u *UserAPI) GetFollowing(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	following, err := u.service.GetFollowing(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "following": following})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id", "success": false})
		return 0, false
	}
	return id, true
}

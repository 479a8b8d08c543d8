package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"snapgram/internal/auth"
	"snapgram/internal/media"
	"snapgram/model"
	"snapgram/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// UserStore is the persistence surface the service needs for user rows.
type UserStore interface {
	CreateUser(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint64) (*model.User, error)
	FindByIDs(ids []uint64) ([]model.User, error)
	ListExcept(id uint64) ([]model.User, error)
	UpdateFields(id uint64, fields map[string]interface{}) error
}

// FollowStore manages the directed follower -> followee edges.
type FollowStore interface {
	IsFollowing(followerID, followeeID uint64) (bool, error)
	Follow(followerID, followeeID uint64) error
	Unfollow(followerID, followeeID uint64) error
	FollowerIDs(userID uint64) ([]uint64, error)
	FollowingIDs(userID uint64) ([]uint64, error)
}

// PostStore resolves post references when assembling user projections.
type PostStore interface {
	ByAuthor(authorID uint64) ([]model.Post, error)
	BookmarkedBy(userID uint64) ([]model.Post, error)
}

// UserService orchestrates registration, authentication, profiles and the
// follow graph on top of the stores and the media uploader.
type UserService struct {
	users    UserStore
	follows  FollowStore
	posts    PostStore
	uploader media.Uploader
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(users UserStore, follows FollowStore, posts PostStore, uploader media.Uploader) *UserService {
	return &UserService{users: users, follows: follows, posts: posts, uploader: uploader}
}

// Register hashes the password and creates the user with an empty graph.
// No session is established; the caller logs in separately.
func (s *UserService) Register(username, email, password string) error {
	if _, err := s.users.FindByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.users.CreateUser(user); err != nil {
		// The email check above races with concurrent registration; the
		// unique index settles it and the loser maps to the same error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login validates credentials and issues a session token. Missing user and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.populateGraph(user); err != nil {
		return nil, "", err
	}
	posts, err := s.posts.ByAuthor(user.ID)
	if err != nil {
		return nil, "", err
	}
	user.Posts = emptyIfNil(posts)
	user.PasswordHash = ""

	return user, token, nil
}

// GetProfile returns the user with posts (newest first), bookmarks and the
// follower/following sets resolved.
func (s *UserService) GetProfile(userID uint64) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.populateGraph(user); err != nil {
		return nil, err
	}
	posts, err := s.posts.ByAuthor(user.ID)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.posts.BookmarkedBy(user.ID)
	if err != nil {
		return nil, err
	}
	user.Posts = emptyIfNil(posts)
	user.Bookmarks = emptyIfNil(bookmarks)
	user.PasswordHash = ""
	return user, nil
}

// ProfileUpdate carries the optional edit-profile inputs. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Bio     *string
	Gender  *string
	Picture *PictureUpload
}

// PictureUpload is a pending profile picture to push to the media store.
type PictureUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// EditProfile mutates only the supplied fields. The picture upload runs
// before any persistence, so a failed upload aborts the whole edit and no
// partial state is committed.
func (s *UserService) EditProfile(ctx context.Context, callerID uint64, update ProfileUpdate) (*model.User, error) {
	if _, err := s.users.FindByID(callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Picture != nil {
		url, err := s.uploader.Upload(ctx, update.Picture.Filename, update.Picture.ContentType, update.Picture.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		fields["profile_picture"] = url
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Gender != nil {
		fields["gender"] = *update.Gender
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(callerID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(callerID)
}

// GetSuggestedUsers returns every user except the caller. An empty result
// is a valid empty list, not an error.
func (s *UserService) GetSuggestedUsers(excludeID uint64) ([]model.User, error) {
	users, err := s.users.ListExcept(excludeID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// FollowResult reports the outcome of a follow/unfollow toggle.
type FollowResult struct {
	Following       bool     `json:"following"`
	Message         string   `json:"message"`
	ActorFollowing  []uint64 `json:"actor_following"`
	TargetFollowers []uint64 `json:"target_followers"`
}

// FollowOrUnfollow toggles the actor -> target edge. The edge lives in a
// single row, so each direction flips in one statement and the two sides of
// the relationship can never drift apart.
func (s *UserService) FollowOrUnfollow(actorID, targetID uint64) (*FollowResult, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}
	if _, err := s.users.FindByID(actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	following, err := s.follows.IsFollowing(actorID, targetID)
	if err != nil {
		return nil, err
	}

	result := &FollowResult{}
	if following {
		if err := s.follows.Unfollow(actorID, targetID); err != nil {
			return nil, err
		}
		result.Following = false
		result.Message = "Unfollowed successfully"
	} else {
		if err := s.follows.Follow(actorID, targetID); err != nil {
			// A concurrent toggle may have inserted the edge first; the
			// unique index reports it and the end state is still "following".
			if !isDuplicateKey(err) {
				return nil, err
			}
		}
		result.Following = true
		result.Message = "Followed successfully"
	}

	if result.ActorFollowing, err = s.follows.FollowingIDs(actorID); err != nil {
		return nil, err
	}
	if result.TargetFollowers, err = s.follows.FollowerIDs(targetID); err != nil {
		return nil, err
	}
	return result, nil
}

// GetFollowers resolves the follower set into sanitized user projections.
func (s *UserService) GetFollowers(userID uint64) ([]model.User, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ids, err := s.follows.FollowerIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

// GetFollowing resolves the following set into sanitized user projections.
func (s *UserService) GetFollowing(userID uint64) ([]model.User, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ids, err := s.follows.FollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

func (s *UserService) resolveUsers(ids []uint64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	users, err := s.users.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) populateGraph(user *model.User) error {
	followers, err := s.follows.FollowerIDs(user.ID)
	if err != nil {
		return err
	}
	following, err := s.follows.FollowingIDs(user.ID)
	if err != nil {
		return err
	}
	if followers == nil {
		followers = []uint64{}
	}
	if following == nil {
		following = []uint64{}
	}
	user.Followers = followers
	user.Following = following
	return nil
}

func emptyIfNil(posts []model.Post) []model.Post {
	if posts == nil {
		return []model.Post{}
	}
	return posts
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

package services

import (
	"fmt"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

// FollowService manages follow edges. Following and unfollowing change
// the membership of the follower's follow feed, so both invalidate that
// scope after the store write.
type FollowService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
	cache   *cache.FeedCache
}

// NewFollowService creates a new FollowService
func NewFollowService(users repositories.UserRepository, follows repositories.FollowRepository, feedCache *cache.FeedCache) *FollowService {
	return &FollowService{users: users, follows: follows, cache: feedCache}
}

// Follow creates the edge follower -> target. Following the same target
// twice fails with ErrConflict. Following yourself is allowed; the
// resulting feed is just your own posts.
func (s *FollowService) Follow(follower, target string) error {
	if follower == "" {
		return ErrUnauthenticated
	}
	if _, err := s.users.GetByHandle(target); err != nil {
		return fmt.Errorf("user %q: %w", target, err)
	}

	edge := &models.Follow{Follower: follower, Author: target}
	edge.BeforeCreate()
	if err := s.follows.Create(edge); err != nil {
		return err
	}
	s.invalidateFollowFeed(follower)
	return nil
}

// Unfollow removes the edge follower -> target. Removing a missing edge
// is a no-op success: the semantics are "ensure absent".
func (s *FollowService) Unfollow(follower, target string) error {
	if follower == "" {
		return ErrUnauthenticated
	}
	if err := s.follows.Delete(follower, target); err != nil {
		return err
	}
	s.invalidateFollowFeed(follower)
	return nil
}

// IsFollowing reports whether follower follows target.
func (s *FollowService) IsFollowing(follower, target string) (bool, error) {
	return s.follows.Exists(follower, target)
}

func (s *FollowService) invalidateFollowFeed(follower string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(FollowingScope(follower).Key())
}

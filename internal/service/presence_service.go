package service

import (
	"log"

	"github.com/kartiksrathod/Social-Media-sub000/internal/cache"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
)

// PresenceService mirrors registry connect/disconnect into the user row and
// the Redis presence set. Both targets are observational: the registry alone
// decides deliverability.
type PresenceService struct {
	userRepo      repository.UserRepositoryInterface
	presenceCache *cache.PresenceCache
}

func NewPresenceService(userRepo repository.UserRepositoryInterface, presenceCache *cache.PresenceCache) *PresenceService {
	return &PresenceService{userRepo: userRepo, presenceCache: presenceCache}
}

func (s *PresenceService) SetOnline(userID uint) error {
	if err := s.presenceCache.SetUserOnline(userID); err != nil {
		log.Printf("Failed to set user %d online in cache: %v", userID, err)
	}
	return s.userRepo.UpdateOnlineStatus(userID, true)
}

func (s *PresenceService) SetOffline(userID uint) error {
	if err := s.presenceCache.SetUserOffline(userID); err != nil {
		log.Printf("Failed to set user %d offline in cache: %v", userID, err)
	}
	return s.userRepo.UpdateOnlineStatus(userID, false)
}

func (s *PresenceService) Refresh(userID uint) {
	if err := s.presenceCache.RefreshUserOnline(userID); err != nil {
		log.Printf("Failed to refresh presence for user %d: %v", userID, err)
	}
}

// OnlineUserIDs returns the users mirrored as online in Redis. Empty without
// Redis; callers fall back to the in-process registry.
func (s *PresenceService) OnlineUserIDs() ([]uint, error) {
	return s.presenceCache.GetOnlineUsers()
}

// IsOnline reports the mirrored presence of one user.
func (s *PresenceService) IsOnline(userID uint) bool {
	return s.presenceCache.IsUserOnline(userID)
}

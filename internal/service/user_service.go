package service

import (
	"strconv"
	"strings"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepositoryInterface
}

func NewUserService(userRepo repository.UserRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

// GetUserByIdentifier resolves a user by numeric id or username.
func (s *UserService) GetUserByIdentifier(identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if id, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		return s.userRepo.FindByID(uint(id))
	}
	return s.userRepo.FindByUsername(identifier)
}

func (s *UserService) SearchUsers(query string, limit int) ([]models.User, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.User{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.userRepo.SearchUsers(query, limit)
}

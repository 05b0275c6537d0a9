package services

import (
	"context"
	"fmt"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type Profile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &Profile{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt.Format("2006-01-02"),
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, fullName string) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("full_name", fullName).Error
}

// ListMembers returns all registered profiles, newest first, for the
// community page.
func (s *UserService) ListMembers(ctx context.Context) ([]Profile, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, Profile{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			CreatedAt: u.CreatedAt.Format("2006-01-02"),
		})
	}
	return out, nil
}

package services

import (
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"
)

// UserService covers the admin-side account operations. Self-service account
// reads go through AuthService instead.
type UserService interface {
	List() ([]dto.UserResponse, error)
	UpdateSubscription(id string, req *dto.UpdateUserSubscriptionRequest) (*dto.UserResponse, error)
	Delete(id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// UpdateSubscription is the manual override next to the payment-approval
// path; both write tier and expiry through the same repository call.
func (s *UserServiceImpl) UpdateSubscription(id string, req *dto.UpdateUserSubscriptionRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateSubscription(user.ID, req.Subscription, req.SubscriptionExpiryDate); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Subscription = req.Subscription
	user.SubscriptionExpiresAt = req.SubscriptionExpiryDate

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) Delete(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

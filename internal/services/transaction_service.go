package services

import (
	"time"

	"heptabet_backend/internal/models"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"
)

// planTiers maps a pricing plan to the tier it buys.
var planTiers = map[string]models.SubscriptionTier{
	"basic":    models.TierBasic,
	"standard": models.TierStandard,
	"premium":  models.TierPremium,
}

// subscriptionPeriod is how long an approved payment keeps a tier active.
const subscriptionPeriod = 30 * 24 * time.Hour

type TransactionService interface {
	List() ([]dto.TransactionResponse, error)
	Submit(userID string, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	SetStatus(id string, status models.PaymentStatus) (*dto.TransactionResponse, error)
}

type TransactionServiceImpl struct {
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
) TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

func (s *TransactionServiceImpl) List() ([]dto.TransactionResponse, error) {
	txs, err := s.transactionRepo.FindAllOrdered()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, *dto.NewTransactionResponse(&txs[i]))
	}
	return responses, nil
}

func (s *TransactionServiceImpl) Submit(userID string, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	tx := &models.PaymentTransaction{
		UserID:     user.ID,
		UserName:   user.Name,
		PlanID:     req.PlanID,
		Amount:     req.Amount,
		Method:     req.Method,
		Status:     models.PaymentStatusPending,
		Date:       time.Now(),
		ReceiptURL: req.ReceiptURL,
	}

	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewTransactionResponse(tx), nil
}

// SetStatus records the admin's verdict. Approval triggers the one state
// transition this flow owes the authorization core: the purchased tier is
// applied to the account with a fresh expiry. All other payment bookkeeping
// stays outside this service.
func (s *TransactionServiceImpl) SetStatus(id string, status models.PaymentStatus) (*dto.TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.transactionRepo.UpdateStatus(tx.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	tx.Status = status

	if status == models.PaymentStatusApproved {
		tier, ok := planTiers[tx.PlanID]
		if !ok {
			// Unknown plan must never grant access.
			return nil, apperrors.NewBadRequestError("Unknown plan: " + tx.PlanID)
		}
		expiresAt := time.Now().Add(subscriptionPeriod)
		if err := s.userRepo.UpdateSubscription(tx.UserID, tier, &expiresAt); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return dto.NewTransactionResponse(tx), nil
}

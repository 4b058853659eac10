package services

import (
	"heptabet_backend/internal/access"
	"heptabet_backend/internal/models"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PredictionService interface {
	// List returns every prediction with the tip masked per item according
	// to the viewer's (expiry-enforced) tier. viewerID "" means anonymous.
	List(viewerID string) ([]dto.PredictionResponse, error)
	Create(req *dto.CreatePredictionRequest) (*dto.PredictionResponse, error)
	Update(id string, req *dto.UpdatePredictionRequest) (*dto.PredictionResponse, error)
	Delete(id string) error
}

type PredictionServiceImpl struct {
	predictionRepo repositories.PredictionRepository
	userRepo       repositories.UserRepository
}

func NewPredictionService(
	predictionRepo repositories.PredictionRepository,
	userRepo repositories.UserRepository,
) PredictionService {
	return &PredictionServiceImpl{
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
	}
}

func (s *PredictionServiceImpl) List(viewerID string) ([]dto.PredictionResponse, error) {
	viewer, err := s.resolveViewer(viewerID)
	if err != nil {
		return nil, err
	}

	predictions, err := s.predictionRepo.FindAllOrdered()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.PredictionResponse, 0, len(predictions))
	for i := range predictions {
		responses = append(responses, *buildPredictionResponse(&predictions[i], viewer))
	}
	return responses, nil
}

// resolveViewer loads and expiry-enforces the account behind a session.
// A valid session whose account has since been deleted degrades to
// anonymous: token verification alone is not proof of existence.
func (s *PredictionServiceImpl) resolveViewer(viewerID string) (*models.User, error) {
	if viewerID == "" {
		return nil, nil
	}

	viewer, err := s.userRepo.FindByID(viewerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if err := access.EnforceExpiry(s.userRepo, viewer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return viewer, nil
}

func (s *PredictionServiceImpl) Create(req *dto.CreatePredictionRequest) (*dto.PredictionResponse, error) {
	p := &models.Prediction{
		League:     req.League,
		HomeTeam:   req.HomeTeam,
		AwayTeam:   req.AwayTeam,
		Date:       req.Date,
		Time:       req.Time,
		Tip:        req.Tip,
		Odds:       req.Odds,
		Confidence: req.Confidence,
		MinTier:    req.MinTier,
		Status:     models.MatchStatusScheduled,
		Result:     models.ResultPending,
		TipsterID:  req.TipsterID,
		Analysis:   datatypes.JSON(req.Analysis),
	}

	if err := s.predictionRepo.Create(p); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildPredictionResponse(p, adminViewer()), nil
}

func (s *PredictionServiceImpl) Update(id string, req *dto.UpdatePredictionRequest) (*dto.PredictionResponse, error) {
	p, err := s.predictionRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPredictionNotFound) {
			return nil, apperrors.NewNotFoundError("Prediction not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Result != nil {
		p.Result = *req.Result
	}
	if req.Score != nil {
		p.Score = *req.Score
	}

	if err := s.predictionRepo.Update(p); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildPredictionResponse(p, adminViewer()), nil
}

func (s *PredictionServiceImpl) Delete(id string) error {
	if err := s.predictionRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildPredictionResponse(p *models.Prediction, viewer *models.User) *dto.PredictionResponse {
	resp := &dto.PredictionResponse{
		ID:         p.ID,
		League:     p.League,
		HomeTeam:   p.HomeTeam,
		AwayTeam:   p.AwayTeam,
		Date:       p.Date,
		Time:       p.Time,
		Tip:        p.Tip,
		Odds:       p.Odds,
		Confidence: p.Confidence,
		MinTier:    p.MinTier,
		Status:     p.Status,
		Result:     p.Result,
		TipsterID:  p.TipsterID,
		Score:      p.Score,
		Analysis:   []byte(p.Analysis),
	}

	if !access.CanView(viewer, p) {
		// Only the predictive content is the product: teams, league,
		// odds, confidence and settlement state stay visible.
		resp.Tip = access.MaskedTip
		resp.Analysis = nil
		resp.Locked = true
	}
	return resp
}

// adminViewer is a synthetic unmasked viewpoint for responses returned to
// admin mutations.
func adminViewer() *models.User {
	return &models.User{Role: models.UserRoleAdmin}
}

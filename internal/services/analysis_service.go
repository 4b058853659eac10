package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"heptabet_backend/internal/access"
	"heptabet_backend/internal/logger"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

var errAIUnavailable = apperrors.New(
	apperrors.CodeExternalServiceError,
	"analysis",
	"AI analysis is temporarily unavailable",
	http.StatusServiceUnavailable,
)

// AnalysisService generates a match write-up for a stored prediction via the
// Gemini API. The API key stays server-side; clients only ever see the text.
type AnalysisService interface {
	Analyze(viewerID string, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
}

type AnalysisServiceImpl struct {
	predictionRepo repositories.PredictionRepository
	userRepo       repositories.UserRepository
	apiKey         string
	model          string
	client         *http.Client
}

func NewAnalysisService(
	predictionRepo repositories.PredictionRepository,
	userRepo repositories.UserRepository,
	apiKey, model string,
) AnalysisService {
	return &AnalysisServiceImpl{
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
		apiKey:         apiKey,
		model:          model,
		client:         &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *AnalysisServiceImpl) Analyze(viewerID string, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if s.apiKey == "" {
		return nil, errAIUnavailable
	}

	p, err := s.predictionRepo.FindByID(req.PredictionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPredictionNotFound) {
			return nil, apperrors.NewNotFoundError("Prediction not found")
		}
		return nil, apperrors.InternalError(err)
	}

	viewer, err := s.userRepo.FindByID(viewerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}
	if err := access.EnforceExpiry(s.userRepo, viewer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The analysis reveals the tip, so it is gated exactly like the tip.
	if !access.CanView(viewer, p) {
		return nil, apperrors.NewForbiddenError("Upgrade required to view")
	}

	prompt := fmt.Sprintf(`Act as a professional football analyst for the Nigerian betting market.
Analyze the following match:
League: %s
Match: %s vs %s
Date: %s
Current Tip: %s

Provide a concise, 2-paragraph analysis explaining why this tip is likely to win.
Focus on recent form, head-to-head stats, and key players.
Keep the tone confident and professional.`,
		p.League, p.HomeTeam, p.AwayTeam, p.Date, p.Tip)

	text, err := s.generate(prompt)
	if err != nil {
		logger.Error("gemini request failed", "error", err.Error(), "prediction_id", p.ID)
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError,
			"analysis", "AI analysis failed", http.StatusBadGateway)
	}

	return &dto.AnalyzeResponse{Analysis: text}, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *AnalysisServiceImpl) generate(prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiEndpoint, s.model)
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

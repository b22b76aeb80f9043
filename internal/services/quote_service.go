package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"
)

type QuoteService interface {
	// Random возвращает цитату дня от внешнего провайдера. Вызов
	// синхронный, best-effort: без ретраев, ошибка уходит вызывающему.
	Random(ctx context.Context) (*dto.QuoteResponse, error)
}

type quoteService struct {
	baseURL string
	client  *http.Client
}

func NewQuoteService(baseURL string, timeout time.Duration) QuoteService {
	return &quoteService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *quoteService) Random(ctx context.Context) (*dto.QuoteResponse, error) {
	url := s.baseURL + "/api/random"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("quotes", "Error while connecting to the quote provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("quotes",
			"Failed to get the quote. Please try again later",
			fmt.Errorf("quote provider returned status %d", resp.StatusCode))
	}

	// Провайдер отвечает массивом: [{"q": "...", "a": "..."}]
	var payload []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewUpstreamError("quotes", "Invalid response from the quote provider", err)
	}
	if len(payload) == 0 {
		return nil, apperrors.NewUpstreamError("quotes", "Empty response from the quote provider", nil)
	}

	return &dto.QuoteResponse{
		Quote:  payload[0].Q,
		Author: payload[0].A,
	}, nil
}

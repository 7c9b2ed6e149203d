package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"lexia/internal/config"
)

// ConstituteServiceInterface looks up constitutional excerpts relevant to a
// free-text query. Callers treat an error as "no excerpts" and degrade.
type ConstituteServiceInterface interface {
	RelevantArticles(ctx context.Context, query, country, language string, limit int) ([]string, error)
}

type constituteService struct {
	baseURL string
	client  *http.Client
	logger  *zap.SugaredLogger
}

func NewConstituteService(cfg *config.Config, logger *zap.SugaredLogger) ConstituteServiceInterface {
	return &constituteService{
		baseURL: cfg.ConstituteBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type constituteSection struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

func (s *constituteService) RelevantArticles(ctx context.Context, query, country, language string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("country", country)
	params.Set("lang", language)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/sections?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warnw("constitute lookup failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("constitute lookup returned status %d", resp.StatusCode)
	}

	var sections []constituteSection
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		return nil, err
	}

	articles := make([]string, 0, len(sections))
	for _, section := range sections {
		if len(articles) == limit {
			break
		}
		if section.Excerpt == "" {
			continue
		}
		if section.Title != "" {
			articles = append(articles, fmt.Sprintf("%s: %s", section.Title, section.Excerpt))
		} else {
			articles = append(articles, section.Excerpt)
		}
	}
	return articles, nil
}

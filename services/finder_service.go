package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/metrics"
	"github.com/durable-fastener/durable-cms-backend/models"
)

const (
	finderMaxResults  = 3
	keywordMatchScore = 85
	keywordRationale  = "Selected based on keyword matching (Offline Mode)."
)

// Recommendation is one ranked product for a finder query.
type Recommendation struct {
	ProductID  string  `json:"productId"`
	MatchScore float64 `json:"matchScore"`
	Rationale  string  `json:"rationale"`
}

// FinderProduct is the slice of a product shown to the recommender.
type FinderProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Specs    string `json:"specs"`
}

// Recommender ranks catalogue products for a free-text query.
type Recommender interface {
	Recommend(ctx context.Context, query string, catalogue []FinderProduct) ([]Recommendation, error)
}

// ════════════════════════════════════════════════════════════
// Gemini
// ════════════════════════════════════════════════════════════

type GeminiRecommender struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommender(ctx context.Context, apiKey, model string) (*GeminiRecommender, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiRecommender{client: client, model: model}, nil
}

func finderPrompt(query string, catalogue []FinderProduct) (string, error) {
	data, err := json.Marshal(catalogue)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`You are an expert sales engineer for Durable Fastener Pvt. Ltd.
User Query: %q

Based on the following product catalog, identify the top %d most relevant products.
Catalog: %s

Return a strictly valid JSON array (no markdown) where each object has:
- productId (string): matching the catalog ID
- matchScore (number): 0-100 confidence
- rationale (string): 1 sentence explaining why this fits the query.`, query, finderMaxResults, data), nil
}

func (g *GeminiRecommender) Recommend(ctx context.Context, query string, catalogue []FinderProduct) ([]Recommendation, error) {
	prompt, err := finderPrompt(query, catalogue)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return parseRecommendations(resp.Text())
}

// parseRecommendations reads the model's JSON array, tolerating a markdown
// code fence around it.
func parseRecommendations(text string) ([]Recommendation, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return []Recommendation{}, nil
	}
	var recs []Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return recs, nil
}

// ════════════════════════════════════════════════════════════
// Finder
// ════════════════════════════════════════════════════════════

// FinderService answers product finder queries with the model when one is
// configured and falls back to keyword matching otherwise.
type FinderService struct {
	products    *ProductService
	recommender Recommender
}

// NewFinderService accepts a nil recommender for keyword-only mode.
func NewFinderService(products *ProductService, recommender Recommender) *FinderService {
	return &FinderService{products: products, recommender: recommender}
}

func (s *FinderService) Find(ctx context.Context, query string) ([]Recommendation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidf("query is required")
	}
	products, err := s.products.Catalogue(ctx)
	if err != nil {
		return nil, err
	}

	if s.recommender != nil {
		recs, err := s.recommender.Recommend(ctx, query, finderCatalogue(products))
		if err == nil {
			metrics.FinderRequests.WithLabelValues("model").Inc()
			return knownOnly(recs, products), nil
		}
		config.Log.Warn("[finder] model failed, using keyword match", zap.Error(err))
	}

	metrics.FinderRequests.WithLabelValues("keyword").Inc()
	return keywordMatch(query, products), nil
}

func finderCatalogue(products []models.Product) []FinderProduct {
	out := make([]FinderProduct, len(products))
	for i, p := range products {
		specs := p.ShortDescription
		if len(p.Specifications) > 0 {
			if data, err := json.Marshal(p.Specifications); err == nil {
				specs = string(data)
			}
		}
		out[i] = FinderProduct{ID: p.ID.String(), Name: p.Name, Category: p.Category, Specs: specs}
	}
	return out
}

// knownOnly drops recommendations for ids not in the catalogue and caps the
// result length.
func knownOnly(recs []Recommendation, products []models.Product) []Recommendation {
	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID.String()] = true
	}
	out := make([]Recommendation, 0, finderMaxResults)
	for _, r := range recs {
		if ids[r.ProductID] && len(out) < finderMaxResults {
			out = append(out, r)
		}
	}
	return out
}

func keywordMatch(query string, products []models.Product) []Recommendation {
	q := strings.ToLower(query)
	out := make([]Recommendation, 0, finderMaxResults)
	for _, p := range products {
		if len(out) == finderMaxResults {
			break
		}
		desc := strings.ToLower(p.ShortDescription + " " + p.LongDescription)
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(desc, q) {
			out = append(out, Recommendation{
				ProductID:  p.ID.String(),
				MatchScore: keywordMatchScore,
				Rationale:  keywordRationale,
			})
		}
	}
	return out
}

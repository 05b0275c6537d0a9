package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenFoodFactsURL = "https://world.openfoodfacts.org"

// ProductLookupService resolves scanned barcodes against the Open Food Facts
// public API (read-only, no auth) and classifies the result into a disposal
// bucket.
type ProductLookupService struct {
	baseURL string
	client  *http.Client
}

func NewProductLookupService(baseURL string) *ProductLookupService {
	if baseURL == "" {
		baseURL = defaultOpenFoodFactsURL
	}
	return &ProductLookupService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type ProductInfo struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Barcode       string   `json:"barcode"`
	CategoryTags  []string `json:"category_tags"`
	PackagingTags []string `json:"packaging_tags"`
	Disposal      string   `json:"disposal"`
	Found         bool     `json:"found"`
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName   string   `json:"product_name"`
		GenericName   string   `json:"generic_name"`
		Categories    string   `json:"categories"`
		CategoryTags  []string `json:"categories_tags"`
		PackagingTags []string `json:"packaging_tags"`
	} `json:"product"`
}

// Lookup fetches /api/v0/product/{barcode}.json. An unknown barcode is not an
// error: it falls back to generic e-waste guidance, matching how unlisted
// items (electronics, mostly) should be handled. Network or decode failures
// are errors and the operation is abandoned without retry.
func (s *ProductLookupService) Lookup(ctx context.Context, barcode string) (*ProductInfo, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create product lookup request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call product lookup API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read product lookup response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed offProductResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse product lookup JSON: %w", err)
	}

	if parsed.Status != 1 || parsed.Product.ProductName == "" {
		return &ProductInfo{
			Name:        "Electronic Item",
			Description: "No product record found. Treat as e-waste and dispose of at a designated collection point.",
			Barcode:     barcode,
			Disposal:    DisposalEWaste,
			Found:       false,
		}, nil
	}

	description := strings.TrimSpace(parsed.Product.GenericName)
	if description == "" {
		description = strings.TrimSpace(parsed.Product.Categories)
	}

	return &ProductInfo{
		Name:          strings.TrimSpace(parsed.Product.ProductName),
		Description:   description,
		Barcode:       barcode,
		CategoryTags:  parsed.Product.CategoryTags,
		PackagingTags: parsed.Product.PackagingTags,
		Disposal:      ClassifyTags(parsed.Product.CategoryTags, parsed.Product.PackagingTags),
		Found:         true,
	}, nil
}

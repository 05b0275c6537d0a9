package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/utils"
)

var ErrMissingGatewayKey = errors.New("AI_GATEWAY_KEY is not configured")

// WasteImageService generates photorealistic disposal-guide images through
// an OpenAI-compatible AI gateway.
type WasteImageService struct {
	gatewayURL string
	apiKey     string
	model      string
	client     *http.Client
	mirrorToS3 bool
}

func NewWasteImageService() *WasteImageService {
	gatewayURL := os.Getenv("AI_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "https://ai.gateway.lovable.dev"
	}
	model := os.Getenv("AI_GATEWAY_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash-image-preview"
	}
	return &WasteImageService{
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		apiKey:     os.Getenv("AI_GATEWAY_KEY"),
		model:      model,
		client:     &http.Client{Timeout: 60 * time.Second},
		mirrorToS3: os.Getenv("S3_BUCKET") != "",
	}
}

func buildPrompt(category, productName, subcategory string) string {
	focus := "Focus on the specific item and its packaging."
	if productName != "" {
		if subcategory != "" {
			focus = fmt.Sprintf("Focus on %s (%s).", productName, subcategory)
		} else {
			focus = fmt.Sprintf("Focus on %s.", productName)
		}
	}

	switch category {
	case DisposalRecyclable:
		return focus + " Photorealistic close-up showing the item/packaging being correctly placed into a BLUE recycling bin. Emphasize clean, empty, dry materials (plastic bottles, cans, paper, cardboard). Modern, bright environment, sustainability theme. Ultra high resolution, 16:9 aspect ratio"
	case DisposalCompostable:
		return focus + " Photorealistic image of organic scraps being placed into a BROWN/GREEN compost bin. Show fruit peels, veggie scraps, coffee grounds. Natural garden setting, eco-friendly vibe. Ultra high resolution, 16:9 aspect ratio"
	default:
		// Unknown categories get the e-waste treatment, same as the default
		// disposal bucket.
		return focus + " Photorealistic image of an electronic device being deposited at a designated E-WASTE collection point (no regular bins). Modern tech recycling station. Ultra high resolution, 16:9 aspect ratio"
	}
}

type gatewayResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate returns a URL for a disposal-guide image for the category. When a
// bucket is configured, data-URI results are decoded and mirrored to S3 so
// the client gets a stable CDN URL instead of a megabyte-sized payload.
func (s *WasteImageService) Generate(ctx context.Context, category, productName, subcategory string) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingGatewayKey
	}

	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]any{
			{"role": "user", "content": buildPrompt(category, productName, subcategory)},
		},
		"modalities": []string{"image", "text"},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call AI gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI gateway error %d: %s", resp.StatusCode, string(body))
	}

	var parsed gatewayResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse gateway JSON: %w", err)
	}

	imageURL := ""
	if len(parsed.Choices) > 0 && len(parsed.Choices[0].Message.Images) > 0 {
		imageURL = parsed.Choices[0].Message.Images[0].ImageURL.URL
	}
	if imageURL == "" {
		return "", errors.New("no image URL in gateway response")
	}

	if s.mirrorToS3 && strings.HasPrefix(imageURL, "data:image") {
		if mirrored, err := mirrorDataURI(ctx, imageURL); err == nil {
			return mirrored, nil
		}
		// Mirroring is best-effort: the data URI still works for the client.
	}

	return imageURL, nil
}

func mirrorDataURI(ctx context.Context, dataURI string) (string, error) {
	meta, encoded, ok := strings.Cut(dataURI, ",")
	if !ok {
		return "", errors.New("malformed data URI")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}
	return utils.UploadWasteImage(ctx, data, contentType)
}

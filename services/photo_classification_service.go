package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// PhotoClassificationService detects labels in a waste photo and feeds them
// through the same keyword classifier that handles barcode lookups. It gives
// users without a scannable barcode (loose items, produce, broken gadgets) a
// second way into a disposal bucket.
type PhotoClassificationService struct {
	client *rekognition.Client
}

func NewPhotoClassificationService() (*PhotoClassificationService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &PhotoClassificationService{client: rekognition.NewFromConfig(cfg)}, nil
}

type PhotoClassification struct {
	Disposal   string   `json:"disposal"`
	Labels     []string `json:"labels"`
	Confidence float64  `json:"confidence"` // of the top label
}

// ClassifyPhoto takes a base64 data URI, detects the top labels and maps
// them to a disposal bucket. Labels act as category tags so organic matches
// still win over material matches.
func (p *PhotoClassificationService) ClassifyPhoto(ctx context.Context, dataURI string) (*PhotoClassification, error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	_, encoded, ok := strings.Cut(dataURI, ",")
	if !ok {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	var topConfidence float64
	for i, l := range out.Labels {
		labels = append(labels, aws.ToString(l.Name))
		if i == 0 && l.Confidence != nil {
			topConfidence = float64(*l.Confidence)
		}
	}

	return &PhotoClassification{
		Disposal:   ClassifyTags(labels, labels),
		Labels:     labels,
		Confidence: round2(topConfidence),
	}, nil
}

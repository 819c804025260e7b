package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"letteron-backend/pkg/config"
)

// LambdaExtractor invokes the OCR function (Textract behind a Lambda) for a
// batch of stored images.
type LambdaExtractor struct {
	client       *awslambda.Client
	functionName string
	bucket       string
}

func NewLambdaExtractor(client *awslambda.Client, cfg *config.Config) *LambdaExtractor {
	return &LambdaExtractor{
		client:       client,
		functionName: cfg.OCRFunction,
		bucket:       cfg.S3BucketName,
	}
}

type ocrRequest struct {
	Bucket string   `json:"bucket"`
	S3Keys []string `json:"s3_keys"`
}

type lambdaEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type ocrBody struct {
	Results []PageResult `json:"ocr_results"`
	Error   string       `json:"error"`
}

func (e *LambdaExtractor) ExtractText(ctx context.Context, keys []string) ([]PageResult, error) {
	payload, err := json.Marshal(ocrRequest{Bucket: e.bucket, S3Keys: keys})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OCR request: %w", err)
	}

	log.Printf("[OCR] Invoking %s for %d images", e.functionName, len(keys))

	out, err := e.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(e.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("OCR invocation failed: %w", err)
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("OCR function error: %s: %s", *out.FunctionError, string(out.Payload))
	}

	var envelope lambdaEnvelope
	if err := json.Unmarshal(out.Payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse OCR response: %w", err)
	}
	if envelope.StatusCode != 200 {
		return nil, fmt.Errorf("OCR function returned status %d: %s", envelope.StatusCode, envelope.Body)
	}

	var body ocrBody
	if err := json.Unmarshal([]byte(envelope.Body), &body); err != nil {
		return nil, fmt.Errorf("failed to parse OCR results: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("OCR function error: %s", body.Error)
	}

	return body.Results, nil
}

package analysis

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

// LambdaAnalyzer invokes the LLM function for structured extraction, chat
// and translation.
type LambdaAnalyzer struct {
	client       *awslambda.Client
	functionName string
}

func NewLambdaAnalyzer(client *awslambda.Client, cfg *config.Config) *LambdaAnalyzer {
	return &LambdaAnalyzer{
		client:       client,
		functionName: cfg.LLMFunction,
	}
}

type llmRequest struct {
	Text           string    `json:"text"`
	PromptTemplate string    `json:"prompt_template"`
	Temperature    float64   `json:"temperature"`
	MaxTokens      int       `json:"max_tokens"`
	History        []Message `json:"conversation_history,omitempty"`
}

type llmEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type llmBody struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (a *LambdaAnalyzer) Analyze(ctx context.Context, text string) (*Extraction, error) {
	// Lower temperature keeps the structured output consistent
	raw, err := a.Complete(ctx, text, AnalyzePrompt(text), CompletionOptions{
		Temperature: 0.5,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, err
	}

	result := Normalize(raw)
	return result, nil
}

func (a *LambdaAnalyzer) Complete(ctx context.Context, text, prompt string, opts CompletionOptions) (string, error) {
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 2000
	}

	payload, err := json.Marshal(llmRequest{
		Text:           text,
		PromptTemplate: prompt,
		Temperature:    opts.Temperature,
		MaxTokens:      opts.MaxTokens,
		History:        opts.History,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal LLM request: %w", err)
	}

	log.Printf("[Analysis] Invoking %s (temperature: %.1f)", a.functionName, opts.Temperature)

	out, err := a.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(a.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return "", fmt.Errorf("LLM invocation failed: %w", err)
	}
	if out.FunctionError != nil {
		return "", fmt.Errorf("LLM function error: %s: %s", *out.FunctionError, string(out.Payload))
	}

	var envelope llmEnvelope
	if err := json.Unmarshal(out.Payload, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if envelope.StatusCode != 200 {
		return "", fmt.Errorf("LLM function returned status %d: %s", envelope.StatusCode, envelope.Body)
	}

	var body llmBody
	if err := json.Unmarshal([]byte(envelope.Body), &body); err != nil {
		return "", fmt.Errorf("failed to parse LLM body: %w", err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("LLM function error: %s", body.Error)
	}

	return body.Response, nil
}

// Package genai is the adapter for the hosted language-model gateway.
// The remote service is treated as an opaque call: structured input in,
// structured output out, any failure surfaces as an error.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.SolutionGenerator = (*Client)(nil)
var _ port.SolutionSummarizer = (*Client)(nil)
var _ port.SolutionImprover = (*Client)(nil)

var ErrUnexpectedStatus = errors.New("unexpected response status")

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL  string
	httpC    *http.Client
	validate *validator.Validate
}

func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Client{
		baseURL:  baseURL,
		httpC:    &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

func (c Client) GenerateSolutions(
	ctx context.Context, prompt string,
) ([]string, error) {
	const op = "Client.GenerateSolutions"

	var resp generateResponse
	err := c.call(ctx, "/v1/generate", generateRequest{Prompt: prompt}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Solutions, nil
}

func (c Client) SummarizeSolutions(
	ctx context.Context, solutions []string,
) ([]string, error) {
	const op = "Client.SummarizeSolutions"

	var resp summarizeResponse
	err := c.call(ctx, "/v1/summarize",
		summarizeRequest{Solutions: solutions}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Summaries, nil
}

func (c Client) ImproveSolution(
	ctx context.Context, prompt, solution, feedback string,
) (string, error) {
	const op = "Client.ImproveSolution"

	req := improveRequest{
		Prompt:            prompt,
		GeneratedSolution: solution,
		Feedback:          feedback,
	}
	var resp improveResponse
	if err := c.call(ctx, "/v1/improve", req, &resp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return resp.ImprovedSolution, nil
}

func (c Client) Chat(ctx context.Context, message string) (string, error) {
	const op = "Client.Chat"

	var resp chatResponse
	err := c.call(ctx, "/v1/chat", chatRequest{Message: message}, &resp)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return resp.Response, nil
}

// call posts reqBody and decodes into respBody, validating both.
// Fails closed: a payload that does not match the contract is a call
// failure, never a partial result.
func (c Client) call(
	ctx context.Context, path string, reqBody, respBody any,
) error {
	const op = "call"

	if err := c.validate.Struct(reqBody); err != nil {
		return opErr(err, op)
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return opErr(err, op)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b),
	)
	if err != nil {
		return opErr(err, op)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpC.Do(req)
	if err != nil {
		return opErr(err, op)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return opErr(
			fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode), op,
		)
	}

	if err := json.NewDecoder(res.Body).Decode(respBody); err != nil {
		return opErr(err, op)
	}

	if err := c.validate.Struct(respBody); err != nil {
		return opErr(err, op)
	}
	return nil
}

func opErr(err error, op string) error {
	return fmt.Errorf("%s: %w", op, err)
}

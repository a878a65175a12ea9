// Package issuance talks to the external policy issuer.
package issuance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"aseguraopen/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	issuePath      = "/policies"
	maxAttempts    = 3
	maxBodyBytes   = 1 << 20
	initialBackoff = 200 * time.Millisecond
)

var ErrIssuerRejected = errors.New("issuer rejected the policy")

type Options struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// HTTPIssuer posts issuance payloads as JSON. With an empty BaseURL it runs
// in mock mode and answers with a locally generated reference.
//
// Transport errors and 5xx answers are retried with exponential backoff;
// 4xx answers are final.
type HTTPIssuer struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

var _ interfaces.IIssuerGateway = (*HTTPIssuer)(nil)

func NewHTTPIssuer(opts Options, log *zap.Logger) *HTTPIssuer {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	log = log.Named("issuer")
	if opts.BaseURL == "" {
		log.Info("[issuance][gateway] mock mode enabled")
	}
	return &HTTPIssuer{baseURL: opts.BaseURL, apiKey: opts.APIKey, client: client, log: log}
}

type issueResponse struct {
	Reference    string `json:"reference"`
	PolicyNumber string `json:"policy_number"`
}

func (g *HTTPIssuer) Issue(ctx context.Context, payload interfaces.IssuancePayload) (string, json.RawMessage, error) {
	log := g.log.With(zap.String("policy_id", payload.PolicyID))
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}

	if g.baseURL == "" {
		ref := "MOCK-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
		raw, err := json.Marshal(map[string]any{"reference": ref, "status": "issued", "request": json.RawMessage(body)})
		if err != nil {
			return "", nil, err
		}
		log.Info("[issuance][gateway] mock issuance", zap.String("reference", ref))
		return ref, raw, nil
	}

	operation := func() (json.RawMessage, error) {
		return g.post(ctx, body)
	}
	raw, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ExponentialBackOff{
			InitialInterval:     initialBackoff,
			RandomizationFactor: backoff.DefaultRandomizationFactor,
			Multiplier:          backoff.DefaultMultiplier,
			MaxInterval:         2 * time.Second,
		}),
		backoff.WithMaxTries(maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Debug("[issuance][gateway] retrying", zap.Error(err), zap.Duration("backoff", next))
		}),
	)
	if err != nil {
		log.Warn("[issuance][gateway] issue failed", zap.Error(err))
		return "", nil, err
	}

	var resp issueResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", nil, fmt.Errorf("decode issuer response: %w", err)
	}
	ref := resp.Reference
	if ref == "" {
		ref = resp.PolicyNumber
	}
	if ref == "" {
		return "", nil, fmt.Errorf("%w: response carries no reference", ErrIssuerRejected)
	}
	log.Info("[issuance][gateway] policy issued", zap.String("reference", ref))
	return ref, raw, nil
}

func (g *HTTPIssuer) post(ctx context.Context, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+issuePath, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	res, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	switch {
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("issuer returned %d", res.StatusCode)
	case res.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("%w: status %d: %s", ErrIssuerRejected, res.StatusCode, raw))
	}
	return raw, nil
}

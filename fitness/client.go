package fitness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"dailysteps/core"
)

// DefaultBaseURL is the provider's public fitness API endpoint.
const DefaultBaseURL = "https://fitness.googleapis.com/fitness/v1"

// Service issues aggregate queries on behalf of the current
// authenticated user.
type Service struct {
	provider CredentialProvider
	baseURL  string
}

func NewService(provider CredentialProvider) *Service {
	return &Service{provider: provider, baseURL: DefaultBaseURL}
}

// NewServiceURL is NewService against a non-default endpoint.
func NewServiceURL(provider CredentialProvider, baseURL string) *Service {
	return &Service{provider: provider, baseURL: baseURL}
}

// Aggregate posts req to the dataset:aggregate endpoint and decodes the
// bucketed response. The query is issued exactly once; transport and HTTP
// failures surface as-is, with no retry.
func (s *Service) Aggregate(ctx context.Context, req *core.AggregateRequest) (*core.AggregateResponse, error) {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", core.ErrTransport, err)
	}

	url := s.baseURL + "/users/me/dataset:aggregate"
	log.WithFields(log.Fields{
		"url":   url,
		"start": req.StartTimeMillis,
		"end":   req.EndTimeMillis,
	}).Debug("sending aggregate query")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: %s", core.ErrTransport, resp.Status, bytes.TrimSpace(msg))
	}

	out := &core.AggregateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", core.ErrMalformedResponse, err)
	}
	return out, nil
}

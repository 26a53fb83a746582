package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Remote is the HTTP store client. Payloads travel wrapped in a JSON
// envelope; responses are unwrapped with a jsonpath query so the envelope
// can grow fields without breaking the client.
type Remote struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRemote creates a client for the store at baseURL. The api key is
// optional; when set it is sent as a bearer token.
func NewRemote(baseURL, apiKey string) *Remote {
	return &Remote{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (r *Remote) url(owner string, key Key) string {
	return fmt.Sprintf("%s/v1/%s/%s", r.baseURL, owner, key)
}

func (r *Remote) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
	return r.client.Do(req)
}

// Save implements Gateway with a PUT of the enveloped payload.
func (r *Remote) Save(ctx context.Context, owner string, key Key, data []byte) error {
	envelope, err := json.Marshal(map[string]string{"data": string(data)})
	if err != nil {
		return fmt.Errorf("failed to envelope %s/%s: %w", owner, key, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.url(owner, key), bytes.NewReader(envelope))
	if err != nil {
		return err
	}
	resp, err := r.do(req)
	if err != nil {
		return fmt.Errorf("failed to save %s/%s remotely: %w", owner, key, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to save %s/%s remotely: status %s", owner, key, resp.Status)
	}
	return nil
}

// Load implements Gateway with a GET, unwrapping the payload at $.data.
func (r *Remote) Load(ctx context.Context, owner string, key Key) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(owner, key), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s remotely: %w", owner, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load %s/%s remotely: status %s", owner, key, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid response for %s/%s: %w", owner, key, err)
	}
	jval, err := jsonpath.Get("$.data", jobj)
	if err != nil {
		return nil, fmt.Errorf("missing data in response for %s/%s: %w", owner, key, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	payload, ok := jval.(string)
	if !ok {
		return nil, fmt.Errorf("invalid data in response for %s/%s: not a string", owner, key)
	}
	return []byte(payload), nil
}

package primarium

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// publishPayload is the wire format the n8n deployment workflows accept.
type publishPayload struct {
	Name  string            `json:"name"`
	Files map[string]string `json:"files-content"`
}

// Publisher ships generated site bundles to the n8n deployment webhooks.
// CreateSite targets the first-publish workflow, UpdateSite the republish
// one; the workflows answer with a plain-text or JSON success token.
type Publisher struct {
	createURL string
	updateURL string
	client    *http.Client
}

// NewPublisher builds a Publisher for the two webhook endpoints.
func NewPublisher(createURL, updateURL string) *Publisher {
	return &Publisher{
		createURL: createURL,
		updateURL: updateURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// BundleName derives the deployment bundle name from a settlement:
// the settlement name joined with its uppercased region.
func BundleName(s Settlement) string {
	return s.Name + "-" + strings.ToUpper(s.Region)
}

// CreateSite publishes a brand-new site through the create workflow.
func (p *Publisher) CreateSite(ctx context.Context, s Settlement, files map[string]string) error {
	return p.send(ctx, http.MethodPost, p.createURL, s, files)
}

// UpdateSite republishes an existing site through the update workflow.
func (p *Publisher) UpdateSite(ctx context.Context, s Settlement, files map[string]string) error {
	return p.send(ctx, http.MethodPatch, p.updateURL, s, files)
}

func (p *Publisher) send(ctx context.Context, method, url string, s Settlement, files map[string]string) error {
	if url == "" {
		return fmt.Errorf("publish webhook not configured")
	}
	body, err := json.Marshal(publishPayload{Name: BundleName(s), Files: files})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("publish webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("publish webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if !isSuccessBody(raw) {
		return fmt.Errorf("publish webhook did not confirm success: %s", strings.TrimSpace(string(raw)))
	}
	return nil
}

// isSuccessBody accepts the workflows' confirmation tokens. The historical
// update workflow answers with the misspelled "suuccess", so both spellings
// count, either as a bare string or inside a JSON status field.
func isSuccessBody(raw []byte) bool {
	text := strings.ToLower(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if text == "success" || text == "suuccess" {
		return true
	}
	var obj struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		st := strings.ToLower(strings.TrimSpace(obj.Status))
		return st == "success" || st == "suuccess"
	}
	return false
}

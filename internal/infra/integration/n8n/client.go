package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Client talks to the two n8n workflow webhooks: intake (scoring pipeline)
// and outreach (contact dispatch). Response bodies are not consumed beyond
// error reporting; success is any 2xx status.
type Client struct {
	intakeURL   string
	outreachURL string
	httpClient  *http.Client
}

func NewClient(intakeURL, outreachURL string) *Client {
	return &Client{
		intakeURL:   intakeURL,
		outreachURL: outreachURL,
		httpClient:  http.DefaultClient,
	}
}

func (c *Client) ForwardIntake(ctx context.Context, payload IntakePayload) error {
	if c.intakeURL == "" {
		log.Println("⚠️ n8n: INTAKE_WEBHOOK_URL not configured")
		return fmt.Errorf("intake webhook not configured")
	}

	if err := c.post(ctx, c.intakeURL, payload); err != nil {
		return fmt.Errorf("intake webhook: %w", err)
	}

	log.Printf("✅ n8n: intake forwarded for %s", payload.Email)
	return nil
}

func (c *Client) TriggerOutreach(ctx context.Context, payload OutreachPayload) error {
	if c.outreachURL == "" {
		log.Println("⚠️ n8n: OUTREACH_WEBHOOK_URL not configured")
		return fmt.Errorf("outreach webhook not configured")
	}

	if err := c.post(ctx, c.outreachURL, payload); err != nil {
		return fmt.Errorf("outreach webhook: %w", err)
	}

	log.Printf("✅ n8n: outreach triggered for lead %s", payload.LeadID)
	return nil
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d - %s", resp.StatusCode, string(snippet))
	}

	return nil
}

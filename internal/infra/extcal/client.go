// Package extcal talks to the external busy-interval provider over its REST
// surface. The vendor protocol is an external collaborator's concern; this
// client only knows the resource paths, the credential header and how to
// classify failures into the typed degradation results the rest of the
// system expects.
package extcal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rehearsal-rooms/internal/pkg/config"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/shared"
)

type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(cfg config.ExtCalConfig) shared.BusyProvider {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type eventPayload struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type mirrorPayload struct {
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

func (c *Client) ListBusy(ctx context.Context, calendarRef string, from, to time.Time) ([]shared.BusyEvent, error) {
	path := fmt.Sprintf("/calendars/%s/events?from=%s&to=%s",
		url.PathEscape(calendarRef),
		url.QueryEscape(from.Format(time.RFC3339)),
		url.QueryEscape(to.Format(time.RFC3339)))

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var payload []eventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed provider response"), shared.ErrProviderUnavailable)
	}

	events := make([]shared.BusyEvent, len(payload))
	for i, p := range payload {
		events[i] = shared.BusyEvent{OriginID: p.ID, Start: p.Start, End: p.End}
	}
	return events, nil
}

func (c *Client) CreateMirror(ctx context.Context, calendarRef string, event shared.MirrorEvent) (string, error) {
	path := fmt.Sprintf("/calendars/%s/events", url.PathEscape(calendarRef))

	body, err := c.do(ctx, http.MethodPost, path, mirrorPayload{
		Summary: event.Summary,
		Start:   event.Start,
		End:     event.End,
	})
	if err != nil {
		return "", err
	}

	var created eventPayload
	if err := json.Unmarshal(body, &created); err != nil {
		return "", errs.Mark(errs.Wrap(err, "malformed provider response"), shared.ErrProviderUnavailable)
	}
	return created.ID, nil
}

func (c *Client) UpdateMirror(ctx context.Context, calendarRef, originID string, event shared.MirrorEvent) error {
	path := fmt.Sprintf("/calendars/%s/events/%s",
		url.PathEscape(calendarRef), url.PathEscape(originID))

	_, err := c.do(ctx, http.MethodPut, path, mirrorPayload{
		Summary: event.Summary,
		Start:   event.Start,
		End:     event.End,
	})
	return err
}

func (c *Client) DeleteMirror(ctx context.Context, calendarRef, originID string) error {
	path := fmt.Sprintf("/calendars/%s/events/%s",
		url.PathEscape(calendarRef), url.PathEscape(originID))

	_, err := c.do(ctx, http.MethodDelete, path, nil)
	if errors.Is(err, shared.ErrRoomNotMapped) {
		// Mirror already gone; deletion is idempotent.
		return nil
	}
	return err
}

func (c *Client) Probe(ctx context.Context, calendarRef string) error {
	path := fmt.Sprintf("/calendars/%s", url.PathEscape(calendarRef))
	_, err := c.do(ctx, http.MethodGet, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode provider request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures are the same degradation.
		return nil, errs.Mark(err, shared.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrProviderUnavailable)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errs.Mark(errs.New(resp.Status), shared.ErrProviderAuthFailed)
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Mark(errs.New(resp.Status), shared.ErrRoomNotMapped)
	default:
		return nil, errs.Mark(errs.New(resp.Status), shared.ErrProviderUnavailable)
	}
}

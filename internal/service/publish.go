package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jarana/guia/internal/config"
	"github.com/jarana/guia/internal/domain"
)

var (
	ErrPublishFailed        = domain.ErrPublishFailed
	ErrPublishNotConfigured = domain.ErrPublishNotConfigured
)

// PublishError is returned when the dispatch endpoint answers with anything
// other than 204.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish webhook returned %d: %s", e.StatusCode, e.Body)
}

func (e *PublishError) Unwrap() error {
	return ErrPublishFailed
}

// Publisher asks the static site repository to rebuild by sending a
// repository_dispatch event.
type Publisher struct {
	conf   *config.PublishConfig
	client *http.Client
}

func NewPublisher(conf *config.PublishConfig) *Publisher {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Publisher{
		conf:   conf,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *Publisher) Configured() bool {
	return p.conf.Owner != "" && p.conf.Repo != "" && p.conf.Token != ""
}

func (p *Publisher) Publish(ctx context.Context) error {
	if !p.Configured() {
		return ErrPublishNotConfigured
	}

	body, err := json.Marshal(map[string]string{"event_type": p.conf.EventType})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/dispatches", strings.TrimRight(p.conf.APIBaseURL, "/"), p.conf.Owner, p.conf.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+p.conf.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &PublishError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	zap.L().Info("publish webhook sent", zap.String("repo", p.conf.Owner+"/"+p.conf.Repo))

	return nil
}

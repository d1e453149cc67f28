// Package cleanup provides conversation retention for the messaging
// gateway.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/easypath-ai/easypath/pkg/services"
)

// Config sets the retention policy.
type Config struct {
	// IdleCloseAfter closes active conversations with no message
	// activity for this long.
	IdleCloseAfter time.Duration
	// ArchiveAfter archives closed conversations idle for this long.
	ArchiveAfter time.Duration
	// Interval is how often the policy runs.
	Interval time.Duration
}

func (c *Config) applyDefaults() {
	if c.IdleCloseAfter <= 0 {
		c.IdleCloseAfter = 7 * 24 * time.Hour
	}
	if c.ArchiveAfter <= 0 {
		c.ArchiveAfter = 30 * 24 * time.Hour
	}
	if c.Interval <= 0 {
		c.Interval = time.Hour
	}
}

// Service periodically enforces retention:
//   - Closes active conversations idle past IdleCloseAfter
//   - Archives closed conversations idle past ArchiveAfter
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	cfg           Config
	conversations *services.ConversationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(cfg Config, conversations *services.ConversationService) *Service {
	cfg.applyDefaults()
	return &Service{cfg: cfg, conversations: conversations}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"idle_close_after", s.cfg.IdleCloseAfter,
		"archive_after", s.cfg.ArchiveAfter,
		"interval", s.cfg.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies the retention policy a single time.
func (s *Service) RunOnce(ctx context.Context) {
	closed, err := s.conversations.CloseIdleConversations(ctx, s.cfg.IdleCloseAfter)
	if err != nil {
		slog.Error("Retention: closing idle conversations failed", "error", err)
	} else if closed > 0 {
		slog.Info("Retention: closed idle conversations", "count", closed)
	}

	archived, err := s.conversations.ArchiveClosedConversations(ctx, s.cfg.ArchiveAfter)
	if err != nil {
		slog.Error("Retention: archiving conversations failed", "error", err)
	} else if archived > 0 {
		slog.Info("Retention: archived conversations", "count", archived)
	}
}

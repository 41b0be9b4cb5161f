// Package notify implements the best-effort notification dispatcher. A
// successful send triggers one out-of-band SMS to the recipient; the outcome
// is never awaited by the send path and never affects its result.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/splitchat/splitchat/internal/logging"
	"github.com/splitchat/splitchat/internal/vault"
)

// SMSSender is the slice of the content store client the dispatcher needs.
type SMSSender interface {
	SendSMS(ctx context.Context, req vault.SMSRequest) error
}

// SenderFactory builds an SMSSender authorized with the given credential.
type SenderFactory func(credential string) SMSSender

// Config carries the SMS bridge settings and the per-notification timeout.
type Config struct {
	ProviderAccountSID string
	ProviderKeySID     string
	ProviderKeySecret  string
	FromNumber         string
	LinkBase           string
	Timeout            time.Duration
}

// Dispatcher sends at-most-once alerts on detached goroutines. Failures go
// to the dead-letter log (structured log entries) and are otherwise dropped.
type Dispatcher struct {
	factory SenderFactory
	cfg     Config
	logger  logging.Logger
	wg      sync.WaitGroup
}

// NewDispatcher builds a Dispatcher that sends through the given vault
// client, re-authorized per call with the sender's delegated credential.
func NewDispatcher(base *vault.Client, cfg Config, logger logging.Logger) *Dispatcher {
	factory := func(credential string) SMSSender {
		return base.WithCredential(credential)
	}
	return NewDispatcherWithFactory(factory, cfg, logger)
}

// NewDispatcherWithFactory builds a Dispatcher with a custom sender factory.
// Used by tests.
func NewDispatcherWithFactory(factory SenderFactory, cfg Config, logger logging.Logger) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Dispatcher{
		factory: factory,
		cfg:     cfg,
		logger:  logger.With("module", "notify"),
	}
}

// Dispatch queues one alert for the recipient and returns immediately. The
// delegated credential authorizes the store call; the store resolves the
// recipient's phone number from their user attributes.
func (d *Dispatcher) Dispatch(credential, recipientUserID string) {
	body := fmt.Sprintf("You have a new message: %s/conversation/%s", d.cfg.LinkBase, recipientUserID)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()

		err := d.factory(credential).SendSMS(ctx, vault.SMSRequest{
			ProviderAccountSID: d.cfg.ProviderAccountSID,
			ProviderKeySID:     d.cfg.ProviderKeySID,
			ProviderKeySecret:  d.cfg.ProviderKeySecret,
			FromNumber:         d.cfg.FromNumber,
			ToUserID:           recipientUserID,
			ToUserAttribute:    "phoneNumber",
			Body:               body,
		})
		if err != nil {
			d.logger.Error(ctx, "notification dead-letter",
				"recipient", recipientUserID, "error", err.Error())
			return
		}
		d.logger.Debug(ctx, "notification sent", "recipient", recipientUserID)
	}()
}

// Wait blocks until all in-flight notifications finish. Called during
// graceful shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Package export writes claim, user, and image data to CSV and delivers
// it to a configured destination. Exports can optionally be encrypted to
// an age recipient before they leave the process.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"filippo.io/age"

	"njia-admin/internal/model"
)

// Sink is a pluggable export destination. Put stores the named object
// and returns the location it ended up at.
type Sink interface {
	Put(ctx context.Context, name string, r io.Reader) (string, error)
}

// Clock abstracts time retrieval so export names are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Exporter renders datasets to CSV and hands them to a Sink.
type Exporter struct {
	sink      Sink
	recipient age.Recipient // nil means plaintext exports
	clock     Clock
}

// NewExporter creates an Exporter over sink. ageRecipient, when
// non-empty, must be an X25519 public key ("age1...") that exports are
// encrypted to.
func NewExporter(sink Sink, ageRecipient string, clock Clock) (*Exporter, error) {
	if clock == nil {
		clock = RealClock{}
	}
	e := &Exporter{sink: sink, clock: clock}
	if ageRecipient != "" {
		r, err := age.ParseX25519Recipient(ageRecipient)
		if err != nil {
			return nil, fmt.Errorf("parsing age recipient: %w", err)
		}
		e.recipient = r
	}
	return e, nil
}

// Claims exports the given claims as CSV and returns the destination.
func (e *Exporter) Claims(ctx context.Context, claims []model.Claim) (string, error) {
	var buf bytes.Buffer
	if err := WriteClaimsCSV(&buf, claims); err != nil {
		return "", err
	}
	return e.deliver(ctx, "claims", &buf)
}

// Users exports the given users as CSV and returns the destination.
func (e *Exporter) Users(ctx context.Context, users []model.User) (string, error) {
	var buf bytes.Buffer
	if err := WriteUsersCSV(&buf, users); err != nil {
		return "", err
	}
	return e.deliver(ctx, "users", &buf)
}

// Images exports the given images as CSV and returns the destination.
func (e *Exporter) Images(ctx context.Context, images []model.Image) (string, error) {
	var buf bytes.Buffer
	if err := WriteImagesCSV(&buf, images); err != nil {
		return "", err
	}
	return e.deliver(ctx, "images", &buf)
}

func (e *Exporter) deliver(ctx context.Context, dataset string, plain *bytes.Buffer) (string, error) {
	name := fmt.Sprintf("%s-%s.csv", dataset, e.clock.Now().UTC().Format("20060102T150405Z"))

	if e.recipient == nil {
		return e.sink.Put(ctx, name, plain)
	}

	var sealed bytes.Buffer
	w, err := age.Encrypt(&sealed, e.recipient)
	if err != nil {
		return "", fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.Copy(w, plain); err != nil {
		return "", fmt.Errorf("encrypting export: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing encryption: %w", err)
	}
	return e.sink.Put(ctx, name+".age", &sealed)
}

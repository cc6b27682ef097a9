package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"filippo.io/age"

	"njia-admin/internal/export"
	"njia-admin/internal/model"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

var testClock = fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

func testClaims() []model.Claim {
	confirmed := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	return []model.Claim{
		{
			ID:               1,
			User:             model.User{Email: "owner@example.com"},
			Location:         "Nairobi, \"CBD\"",
			Latitude:         -1.2921,
			Longitude:        36.8219,
			Status:           model.StatusVerified,
			Severity:         model.SeverityHigh,
			DetectionType:    model.DetectionAutomatic,
			Description:      "water damage",
			Hash:             "abc123",
			ConfirmationTime: &confirmed,
			CreatedAt:        time.Date(2024, 5, 29, 8, 0, 0, 0, time.UTC),
			Images:           []model.Image{{ID: 10}, {ID: 11}},
		},
		{ID: 2, Status: model.StatusPending},
	}
}

func TestWriteClaimsCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := export.WriteClaimsCSV(&buf, testClaims()); err != nil {
		t.Fatalf("WriteClaimsCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 claims", len(rows))
	}
	if rows[1][1] != "owner@example.com" || rows[1][5] != "VERIFIED" {
		t.Errorf("claim row = %v", rows[1])
	}
	if rows[1][2] != `Nairobi, "CBD"` {
		t.Errorf("location with quotes mangled: %q", rows[1][2])
	}
	if rows[1][12] != "2" {
		t.Errorf("image count = %q, want 2", rows[1][12])
	}
}

func TestExporter_PlaintextToMemorySink(t *testing.T) {
	t.Parallel()
	sink := export.NewMemorySink()
	e, err := export.NewExporter(sink, "", testClock)
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	dest, err := e.Claims(context.Background(), testClaims())
	if err != nil {
		t.Fatalf("Claims() error = %v", err)
	}
	if dest != "memory://claims-20240601T120000Z.csv" {
		t.Errorf("dest = %q", dest)
	}
	data, ok := sink.Object("claims-20240601T120000Z.csv")
	if !ok {
		t.Fatal("export missing from sink")
	}
	if !strings.HasPrefix(string(data), "ID,UserEmail,") {
		t.Errorf("export does not start with the CSV header: %q", data[:20])
	}
}

func TestExporter_EncryptsToRecipient(t *testing.T) {
	t.Parallel()
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("generating identity: %v", err)
	}

	sink := export.NewMemorySink()
	e, err := export.NewExporter(sink, identity.Recipient().String(), testClock)
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	if _, err := e.Users(context.Background(), []model.User{{ID: 1, Email: "a@b.c"}}); err != nil {
		t.Fatalf("Users() error = %v", err)
	}

	sealed, ok := sink.Object("users-20240601T120000Z.csv.age")
	if !ok {
		t.Fatalf("encrypted export missing; sink holds %v", sink.Names())
	}

	// Only the matching identity can open it.
	r, err := age.Decrypt(bytes.NewReader(sealed), identity)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading decrypted export: %v", err)
	}
	if !strings.Contains(string(plain), "a@b.c") {
		t.Errorf("decrypted export missing data: %q", plain)
	}
}

func TestExporter_RejectsBadRecipient(t *testing.T) {
	t.Parallel()
	if _, err := export.NewExporter(export.NewMemorySink(), "not-a-key", testClock); err == nil {
		t.Error("NewExporter() accepted a malformed recipient")
	}
}

func TestFileSink_Put(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sink, err := export.NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}

	dest, err := sink.Put(context.Background(), "claims-test.csv", strings.NewReader("ID\n1\n"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}
	if string(data) != "ID\n1\n" {
		t.Errorf("file contents = %q", data)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("export dir holds %d entries, want 1", len(entries))
	}
}

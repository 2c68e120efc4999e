//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	sealgate "github.com/sealgate/client-go"
)

var (
	gatewayID  string
	secret     string
	endpoint   string
	privateKey string
	recipient  string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	gatewayID = os.Getenv("SEALGATE_GATEWAY_ID")
	secret = os.Getenv("SEALGATE_GATEWAY_SECRET")
	endpoint = os.Getenv("SEALGATE_URL")
	privateKey = os.Getenv("SEALGATE_PRIVATE_KEY")
	recipient = os.Getenv("SEALGATE_TEST_RECIPIENT")

	if gatewayID == "" || secret == "" {
		os.Stderr.WriteString("Skipping integration tests: SEALGATE_GATEWAY_ID or SEALGATE_GATEWAY_SECRET not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func clientOptions() []sealgate.Option {
	var opts []sealgate.Option
	if endpoint != "" {
		opts = append(opts, sealgate.WithEndpoint(endpoint))
	}
	return opts
}

func newSimpleClient(t *testing.T) *sealgate.SimpleClient {
	t.Helper()

	client, err := sealgate.NewSimple(gatewayID, secret, clientOptions()...)
	if err != nil {
		t.Fatalf("NewSimple() error = %v", err)
	}
	return client
}

func newE2EClient(t *testing.T) *sealgate.E2EClient {
	t.Helper()

	if privateKey == "" {
		t.Skip("SEALGATE_PRIVATE_KEY not set")
	}
	opts := append(clientOptions(), sealgate.WithPrivateKeyHex(privateKey))
	client, err := sealgate.NewE2E(gatewayID, secret, opts...)
	if err != nil {
		t.Fatalf("NewE2E() error = %v", err)
	}
	return client
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestIntegration_LookupCredits(t *testing.T) {
	client := newSimpleClient(t)

	credits, err := client.LookupCredits(testContext(t))
	if err != nil {
		t.Fatalf("LookupCredits() error = %v", err)
	}
	if credits < 0 {
		t.Errorf("credits = %d, want >= 0", credits)
	}
	t.Logf("remaining credits: %d", credits)
}

func TestIntegration_LookupPubkey(t *testing.T) {
	if recipient == "" {
		t.Skip("SEALGATE_TEST_RECIPIENT not set")
	}
	client := newSimpleClient(t)

	pubkey, err := client.LookupPubkey(testContext(t), recipient)
	if err != nil {
		t.Fatalf("LookupPubkey(%s) error = %v", recipient, err)
	}
	t.Logf("public key of %s: %s", recipient, pubkey.Hex())
}

func TestIntegration_LookupCapabilities(t *testing.T) {
	if recipient == "" {
		t.Skip("SEALGATE_TEST_RECIPIENT not set")
	}
	client := newSimpleClient(t)

	caps, err := client.LookupCapabilities(testContext(t), recipient)
	if err != nil {
		t.Fatalf("LookupCapabilities(%s) error = %v", recipient, err)
	}
	if !caps.Has(sealgate.CapText) {
		t.Errorf("capabilities %s do not include text", caps)
	}
}

func TestIntegration_SendE2EText(t *testing.T) {
	if recipient == "" {
		t.Skip("SEALGATE_TEST_RECIPIENT not set")
	}
	client := newE2EClient(t)
	ctx := testContext(t)

	pubkey, err := client.LookupPubkey(ctx, recipient)
	if err != nil {
		t.Fatalf("LookupPubkey(%s) error = %v", recipient, err)
	}

	msg, err := client.EncryptText("integration test message", pubkey)
	if err != nil {
		t.Fatalf("EncryptText() error = %v", err)
	}

	msgID, err := client.Send(ctx, recipient, msg, false)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if msgID == "" {
		t.Error("Send() returned empty message id")
	}
	t.Logf("sent message %s", msgID)
}

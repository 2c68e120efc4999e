package api

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sealgate/client-go/internal/crypto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("*TESTGWID", "gw-secret", WithEndpoint(server.URL))
}

func TestLookupPubkey(t *testing.T) {
	t.Parallel()
	const wantKey = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/pubkeys/ECHOECHO" {
			t.Errorf("path = %s, want /pubkeys/ECHOECHO", r.URL.Path)
		}
		if r.URL.Query().Get("from") != "*TESTGWID" {
			t.Errorf("from = %s", r.URL.Query().Get("from"))
		}
		if r.URL.Query().Get("secret") != "gw-secret" {
			t.Errorf("secret = %s", r.URL.Query().Get("secret"))
		}
		io.WriteString(w, wantKey)
	})

	key, err := client.LookupPubkey(context.Background(), "ECHOECHO")
	if err != nil {
		t.Fatalf("LookupPubkey() error = %v", err)
	}
	if key != wantKey {
		t.Errorf("key = %s, want %s", key, wantKey)
	}
}

func TestLookupID(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup/phone/41791234567" {
			t.Errorf("path = %s", r.URL.Path)
		}
		io.WriteString(w, "ECHOECHO\n")
	})

	id, err := client.LookupID(context.Background(), CriterionPhone("41791234567"))
	if err != nil {
		t.Fatalf("LookupID() error = %v", err)
	}
	if id != "ECHOECHO" {
		t.Errorf("id = %q, want ECHOECHO", id)
	}
}

func TestLookupCapabilities(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/capabilities/ECHOECHO" {
			t.Errorf("path = %s", r.URL.Path)
		}
		io.WriteString(w, "text,image,file,futurecap")
	})

	caps, err := client.LookupCapabilities(context.Background(), "ECHOECHO")
	if err != nil {
		t.Fatalf("LookupCapabilities() error = %v", err)
	}
	if !caps.Has(CapFile) || !caps.Has(CapText) {
		t.Errorf("capabilities = %s, want text and file present", caps)
	}
	if len(caps.List()) != 3 {
		t.Errorf("List() = %v, unknown token not ignored", caps.List())
	}
}

func TestLookupCredits(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/credits" {
			t.Errorf("path = %s", r.URL.Path)
		}
		io.WriteString(w, "1337\n")
	})

	credits, err := client.LookupCredits(context.Background())
	if err != nil {
		t.Fatalf("LookupCredits() error = %v", err)
	}
	if credits != 1337 {
		t.Errorf("credits = %d, want 1337", credits)
	}
}

func TestLookupCredits_UnparsedBody(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not a number")
	})

	_, err := client.LookupCredits(context.Background())
	if !errors.Is(err, ErrUnparsedResponse) {
		t.Errorf("error = %v, want ErrUnparsedResponse", err)
	}
}

func TestSendSimple(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/send_simple" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("from") != "*TESTGWID" || r.PostForm.Get("secret") != "gw-secret" {
			t.Error("credentials missing from form")
		}
		if r.PostForm.Get("phone") != "41791234567" {
			t.Errorf("phone = %s", r.PostForm.Get("phone"))
		}
		if r.PostForm.Get("text") != "hello there" {
			t.Errorf("text = %s", r.PostForm.Get("text"))
		}
		io.WriteString(w, "0a1b2c3d4e5f6071")
	})

	msgID, err := client.SendSimple(context.Background(), RecipientPhone("41791234567"), "hello there")
	if err != nil {
		t.Fatalf("SendSimple() error = %v", err)
	}
	if msgID != "0a1b2c3d4e5f6071" {
		t.Errorf("message id = %s", msgID)
	}
}

func TestSendE2E_FormFields(t *testing.T) {
	t.Parallel()
	nonce, err := crypto.NewNonce()
	if err != nil {
		t.Fatal(err)
	}
	box := []byte{0x01, 0x02, 0x03, 0xff}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send_e2e" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("to") != "ECHOECHO" {
			t.Errorf("to = %s", r.PostForm.Get("to"))
		}
		// Nonce and box travel as independent hex fields.
		if r.PostForm.Get("nonce") != nonce.Hex() {
			t.Errorf("nonce = %s, want %s", r.PostForm.Get("nonce"), nonce.Hex())
		}
		if r.PostForm.Get("box") != hex.EncodeToString(box) {
			t.Errorf("box = %s", r.PostForm.Get("box"))
		}
		if r.PostForm.Get("delivery_receipts") != "1" {
			t.Errorf("delivery_receipts = %q, want 1", r.PostForm.Get("delivery_receipts"))
		}
		io.WriteString(w, "aabbccddeeff0011")
	})

	msgID, err := client.SendE2E(context.Background(), "ECHOECHO", nonce, box, true, nil)
	if err != nil {
		t.Fatalf("SendE2E() error = %v", err)
	}
	if msgID != "aabbccddeeff0011" {
		t.Errorf("message id = %s", msgID)
	}
}

func TestSendE2E_DeliveryReceiptsOmitted(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if _, present := r.PostForm["delivery_receipts"]; present {
			t.Error("delivery_receipts sent for a one-way send")
		}
		io.WriteString(w, "aabbccddeeff0011")
	})

	var nonce crypto.Nonce
	if _, err := client.SendE2E(context.Background(), "ECHOECHO", nonce, []byte{0x01}, false, nil); err != nil {
		t.Fatalf("SendE2E() error = %v", err)
	}
}

func TestUploadBlob(t *testing.T) {
	t.Parallel()
	data := []byte("sealed blob bytes")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload_blob" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("persist") != "1" {
			t.Errorf("persist = %q, want 1", r.URL.Query().Get("persist"))
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type = %s", r.Header.Get("Content-Type"))
		}
		file, _, err := r.FormFile("blob")
		if err != nil {
			t.Fatalf("FormFile(blob): %v", err)
		}
		defer file.Close()
		got, err := io.ReadAll(file)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(data) {
			t.Errorf("blob part = %q, want %q", got, data)
		}
		io.WriteString(w, "0123456789abcdef0123456789abcdef")
	})

	id, err := client.UploadBlob(context.Background(), data, true)
	if err != nil {
		t.Fatalf("UploadBlob() error = %v", err)
	}
	if id.Hex() != "0123456789abcdef0123456789abcdef" {
		t.Errorf("blob id = %s", id)
	}
}

func TestUploadBlob_UnparsedBody(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "oops")
	})

	_, err := client.UploadBlob(context.Background(), []byte("data"), false)
	if !errors.Is(err, ErrUnparsedResponse) {
		t.Errorf("error = %v, want ErrUnparsedResponse", err)
	}
}

func TestDownloadBlob(t *testing.T) {
	t.Parallel()
	id, err := crypto.BlobIDFromHex("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatal(err)
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blobs/0123456789abcdef0123456789abcdef" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte{0xde, 0xad})
	})

	data, err := client.DownloadBlob(context.Background(), id)
	if err != nil {
		t.Fatalf("DownloadBlob() error = %v", err)
	}
	if len(data) != 2 || data[0] != 0xde {
		t.Errorf("data = %v", data)
	}
}

package api

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestRecipient_FormFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		recipient Recipient
		field     string
		value     string
	}{
		{"id", RecipientID("ECHOECHO"), "to", "ECHOECHO"},
		{"phone", RecipientPhone("41791234567"), "phone", "41791234567"},
		{"email", RecipientEmail("test@example.com"), "email", "test@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			tt.recipient.apply(form)
			if form.Get(tt.field) != tt.value {
				t.Errorf("form[%s] = %q, want %q", tt.field, form.Get(tt.field), tt.value)
			}
			if len(form) != 1 {
				t.Errorf("form has %d fields, want 1", len(form))
			}
		})
	}
}

func TestLookupCriterion_Path(t *testing.T) {
	t.Parallel()
	if got := CriterionPhone("41791234567").path(); got != "phone/41791234567" {
		t.Errorf("path = %q", got)
	}
	if got := CriterionEmail("test@example.com").path(); got != "email/test@example.com" {
		t.Errorf("path = %q", got)
	}
}

func TestCriterionHash_Validation(t *testing.T) {
	t.Parallel()
	validHash := strings.Repeat("ab", 32)

	tests := []struct {
		name string
		hash string
		ok   bool
	}{
		{"valid", validHash, true},
		{"empty", "", false},
		{"too short", validHash[:62], false},
		{"too long", validHash + "ab", false},
		{"uppercase", strings.ToUpper(validHash), false},
		{"non hex", strings.Repeat("zz", 32), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, phoneErr := CriterionPhoneHash(tt.hash)
			_, emailErr := CriterionEmailHash(tt.hash)
			for _, err := range []error{phoneErr, emailErr} {
				if tt.ok && err != nil {
					t.Errorf("error = %v, want nil", err)
				}
				if !tt.ok && !errors.Is(err, ErrBadHashLength) {
					t.Errorf("error = %v, want ErrBadHashLength", err)
				}
			}
		})
	}

	criterion, err := CriterionPhoneHash(validHash)
	if err != nil {
		t.Fatal(err)
	}
	if got := criterion.path(); got != "phone_hash/"+validHash {
		t.Errorf("path = %q", got)
	}
}

func TestParseCapabilities(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		has     []Capability
		lacks   []Capability
		listLen int
	}{
		{
			name:    "full set",
			input:   "text,image,video,audio,file,group",
			has:     []Capability{CapText, CapImage, CapVideo, CapAudio, CapFile, CapGroup},
			listLen: 6,
		},
		{
			name:    "partial",
			input:   "text,image",
			has:     []Capability{CapText, CapImage},
			lacks:   []Capability{CapFile, CapVideo},
			listLen: 2,
		},
		{
			name:    "unknown tokens ignored",
			input:   "text,hologram,file,quantum",
			has:     []Capability{CapText, CapFile},
			listLen: 2,
		},
		{
			name:    "whitespace tolerated",
			input:   " text , file ",
			has:     []Capability{CapText, CapFile},
			listLen: 2,
		},
		{
			name:    "empty",
			input:   "",
			lacks:   []Capability{CapText},
			listLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := ParseCapabilities(tt.input)
			for _, c := range tt.has {
				if !caps.Has(c) {
					t.Errorf("Has(%s) = false, want true", c)
				}
			}
			for _, c := range tt.lacks {
				if caps.Has(c) {
					t.Errorf("Has(%s) = true, want false", c)
				}
			}
			if got := len(caps.List()); got != tt.listLen {
				t.Errorf("List() has %d entries, want %d", got, tt.listLen)
			}
		})
	}
}

func TestCapabilities_String(t *testing.T) {
	t.Parallel()
	caps := ParseCapabilities("file,text,image")
	// List and String are sorted for stable output.
	if got := caps.String(); got != "file,image,text" {
		t.Errorf("String() = %q, want %q", got, "file,image,text")
	}
}

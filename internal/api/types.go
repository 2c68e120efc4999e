package api

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Recipient addresses a simple-mode send. The gateway resolves phone
// numbers and email addresses to an identity server-side.
type Recipient struct {
	field string
	value string
}

// RecipientID addresses a recipient by their gateway identity.
func RecipientID(id string) Recipient {
	return Recipient{field: "to", value: id}
}

// RecipientPhone addresses a recipient by phone number in E.164 format
// without the leading plus.
func RecipientPhone(number string) Recipient {
	return Recipient{field: "phone", value: number}
}

// RecipientEmail addresses a recipient by email address.
func RecipientEmail(addr string) Recipient {
	return Recipient{field: "email", value: addr}
}

// apply sets the recipient form field.
func (r Recipient) apply(form url.Values) {
	form.Set(r.field, r.value)
}

func (r Recipient) String() string {
	return r.field + ":" + r.value
}

const hashHexLength = 64

// LookupCriterion selects how an identity is looked up in the
// directory: by phone number or email address, plain or hashed.
type LookupCriterion struct {
	kind  string
	value string
}

// CriterionPhone looks up by plain phone number.
func CriterionPhone(number string) LookupCriterion {
	return LookupCriterion{kind: "phone", value: number}
}

// CriterionEmail looks up by plain email address.
func CriterionEmail(addr string) LookupCriterion {
	return LookupCriterion{kind: "email", value: addr}
}

// CriterionPhoneHash looks up by HMAC-SHA256 phone hash. The hash must
// be 64 hex characters; anything else fails with ErrBadHashLength
// before any network activity.
func CriterionPhoneHash(hash string) (LookupCriterion, error) {
	if err := checkHash(hash); err != nil {
		return LookupCriterion{}, err
	}
	return LookupCriterion{kind: "phone_hash", value: hash}, nil
}

// CriterionEmailHash looks up by HMAC-SHA256 email hash.
func CriterionEmailHash(hash string) (LookupCriterion, error) {
	if err := checkHash(hash); err != nil {
		return LookupCriterion{}, err
	}
	return LookupCriterion{kind: "email_hash", value: hash}, nil
}

func checkHash(hash string) error {
	if len(hash) != hashHexLength {
		return fmt.Errorf("%w: got %d characters, want %d", ErrBadHashLength, len(hash), hashHexLength)
	}
	for _, c := range hash {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: not a lowercase hex string", ErrBadHashLength)
		}
	}
	return nil
}

// path returns the criterion's URL path segment.
func (c LookupCriterion) path() string {
	return c.kind + "/" + url.PathEscape(c.value)
}

func (c LookupCriterion) String() string {
	return c.kind + "/" + c.value
}

// Capability is a feature a recipient's client can receive.
type Capability string

// Known capabilities.
const (
	CapText  Capability = "text"
	CapImage Capability = "image"
	CapVideo Capability = "video"
	CapAudio Capability = "audio"
	CapFile  Capability = "file"
	CapGroup Capability = "group"
)

var knownCapabilities = map[Capability]struct{}{
	CapText:  {},
	CapImage: {},
	CapVideo: {},
	CapAudio: {},
	CapFile:  {},
	CapGroup: {},
}

// Capabilities is the set of features a recipient supports. It is
// fetched fresh per query; callers cache it if they need to.
type Capabilities struct {
	set map[Capability]struct{}
}

// ParseCapabilities parses the comma-delimited token list returned by
// the capabilities endpoint. Unknown tokens are ignored so that new
// server-side capabilities never break old clients.
func ParseCapabilities(s string) Capabilities {
	caps := Capabilities{set: make(map[Capability]struct{})}
	for _, tok := range strings.Split(s, ",") {
		c := Capability(strings.TrimSpace(tok))
		if _, known := knownCapabilities[c]; known {
			caps.set[c] = struct{}{}
		}
	}
	return caps
}

// Has reports whether the recipient supports the capability.
func (c Capabilities) Has(cap Capability) bool {
	_, ok := c.set[cap]
	return ok
}

// List returns the supported capabilities in sorted order.
func (c Capabilities) List() []Capability {
	list := make([]Capability, 0, len(c.set))
	for cap := range c.set {
		list = append(list, cap)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

func (c Capabilities) String() string {
	parts := make([]string, 0, len(c.set))
	for _, cap := range c.List() {
		parts = append(parts, string(cap))
	}
	return strings.Join(parts, ",")
}

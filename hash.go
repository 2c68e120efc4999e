package sealgate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Directory hash keys. These are published protocol constants, not
// secrets: hashing only keeps plain phone numbers and email addresses
// out of lookup requests.
const (
	phoneHashKeyHex = "85adf8226953f3d96cfd5d09bf29555eb955fcd8aa5ec4f9fcd869e258370723"
	emailHashKeyHex = "30a5500fed9701fa6defdb610841900febb8e430881f7ad816826264ec09bad7"
)

func directoryHash(keyHex string, value []byte) string {
	key, _ := hex.DecodeString(keyHex)
	mac := hmac.New(sha256.New, key)
	mac.Write(value)
	return hex.EncodeToString(mac.Sum(nil))
}

// HashPhone hashes a phone number for a privacy-preserving directory
// lookup via CriterionPhoneHash. The number is normalized to its digits
// first, so "+41 79 123 45 67" and "41791234567" hash identically.
func HashPhone(number string) string {
	digits := make([]byte, 0, len(number))
	for _, c := range number {
		if c >= '0' && c <= '9' {
			digits = append(digits, byte(c))
		}
	}
	return directoryHash(phoneHashKeyHex, digits)
}

// HashEmail hashes an email address for a privacy-preserving directory
// lookup via CriterionEmailHash. The address is lowercased and trimmed
// first.
func HashEmail(addr string) string {
	normalized := strings.ToLower(strings.TrimSpace(addr))
	return directoryHash(emailHashKeyHex, []byte(normalized))
}

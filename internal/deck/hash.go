package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Domain prefixes for content hashes. The version suffix allows the hashing
// input to change without colliding with older fingerprints.
const (
	DomainDocument = "deckc/document/v1"
	DomainRender   = "deckc/render/v1"
)

// HashWithDomain computes SHA256(domain + 0x00 + data) as lowercase hex.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint identifies a document by what its layouts read. Two documents
// that differ only in ignored fields share a fingerprint.
func Fingerprint(doc *Document) (string, error) {
	normalized, err := doc.Normalized()
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to encode: %w", err)
	}
	canonical, err := MarshalCanonical(json.RawMessage(normalized))
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to canonicalize: %w", err)
	}
	return HashWithDomain(DomainDocument, canonical), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when the document is known to be well formed.
func MustFingerprint(doc *Document) string {
	fp, err := Fingerprint(doc)
	if err != nil {
		panic(err)
	}
	return fp
}

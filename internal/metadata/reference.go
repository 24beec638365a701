// Package metadata handles content-addressed references to off-chain batch
// metadata. The ledger binds each token permanently to a reference string at
// mint time; it never interprets the document behind it. References are the
// SHA-256 digest of the JCS-canonicalized metadata JSON, so any two parties
// holding the same document derive the same reference.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/gowebpki/jcs"

	"github.com/pharmadna/pharma-ledger/internal/domain"
)

const referencePrefix = "sha256:"

var referencePattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

// ValidReference checks if a metadata reference string is well-formed
func ValidReference(ref string) bool {
	return referencePattern.MatchString(ref)
}

// ReferenceFor computes the content-addressed reference for a metadata JSON
// document. The document is canonicalized (RFC 8785) before hashing so that
// key order and whitespace do not change the reference.
func ReferenceFor(doc []byte) (string, error) {
	canonical, err := jcs.Transform(doc)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata document: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return referencePrefix + hex.EncodeToString(sum[:]), nil
}

// VerifyReference checks that a reference matches the given metadata document.
// Returns domain.ErrInvalidMetadataReference when the reference is malformed
// or does not match the document's canonical digest.
func VerifyReference(ref string, doc []byte) error {
	if !ValidReference(ref) {
		return domain.ErrInvalidMetadataReference
	}

	computed, err := ReferenceFor(doc)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidMetadataReference, err)
	}

	if computed != ref {
		return domain.ErrInvalidMetadataReference
	}

	return nil
}

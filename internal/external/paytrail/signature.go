package paytrail

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"paytrailgw/internal/controller/apperror"
)

// HeaderPrefix selects which fields participate in the HMAC canonicalization.
const HeaderPrefix = "checkout-"

// SignatureField carries the computed digest on requests, responses and
// callbacks.
const SignatureField = "signature"

// Algorithm is the HMAC hash selected by the checkout-algorithm header.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

// ParseAlgorithm validates a checkout-algorithm value.
func ParseAlgorithm(raw string) (Algorithm, error) {
	switch Algorithm(raw) {
	case AlgorithmSHA256, AlgorithmSHA512:
		return Algorithm(raw), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", raw)
	}
}

func (a Algorithm) newHash() func() hash.Hash {
	if a == AlgorithmSHA512 {
		return sha512.New
	}
	return sha256.New
}

// Signer signs outbound payloads and verifies inbound ones.
type Signer interface {
	Sign(fields map[string]string, body []byte) (string, error)
	Verify(fields map[string]string, body []byte, signature string) error
}

// HmacSigner implements the header-canonicalization HMAC scheme. The hash
// function is chosen per payload from the checkout-algorithm field,
// defaulting to SHA-256.
type HmacSigner struct {
	secret string
}

func NewHmacSigner(secret string) *HmacSigner {
	return &HmacSigner{secret: secret}
}

// Sign canonicalizes all checkout-* fields plus the raw body and returns the
// hex HMAC digest.
func (s *HmacSigner) Sign(fields map[string]string, body []byte) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("%w: signing secret not configured", apperror.ErrSignatureMismatch)
	}

	algorithm := Algorithm(fields[HeaderPrefix+"algorithm"])
	if algorithm != AlgorithmSHA512 {
		algorithm = AlgorithmSHA256
	}

	mac := hmac.New(algorithm.newHash(), []byte(s.secret))
	mac.Write(canonicalPayload(fields, body))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the digest and compares it byte for byte. A missing
// signature is itself a verification failure.
func (s *HmacSigner) Verify(fields map[string]string, body []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: signature missing", apperror.ErrSignatureMismatch)
	}

	want, err := s.Sign(fields, body)
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(want), []byte(signature)) {
		return apperror.ErrSignatureMismatch
	}
	return nil
}

// canonicalPayload builds the HMAC input: every checkout-* field as a
// lowercase "key:value\n" line, sorted by key, followed by the raw body.
func canonicalPayload(fields map[string]string, body []byte) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, HeaderPrefix) {
			keys = append(keys, lk)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(valueFor(fields, k))
		b.WriteByte('\n')
	}
	b.Write(body)
	return []byte(b.String())
}

// valueFor looks a key up case-insensitively.
func valueFor(fields map[string]string, key string) string {
	if v, ok := fields[key]; ok {
		return v
	}
	for k, v := range fields {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Flatten collapses multi-valued headers or query parameters into the
// single-valued map the signature is computed over. Keys are lowercased and
// single-element lists are unwrapped to their only element.
func Flatten(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		fields[strings.ToLower(k)] = vs[0]
	}
	return fields
}

// Authcode computes the legacy concatenated-MD5 signature: the shared hash
// followed by the field values, pipe-separated, digested and uppercased.
// Field order is caller-defined and significant.
func Authcode(hash string, values []string) string {
	payload := hash + "|" + strings.Join(values, "|")
	sum := md5.Sum([]byte(payload))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// AuthcodeSigner implements the legacy scheme over an ordered value list.
type AuthcodeSigner struct {
	hash string
}

func NewAuthcodeSigner(hash string) *AuthcodeSigner {
	return &AuthcodeSigner{hash: hash}
}

// Sign returns the authcode for the ordered values.
func (s *AuthcodeSigner) Sign(values []string) (string, error) {
	if s.hash == "" {
		return "", fmt.Errorf("%w: merchant hash not configured", apperror.ErrSignatureMismatch)
	}
	return Authcode(s.hash, values), nil
}

// Verify compares the expected authcode against the received one. The
// comparison is exact and case-sensitive; authcodes are always uppercase.
func (s *AuthcodeSigner) Verify(values []string, authcode string) error {
	if authcode == "" {
		return fmt.Errorf("%w: authcode missing", apperror.ErrSignatureMismatch)
	}

	want, err := s.Sign(values)
	if err != nil {
		return err
	}

	if want != authcode {
		return apperror.ErrSignatureMismatch
	}
	return nil
}

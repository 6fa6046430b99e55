package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// SignatureString serializes fields into the exact string the gateway
// hashes: SignatureFieldOrder keys joined as key=encoded(value)&...,
// empty and absent fields skipped, then &passphrase=<secret> appended.
// The passphrase segment is always present, even for an empty secret,
// and the secret gets plain percent-encoding rather than the space/plus
// rule.
func SignatureString(fields map[string]string, passphrase string) string {
	var sb strings.Builder
	for _, key := range SignatureFieldOrder {
		value, ok := fields[key]
		if !ok || value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(encodeValue(value))
	}
	sb.WriteString("&passphrase=")
	sb.WriteString(percentEncode(passphrase))
	return sb.String()
}

// Sign returns the gateway signature for fields: the lowercase hex MD5
// of the signature string. MD5 is the gateway's documented algorithm;
// substituting a stronger hash breaks interoperability.
func Sign(fields map[string]string, passphrase string) string {
	sum := md5.Sum([]byte(SignatureString(fields, passphrase)))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the signature over fields and compares it to the
// claimed value. Fields outside SignatureFieldOrder are ignored, so ITN
// payloads can be passed in with the gateway-added fields still present.
// Exact string comparison is sufficient here: the signature is an
// interoperability checksum, not a locally generated secret.
func Verify(fields map[string]string, claimed, passphrase string) bool {
	return Sign(fields, passphrase) == claimed
}

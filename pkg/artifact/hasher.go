/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package artifact

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/minio/sha256-simd"
)

// HashLength is the length of a hex-encoded content hash.
const HashLength = 2 * sha256.Size

// Hash returns the hex-encoded SHA-256 digest of b.
func Hash(b []byte) string {
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:])
}

// HashReader returns the hex-encoded SHA-256 digest of everything read from r.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ValidHash reports whether s looks like a value returned by Hash.
func ValidHash(s string) bool {
	if len(s) != HashLength {
		return false
	}

	_, err := hex.DecodeString(s)

	return err == nil && s == strings.ToLower(s)
}

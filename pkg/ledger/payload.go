/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"strings"
	"unicode/utf8"
)

// Tag namespaces anchoring payloads.
const Tag = "PROOFLY"

// EncodePayload returns the transaction data anchoring hash and slug.
func EncodePayload(hash, slug string) []byte {
	return []byte(Tag + ":" + hash + ":" + slug)
}

// DecodePayload returns data as text. ok is false for empty data or data that is not valid UTF-8.
func DecodePayload(data []byte) (text string, ok bool) {
	if len(data) == 0 || !utf8.Valid(data) {
		return "", false
	}

	return string(data), true
}

// MatchesHash reports whether decoded payload text anchors hash.
func MatchesHash(text, hash string) bool {
	return strings.Contains(text, Tag+":"+hash+":")
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redacted = "[REDACTED]"

type rewrite struct {
	path  string
	apply func(v gjson.Result) interface{}
}

type options struct {
	rewrites []rewrite
}

// Opt rewrites a part of the marshaled value before it is attached to a span.
type Opt func(*options)

// WithRedacted replaces the value at the gjson path with [REDACTED].
// See https://github.com/tidwall/gjson/blob/master/SYNTAX.md for the path syntax.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.rewrites = append(o.rewrites, rewrite{
			path:  path,
			apply: func(gjson.Result) interface{} { return redacted },
		})
	}
}

// WithTruncated shortens a string at the gjson path to its first n characters followed by the original length.
// Non-string values and strings of at most n characters are left untouched.
func WithTruncated(path string, n int) Opt {
	return func(o *options) {
		o.rewrites = append(o.rewrites, rewrite{
			path: path,
			apply: func(v gjson.Result) interface{} {
				if v.Type != gjson.String || len(v.Str) <= n {
					return v.Value()
				}

				return fmt.Sprintf("%s...(%d)", v.Str[:n], len(v.Str))
			},
		})
	}
}

// JSON returns an attribute holding value marshaled to JSON with opts applied in order.
// A value that cannot be marshaled yields an empty attribute.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	kv := attribute.KeyValue{Key: attribute.Key(key)}

	b, err := json.Marshal(value)
	if err != nil {
		return kv
	}

	op := &options{}
	for _, opt := range opts {
		opt(op)
	}

	for _, rw := range op.rewrites {
		v := gjson.GetBytes(b, rw.path)
		if !v.Exists() {
			continue
		}

		if v.IsArray() && isQuery(rw.path) {
			b = rewriteEach(b, rw)

			continue
		}

		if updated, setErr := sjson.SetBytes(b, rw.path, rw.apply(v)); setErr == nil {
			b = updated
		}
	}

	kv.Value = attribute.StringValue(string(b))

	return kv
}

// rewriteEach applies rw to the field of every element of the array selected by a "#." path.
func rewriteEach(b []byte, rw rewrite) []byte {
	prefix, field := splitQuery(rw.path)

	parent := gjson.ParseBytes(b)
	if prefix != "" {
		parent = gjson.GetBytes(b, strings.TrimSuffix(prefix, "."))
	}

	for i, el := range parent.Array() {
		v := el.Get(field)
		if !v.Exists() {
			continue
		}

		if updated, err := sjson.SetBytes(b, fmt.Sprintf("%s%d.%s", prefix, i, field), rw.apply(v)); err == nil {
			b = updated
		}
	}

	return b
}

func isQuery(path string) bool {
	prefix, _ := splitQuery(path)

	return prefix != path
}

func splitQuery(path string) (string, string) {
	for i := 0; i+1 < len(path); i++ {
		if path[i] == '#' && path[i+1] == '.' && (i == 0 || path[i-1] == '.') {
			return path[:i], path[i+2:]
		}
	}

	return path, ""
}

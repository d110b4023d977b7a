// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf bytes.Buffer
	if formatTags(ctx, true /* brackets */, &buf) {
		buf.WriteByte(' ')
	}
	buf.WriteString(redact.Sprintf(format, args...).StripMarkers())
	return buf.String()
}

// formatTags appends the context tags to buf, and reports whether anything
// was written.
func formatTags(ctx context.Context, brackets bool, buf *bytes.Buffer) bool {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return false
	}
	tagList := tags.Get()
	if len(tagList) == 0 {
		return false
	}
	if brackets {
		buf.WriteByte('[')
	}
	for i := range tagList {
		t := &tagList[i]
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if v := t.ValueStr(); v != "" {
			// Single-letter keys are rendered without the '=' separator, as in
			// "[n1,s2]".
			if len(t.Key()) > 1 {
				buf.WriteByte('=')
			}
			buf.WriteString(strings.TrimSpace(v))
		}
	}
	if brackets {
		buf.WriteByte(']')
	}
	return true
}

// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"errors"
	"fmt"

	"github.com/tmplkit/tmplkit/pkg/filepos"
)

// ErrEmptyConcat reports NewConcat being invoked with zero children.
var ErrEmptyConcat = errors.New("expected at least one expression to concat")

// UnsupportedConstructError reports a template using one of the reserved
// conditional keywords (if/elif/else/endif), which the engine recognizes but
// does not evaluate.
type UnsupportedConstructError struct {
	Keyword string
	Span    filepos.Span
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("Unsupported construct '%s' at %s", e.Keyword, e.Span.Start().AsCompactString())
}

package types

import "github.com/pkg/errors"

// ErrTypeMismatch is returned when two registers of different variants are
// compared or combined. Comparisons never coerce across variants.
var ErrTypeMismatch = errors.New("type mismatch between registers")

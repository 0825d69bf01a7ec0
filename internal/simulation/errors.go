package simulation

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks degenerate inputs (non-positive years or
// path counts, negative volatility, zero withdrawal rates). It is
// surfaced before any randomness is consumed and is never retried.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

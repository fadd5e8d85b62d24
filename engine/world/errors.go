package world

import (
	"fmt"

	"github.com/brackfield/beltworks/engine/core"
)

// errInternalf wraps core.ErrInternal with a formatted message, the same
// pattern structures use to add context to a sentinel error.
func errInternalf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{core.ErrInternal}, args...)...)
}

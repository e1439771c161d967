// Package usecase implements the dashboard business rules on top of the
// repository ports.
package usecase

import (
	"fmt"
	"strings"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// requireSide checks that kind names a record family and that s works on
// that side of the network.
func requireSide(s domain.Session, kind string) error {
	if !domain.ValidKind(kind) {
		return fmt.Errorf("%w: unknown kind %q", port.ErrValidation, kind)
	}
	if s.Role.Side() != kind {
		return port.ErrForbidden
	}
	return nil
}

// required returns a validation error naming the first blank field.
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return fmt.Errorf("%w: %s is required", port.ErrValidation, f[0])
		}
	}
	return nil
}

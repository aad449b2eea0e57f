// SPDX-License-Identifier: MIT

package affine

import "errors"

// ErrModulusMismatch is the panic value (wrapped) raised when two transforms
// built against different moduli are added, subtracted or composed.
// Check Compatible first when the moduli are not known to agree.
var ErrModulusMismatch = errors.New("affine: transforms use different moduli")

// SPDX-License-Identifier: MIT

package feature

import "errors"

// ErrNotNormalized is returned by Verify when a matrix breaks the
// normalization invariant.
var ErrNotNormalized = errors.New("feature: matrix is not normalized")

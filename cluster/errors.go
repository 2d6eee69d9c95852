// SPDX-License-Identifier: MIT

package cluster

import "errors"

// ErrInvalidProfile reports a Profile whose bounds or threshold make no sense
// (MinK < 1, MaxK < MinK, threshold outside (0,1)). Clustering itself clamps
// bounds to the population; this error is for configuration validation.
var ErrInvalidProfile = errors.New("cluster: invalid profile")

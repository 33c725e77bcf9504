// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

// ElideConfig sketches the shape a hardware transactional-memory elision
// wrapper would take around [TicketLock]/[PFLock]: a retry budget before
// falling back to taking the lock for real. No HTM detection or
// transactional retry is implemented here — this is an API shape only,
// out of core per this package's scope.
type ElideConfig struct {
	MaxRetries int
	Enabled    bool
}

// DefaultElideConfig returns elision disabled, matching a platform with
// no HTM support.
func DefaultElideConfig() ElideConfig {
	return ElideConfig{MaxRetries: 0, Enabled: false}
}

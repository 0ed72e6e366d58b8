// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
)

// Watch monitors the signal channel and cancels the context on the second signal of a given type.
// It returns when that happens, when sigCh is closed, or when ctx is done.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, seen := sigMap[sig]; seen {
				ctxlog.Logger(ctx).Info("watchdog", "detail", "received second signal of type, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Logger(ctx).Debug("watchdog", "detail", "received first signal of type, no-op", "signal", sig.String())

			sigMap[sig] = struct{}{}
		}
	}
}

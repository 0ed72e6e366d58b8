// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes and decides whether a stream should get them.
// NO_COLOR disables colour, FORCE_COLOR enables it, otherwise colour is used only when the
// stream is a terminal according to golang.org/x/term.
package color

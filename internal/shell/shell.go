// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"os"
	"runtime"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // System32 is the directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // cmdExe is the name of the command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
	winDefaultSystemRoot = `C:\Windows`
)

// Command returns the shell executable and its arguments for running commandLine.
func Command(commandLine string) (string, []string) {
	return commandFor(runtime.GOOS, commandLine)
}

func commandFor(goos, commandLine string) (string, []string) {
	if goos == GOOSWindows {
		return windowsShell(), []string{commandSwitchWindows, commandLine}
	}

	return binSh, []string{commandSwitchUnix, commandLine}
}

func windowsShell() string {
	systemRoot := os.Getenv(winSystemRootEnv)
	if systemRoot == "" {
		systemRoot = winDefaultSystemRoot
	}

	return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
}

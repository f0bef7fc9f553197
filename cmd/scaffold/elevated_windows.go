// ABOUTME: Elevated-privilege detection on Windows
// ABOUTME: Uses the process token elevation flag

//go:build windows

package main

import "golang.org/x/sys/windows"

func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

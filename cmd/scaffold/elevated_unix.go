// ABOUTME: Elevated-privilege detection on Unix-like systems
// ABOUTME: Refusing to run as root keeps generated secrets out of root-owned files

//go:build !windows

package main

import "os"

func isElevated() bool {
	return os.Geteuid() == 0
}

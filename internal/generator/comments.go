package generator

import (
	"fmt"

	"github.com/docker/go-units"
)

// Trailing comments shared by both dialects. Keeping the wording in one
// place keeps the two snippets saying the same thing.

func cpuComment(n int) string {
	if n == 1 {
		return "1 CPU core"
	}
	return fmt.Sprintf("%d CPU cores", n)
}

func gibSize(n int) string {
	return units.BytesSize(float64(n) * units.GiB)
}

func memoryComment(n int) string {
	return gibSize(n) + " RAM"
}

func diskComment(n int) string {
	return gibSize(n) + " disk space"
}

func minutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}

func autoStopComment(n int) string {
	if n == 0 {
		return "Disables the auto-stop feature"
	}
	return "Sandbox will be stopped after " + minutes(n)
}

func autoArchiveComment(n int) string {
	if n == 0 {
		return "Auto-archive after a Sandbox has been stopped for 30 days"
	}
	return "Auto-archive after a Sandbox has been stopped for " + minutes(n)
}

func autoDeleteComment(n int) string {
	switch {
	case n == 0:
		return "Sandbox will be deleted immediately after stopping"
	case n < 0:
		return "Auto-delete functionality disabled"
	default:
		return "Auto-delete after a Sandbox has been stopped for " + minutes(n)
	}
}

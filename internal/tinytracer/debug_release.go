//go:build !debug
// +build !debug

package tinytracer

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}

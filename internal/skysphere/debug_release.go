//go:build !debug
// +build !debug

package skysphere

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}

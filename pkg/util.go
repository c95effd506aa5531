package pkg

import "unsafe"

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// StrPtr is for optional record fields.
func StrPtr(s string) *string {
	return &s
}

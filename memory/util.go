package memory

import "unsafe"

func addressOf(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&b[0])))
}

func roundUpToMultipleOf64(v int) int {
	return (v + alignment - 1) &^ (alignment - 1)
}

package common

// WipeByteArray overwrites the buffer with zeros. Used to drop passwords
// from memory as soon as they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

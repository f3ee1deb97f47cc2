package domain

import "math/rand"

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomSuffix returns a 6-character lowercase base36 string, used for mock
// document ids and duplicated variant ids (e.g. "v1-copy-k3x9q2").
func RandomSuffix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

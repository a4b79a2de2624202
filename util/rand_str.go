// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// IDLength is the length of every token and check id.
const IDLength = 20

// NewID returns a fresh random record id.
func NewID() (string, error) {
	return gonanoid.Generate(idCharset, IDLength)
}

// RandStr returns a short random string, used for request ids. Panics
// only if the OS random source is broken.
func RandStr(n int) string {
	return gonanoid.MustGenerate(idCharset, n)
}

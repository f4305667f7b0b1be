// Package starknethints implements the native hints Starknet layers on top
// of the Cairo VM's builtin hint set: address-range classification and
// 256-bit unsigned division. A hint runs off-circuit when the VM reaches a
// designated point in the program, writes its results into the VM's
// write-once memory, and the proof system re-derives their correctness
// afterwards.
//
// The hint callbacks and their registry live in the hints package; the
// write-once segmented memory model they execute against lives in the
// memory package.
package starknethints

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")

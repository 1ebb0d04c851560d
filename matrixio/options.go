// SPDX-License-Identifier: MIT

package matrixio

import "os"

// DefaultPerm is the permission used when Save creates a file.
const DefaultPerm os.FileMode = 0o644

const panicPermInvalid = "matrixio: WithPerm: only permission bits are allowed"

// Option configures Save.
type Option func(*options)

type options struct {
	perm os.FileMode
}

// WithPerm sets the permission bits for newly created files.
// Panics when perm carries non-permission bits.
func WithPerm(perm os.FileMode) Option {
	if perm&^os.ModePerm != 0 {
		panic(panicPermInvalid)
	}

	return func(o *options) { o.perm = perm }
}

func gatherOptions(user ...Option) options {
	o := options{perm: DefaultPerm}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

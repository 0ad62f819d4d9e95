// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package bsfs

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// ErrorKind classifies the failures this package can report.
type ErrorKind int

const (
	// ConfigError means the sample map (or the options derived from it) is
	// empty or malformed.
	ConfigError ErrorKind = iota + 1
	// ShapeError means a site or block is inconsistent with the sample map or
	// with the other sites of its block.
	ShapeError
	// IndexError means a haplotype position has no sample-map entry while
	// strict validation is enabled, or a coordinate is outside a matrix.
	IndexError
	// OverflowError means a matrix cell count would exceed math.MaxUint32.
	OverflowError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "ConfigError"
	case ShapeError:
		return "ShapeError"
	case IndexError:
		return "IndexError"
	case OverflowError:
		return "OverflowError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// baseKind maps each kind onto the closest grailbio/base/errors kind, so that
// errors.Is(errors.Invalid, err) and friends work on our errors too.
func (k ErrorKind) baseKind() errors.Kind {
	switch k {
	case ConfigError:
		return errors.Invalid
	case ShapeError:
		return errors.Precondition
	case IndexError:
		return errors.NotExist
	case OverflowError:
		return errors.Integrity
	default:
		return errors.Other
	}
}

// Error is the error type returned by every operation in this package.  Block,
// Site and Position are -1 when they do not apply.
type Error struct {
	Kind ErrorKind
	// Block is the index of the offending block (AggregateBlocks only).
	Block int
	// Site is the index of the offending site within its block.
	Site int
	// Position is the offending flattened haplotype position.
	Position int
	// Err is the underlying cause.
	Err error
}

func newError(kind ErrorKind, position int, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Block:    -1,
		Site:     -1,
		Position: position,
		Err:      errors.E(append([]interface{}{kind.baseKind()}, args...)...),
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("bsfs: ")
	b.WriteString(e.Kind.String())
	if e.Block >= 0 {
		fmt.Fprintf(&b, " block %d", e.Block)
	}
	if e.Site >= 0 {
		fmt.Fprintf(&b, " site %d", e.Site)
	}
	if e.Position >= 0 {
		fmt.Fprintf(&b, " haplotype %d", e.Position)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err, or 0 if err was not produced by this
// package.
func KindOf(err error) ErrorKind {
	var e *Error
	if goerrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// atSite returns a copy of err annotated with the site index.  Errors from
// other packages are returned unchanged.
func atSite(err error, site int) error {
	var e *Error
	if !goerrors.As(err, &e) {
		return err
	}
	c := *e
	c.Site = site
	return &c
}

func atBlock(err error, block int) error {
	var e *Error
	if !goerrors.As(err, &e) {
		return err
	}
	c := *e
	c.Block = block
	return &c
}

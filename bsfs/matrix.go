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
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"blainsmith.com/go/seahash"
)

// Matrix is a dense count array with one axis per population.  Cells are
// stored in row-major order; the last axis varies fastest.
type Matrix struct {
	shape   []int
	strides []int
	cells   []uint32
}

// MaxCells is the largest number of cells NewMatrix will allocate.
const MaxCells = 1 << 30

// NewMatrix returns a zeroed matrix of the given shape.  Every axis must have
// size >= 1, and the product of the sizes must not exceed MaxCells; a larger
// shape is an OverflowError.
func NewMatrix(shape ...int) (*Matrix, error) {
	if len(shape) == 0 {
		return nil, newError(ShapeError, -1, "matrix needs at least one axis")
	}
	m := &Matrix{
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
	}
	n := 1
	for k := len(shape) - 1; k >= 0; k-- {
		if shape[k] < 1 {
			return nil, newError(ShapeError, -1, fmt.Sprintf("axis %d has size %d", k, shape[k]))
		}
		m.strides[k] = n
		if n > MaxCells/shape[k] {
			return nil, newError(OverflowError, -1, fmt.Sprintf("shape %v has more than %d cells", shape, MaxCells))
		}
		n *= shape[k]
	}
	m.cells = make([]uint32, n)
	return m, nil
}

// Rank returns the number of axes.
func (m *Matrix) Rank() int { return len(m.shape) }

// Shape returns a copy of the axis sizes.
func (m *Matrix) Shape() []int { return append([]int(nil), m.shape...) }

// Len returns the number of cells.
func (m *Matrix) Len() int { return len(m.cells) }

func (m *Matrix) offset(coord []int) (int, error) {
	if len(coord) != len(m.shape) {
		return 0, newError(ShapeError, -1, fmt.Sprintf("coordinate %v has rank %d, matrix has rank %d", coord, len(coord), len(m.shape)))
	}
	off := 0
	for k, c := range coord {
		if c < 0 || c >= m.shape[k] {
			return 0, newError(IndexError, -1, fmt.Sprintf("coordinate %v outside of shape %v", coord, m.shape))
		}
		off += c * m.strides[k]
	}
	return off, nil
}

// At returns the count of the cell at coord.  It panics if coord is outside
// of the matrix.
func (m *Matrix) At(coord ...int) uint32 {
	off, err := m.offset(coord)
	if err != nil {
		panic(err)
	}
	return m.cells[off]
}

// Add increments the cell at entry.  It fails with an OverflowError instead
// of wrapping when the cell already holds math.MaxUint32.
func (m *Matrix) Add(entry Entry) error {
	off, err := m.offset(entry)
	if err != nil {
		return err
	}
	if m.cells[off] == math.MaxUint32 {
		return newError(OverflowError, -1, fmt.Sprintf("cell %v exceeds %d", []int(entry), uint32(math.MaxUint32)))
	}
	m.cells[off]++
	return nil
}

// Total returns the sum of all cells.
func (m *Matrix) Total() uint64 {
	var total uint64
	for _, c := range m.cells {
		total += uint64(c)
	}
	return total
}

// Each calls fn for every cell in row-major order.  coord is reused between
// calls and must not be retained.
func (m *Matrix) Each(fn func(coord []int, count uint32)) {
	coord := make([]int, len(m.shape))
	for _, c := range m.cells {
		fn(coord, c)
		for k := len(coord) - 1; k >= 0; k-- {
			coord[k]++
			if coord[k] < m.shape[k] {
				break
			}
			coord[k] = 0
		}
	}
}

// Equal reports whether m and other have the same shape and counts.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.shape) != len(other.shape) || len(m.cells) != len(other.cells) {
		return false
	}
	for k := range m.shape {
		if m.shape[k] != other.shape[k] {
			return false
		}
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Checksum returns a seahash fingerprint of the shape and the cells.  Equal
// matrices have equal checksums.
func (m *Matrix) Checksum() uint64 {
	h := seahash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(m.shape)))
	h.Write(buf[:])
	for _, s := range m.shape {
		binary.LittleEndian.PutUint64(buf[:], uint64(s))
		h.Write(buf[:])
	}
	for _, c := range m.cells {
		binary.LittleEndian.PutUint32(buf[:4], c)
		h.Write(buf[:4])
	}
	return h.Sum64()
}

// String renders a rank-2 matrix as a grid with one row per value of the
// first axis.  Other ranks are rendered as a list of the nonzero cells.
func (m *Matrix) String() string {
	if len(m.shape) != 2 {
		var parts []string
		m.Each(func(coord []int, count uint32) {
			if count != 0 {
				parts = append(parts, fmt.Sprintf("%v:%d", coord, count))
			}
		})
		return fmt.Sprintf("%v{%s}", m.shape, strings.Join(parts, " "))
	}
	maxLength := 0
	for _, c := range m.cells {
		if l := len(strconv.FormatUint(uint64(c), 10)); l > maxLength {
			maxLength = l
		}
	}
	lines := make([]string, m.shape[0])
	for i := range lines {
		parts := make([]string, m.shape[1])
		for j := range parts {
			parts[j] = fmt.Sprintf("%*d", maxLength, m.cells[i*m.strides[0]+j])
		}
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

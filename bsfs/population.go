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
	"fmt"
	"sort"
)

// SampleMap maps a flattened haplotype position to its population label.
type SampleMap map[int]string

// PopulationOrder is the sorted, deduplicated list of population labels.  It
// defines the axis order of every Entry and Matrix built from it.  The zero
// value has no axes.
type PopulationOrder struct {
	labels []string
}

// NewPopulationOrder returns the order of the labels in m plus any extra
// labels.  It fails with a ConfigError if there are no labels at all.
func NewPopulationOrder(m SampleMap, extra ...string) (PopulationOrder, error) {
	seen := make(map[string]struct{}, len(extra)+1)
	for _, label := range m {
		seen[label] = struct{}{}
	}
	for _, label := range extra {
		seen[label] = struct{}{}
	}
	if len(seen) == 0 {
		return PopulationOrder{}, newError(ConfigError, -1, "sample map defines no populations")
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return PopulationOrder{labels: labels}, nil
}

// Len returns the number of populations.
func (o PopulationOrder) Len() int { return len(o.labels) }

// Label returns the label of axis k.
func (o PopulationOrder) Label(k int) string { return o.labels[k] }

// Labels returns a copy of the labels in axis order.
func (o PopulationOrder) Labels() []string {
	return append([]string(nil), o.labels...)
}

// Axis returns the axis of label, or -1 if label is not part of the order.
func (o PopulationOrder) Axis(label string) int {
	k := sort.SearchStrings(o.labels, label)
	if k < len(o.labels) && o.labels[k] == label {
		return k
	}
	return -1
}

// Equal reports whether o and other have the same labels in the same order.
func (o PopulationOrder) Equal(other PopulationOrder) bool {
	if len(o.labels) != len(other.labels) {
		return false
	}
	for i := range o.labels {
		if o.labels[i] != other.labels[i] {
			return false
		}
	}
	return true
}

func (o PopulationOrder) String() string {
	return fmt.Sprintf("%v", o.labels)
}

// PopulationIndex is everything derived from a sample map that classification
// and aggregation need.  It is immutable after IndexPopulations returns.
type PopulationIndex struct {
	order PopulationOrder
	// counts[k] is the number of haplotypes assigned to axis k.
	counts []int
	// axisOf[p] is the axis of haplotype position p, or -1 if p is unmapped.
	// It is nil when the sample map is too sparse for a dense table, in which
	// case sparseAxisOf holds the mapped positions instead.
	axisOf       []int
	sparseAxisOf map[int]int
	// maxPos is the largest mapped position.
	maxPos int
	strict bool
}

// IndexPopulations derives the population order and per-population haplotype
// counts from m.  It fails with a ConfigError if m is empty, or has a
// negative position.
func IndexPopulations(m SampleMap, opts *Opts) (*PopulationIndex, error) {
	opts = optsOrDefault(opts)
	if len(m) == 0 {
		return nil, newError(ConfigError, -1, "empty sample map")
	}
	maxPos := -1
	for p := range m {
		if p < 0 {
			return nil, newError(ConfigError, -1, fmt.Sprintf("negative haplotype position %d in sample map", p))
		}
		if p > maxPos {
			maxPos = p
		}
	}
	order, err := NewPopulationOrder(m, opts.Populations...)
	if err != nil {
		return nil, err
	}
	idx := &PopulationIndex{
		order:  order,
		counts: make([]int, order.Len()),
		maxPos: maxPos,
		strict: opts.Strict,
	}
	if maxPos < maxDenseFactor*len(m)+maxDenseSlack {
		idx.axisOf = make([]int, maxPos+1)
		for p := range idx.axisOf {
			idx.axisOf[p] = -1
		}
	} else {
		idx.sparseAxisOf = make(map[int]int, len(m))
	}
	for p, label := range m {
		k := order.Axis(label)
		if idx.axisOf != nil {
			idx.axisOf[p] = k
		} else {
			idx.sparseAxisOf[p] = k
		}
		idx.counts[k]++
	}
	return idx, nil
}

// A sample map whose largest position is at least
// maxDenseFactor*len(m)+maxDenseSlack is looked up through a map.
const (
	maxDenseFactor = 4
	maxDenseSlack  = 1024
)

// axis returns the axis of haplotype position p, or -1 if p is unmapped.
func (idx *PopulationIndex) axis(p int) int {
	if idx.axisOf != nil {
		if p < len(idx.axisOf) {
			return idx.axisOf[p]
		}
		return -1
	}
	if k, ok := idx.sparseAxisOf[p]; ok {
		return k
	}
	return -1
}

// Order returns the canonical population order.
func (idx *PopulationIndex) Order() PopulationOrder { return idx.order }

// Strict reports whether unmapped haplotype positions are rejected.
func (idx *PopulationIndex) Strict() bool { return idx.strict }

// Count returns the number of haplotypes assigned to label; 0 for unknown
// labels.
func (idx *PopulationIndex) Count(label string) int {
	if k := idx.order.Axis(label); k >= 0 {
		return idx.counts[k]
	}
	return 0
}

// Counts returns the haplotype count of every population, keyed by label.
func (idx *PopulationIndex) Counts() map[string]int {
	counts := make(map[string]int, len(idx.counts))
	for k, n := range idx.counts {
		counts[idx.order.labels[k]] = n
	}
	return counts
}

// NHaplotypes returns the number of mapped haplotype positions.
func (idx *PopulationIndex) NHaplotypes() int {
	n := 0
	for _, c := range idx.counts {
		n += c
	}
	return n
}

// Shape returns the matrix shape: counts[k] + 1 per axis.
func (idx *PopulationIndex) Shape() []int {
	shape := make([]int, len(idx.counts))
	for k, c := range idx.counts {
		shape[k] = c + 1
	}
	return shape
}

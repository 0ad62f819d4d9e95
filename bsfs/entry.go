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

import "fmt"

// Entry is the bSFS coordinate of one site: entry[k] is the number of
// derived calls among the haplotypes of population k.
type Entry []int

// Classify computes the entry of the flattened site h.
//
// Positions of h without a sample-map entry are skipped, or rejected with an
// IndexError if the index was built with Opts.Strict.  A mapped position past
// the end of h is a ShapeError.
func (idx *PopulationIndex) Classify(h Haplotypes) (Entry, error) {
	entry, _, err := idx.classify(h)
	return entry, err
}

// classify also returns the number of skipped unmapped calls.
func (idx *PopulationIndex) classify(h Haplotypes) (Entry, int, error) {
	if len(h) <= idx.maxPos {
		return nil, 0, newError(ShapeError, idx.maxPos,
			fmt.Sprintf("site has %d haplotypes, sample map references position %d", len(h), idx.maxPos))
	}
	entry := make(Entry, len(idx.counts))
	skipped := 0
	for p, call := range h {
		k := idx.axis(p)
		if k < 0 {
			if idx.strict {
				return nil, 0, newError(IndexError, p, "haplotype position has no sample-map entry")
			}
			skipped++
			continue
		}
		if call != 0 {
			entry[k]++
		}
	}
	return entry, skipped, nil
}

// Classify computes the entry of h directly from a sample map and a
// population order, without building a PopulationIndex.  For each population
// it selects the positions mapped to it and counts their non-zero calls.
// Positions mapped to a label outside of order are never counted.  opts.Strict
// is honored as in PopulationIndex.Classify.
func Classify(h Haplotypes, m SampleMap, order PopulationOrder, opts *Opts) (Entry, error) {
	opts = optsOrDefault(opts)
	for p := range m {
		if p < 0 || p >= len(h) {
			return nil, newError(ShapeError, -1,
				fmt.Sprintf("site has %d haplotypes, sample map references position %d", len(h), p))
		}
	}
	if opts.Strict {
		for p := range h {
			if _, ok := m[p]; !ok {
				return nil, newError(IndexError, p, "haplotype position has no sample-map entry")
			}
		}
	}
	entry := make(Entry, order.Len())
	for k, pop := range order.labels {
		for p, call := range h {
			if label, ok := m[p]; !ok || label != pop {
				continue
			}
			if call != 0 {
				entry[k]++
			}
		}
	}
	return entry, nil
}

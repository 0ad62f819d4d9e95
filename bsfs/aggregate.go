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
	"runtime"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// Mode selects what Aggregate reports for a block.
type Mode int

const (
	// ModeIndices reports one Entry per site, in site order.
	ModeIndices Mode = iota
	// ModeMatrix reports the count matrix of the block's entries.
	ModeMatrix
)

func (m Mode) String() string {
	switch m {
	case ModeIndices:
		return "indices"
	case ModeMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Result is the outcome of aggregating one block.  Exactly one of Entries
// and Matrix is set, depending on the Mode.
type Result struct {
	Entries []Entry
	Matrix  *Matrix
}

// Indices flattens and classifies every site of block.  All sites must have
// the same number of haplotypes.
func (idx *PopulationIndex) Indices(block Block) ([]Entry, error) {
	entries := make([]Entry, len(block))
	nHap := -1
	skipped := 0
	for i, site := range block {
		h := Flatten(site)
		if nHap < 0 {
			nHap = len(h)
		} else if len(h) != nHap {
			return nil, atSite(newError(ShapeError, -1,
				fmt.Sprintf("site has %d haplotypes, site 0 has %d", len(h), nHap)), i)
		}
		entry, n, err := idx.classify(h)
		if err != nil {
			return nil, atSite(err, i)
		}
		entries[i] = entry
		skipped += n
	}
	if skipped > 0 && log.At(log.Debug) {
		log.Debug.Printf("bsfs.Indices: skipped %d unmapped haplotype calls across %d sites", skipped, len(block))
	}
	return entries, nil
}

// Accumulate folds entries into a fresh matrix shaped by idx.
func (idx *PopulationIndex) Accumulate(entries []Entry) (*Matrix, error) {
	m, err := NewMatrix(idx.Shape()...)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		if err := m.Add(entry); err != nil {
			return nil, atSite(err, i)
		}
	}
	return m, nil
}

// Matrix returns the bSFS matrix of block.  Its cells sum to len(block).
func (idx *PopulationIndex) Matrix(block Block) (*Matrix, error) {
	entries, err := idx.Indices(block)
	if err != nil {
		return nil, err
	}
	return idx.Accumulate(entries)
}

// Aggregate processes block in the given mode.
func (idx *PopulationIndex) Aggregate(block Block, mode Mode) (Result, error) {
	switch mode {
	case ModeIndices:
		entries, err := idx.Indices(block)
		if err != nil {
			return Result{}, err
		}
		return Result{Entries: entries}, nil
	case ModeMatrix:
		m, err := idx.Matrix(block)
		if err != nil {
			return Result{}, err
		}
		return Result{Matrix: m}, nil
	default:
		return Result{}, newError(ConfigError, -1, fmt.Sprintf("unknown mode %v", mode))
	}
}

// Aggregate indexes m and processes block in the given mode.
func Aggregate(block Block, m SampleMap, mode Mode, opts *Opts) (Result, error) {
	idx, err := IndexPopulations(m, opts)
	if err != nil {
		return Result{}, err
	}
	return idx.Aggregate(block, mode)
}

// AggregateBlocks processes independent blocks in parallel, sharing one
// PopulationIndex between them.  results[i] belongs to blocks[i]; blocks are
// never merged.  If any block fails, no results are returned.
func AggregateBlocks(blocks []Block, m SampleMap, mode Mode, opts *Opts) ([]Result, error) {
	opts = optsOrDefault(opts)
	idx, err := IndexPopulations(m, opts)
	if err != nil {
		return nil, err
	}
	nBlock := len(blocks)
	results := make([]Result, nBlock)
	if nBlock == 0 {
		return results, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > nBlock {
		parallelism = nBlock
	}
	log.Debug.Printf("bsfs.AggregateBlocks: %d blocks, %d populations, %d jobs", nBlock, idx.order.Len(), parallelism)
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * nBlock) / parallelism
		endIdx := ((jobIdx + 1) * nBlock) / parallelism
		for i := startIdx; i < endIdx; i++ {
			r, err := idx.Aggregate(blocks[i], mode)
			if err != nil {
				return atBlock(err, i)
			}
			results[i] = r
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

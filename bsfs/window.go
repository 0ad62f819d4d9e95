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
	"math"
)

// PosType is the integer type used to represent genomic positions.
type PosType = int32

// Window is a block of sites from the half-open genomic interval
// [Start, End).
type Window struct {
	Start, End PosType
	Sites      Block
}

// SplitBlocks groups sites into consecutive windows of blockLen bases;
// positions[i] is the 0-based position of sites[i].  Positions must be
// nondecreasing and nonnegative.  Windows without sites are omitted.
func SplitBlocks(positions []PosType, sites []Site, blockLen PosType) ([]Window, error) {
	if blockLen <= 0 {
		return nil, newError(ConfigError, -1, fmt.Sprintf("block length must be positive, got %d", blockLen))
	}
	if len(positions) != len(sites) {
		return nil, newError(ShapeError, -1, fmt.Sprintf("%d positions for %d sites", len(positions), len(sites)))
	}
	var windows []Window
	prev := PosType(-1)
	for i, pos := range positions {
		if pos < 0 {
			return nil, atSite(newError(ShapeError, -1, fmt.Sprintf("negative position %d", pos)), i)
		}
		if pos < prev {
			return nil, atSite(newError(ShapeError, -1, fmt.Sprintf("position %d follows %d", pos, prev)), i)
		}
		prev = pos
		start := (pos / blockLen) * blockLen
		if len(windows) == 0 || windows[len(windows)-1].Start != start {
			end := start + blockLen
			if end < start {
				// The last window of the PosType range.
				end = math.MaxInt32
			}
			windows = append(windows, Window{Start: start, End: end})
		}
		w := &windows[len(windows)-1]
		w.Sites = append(w.Sites, sites[i])
	}
	return windows, nil
}

// Blocks returns the sites of each window.
func Blocks(windows []Window) []Block {
	blocks := make([]Block, len(windows))
	for i, w := range windows {
		blocks[i] = w.Sites
	}
	return blocks
}

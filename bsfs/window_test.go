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
package bsfs_test

import (
	"testing"

	"github.com/grailbio/popgen/bsfs"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestSplitBlocks(t *testing.T) {
	sites := []bsfs.Site{
		{{0}, {1}},
		{{1}, {1}},
		{{0}, {0}},
		{{1}, {0}},
		{{0}, {1}},
	}
	positions := []bsfs.PosType{3, 99, 100, 100, 450}
	windows, err := bsfs.SplitBlocks(positions, sites, 100)
	assert.NoError(t, err)
	assert.EQ(t, len(windows), 3)
	expect.EQ(t, windows[0].Start, bsfs.PosType(0))
	expect.EQ(t, windows[0].End, bsfs.PosType(100))
	expect.EQ(t, windows[0].Sites, bsfs.Block{sites[0], sites[1]})
	expect.EQ(t, windows[1].Start, bsfs.PosType(100))
	expect.EQ(t, windows[1].Sites, bsfs.Block{sites[2], sites[3]})
	expect.EQ(t, windows[2].Start, bsfs.PosType(400))
	expect.EQ(t, windows[2].End, bsfs.PosType(500))
	expect.EQ(t, windows[2].Sites, bsfs.Block{sites[4]})

	blocks := bsfs.Blocks(windows)
	expect.EQ(t, len(blocks), 3)
	results, err := bsfs.AggregateBlocks(blocks, bsfs.SampleMap{0: "a", 1: "b"}, bsfs.ModeIndices, &bsfs.Opts{Parallelism: 2})
	assert.NoError(t, err)
	expect.EQ(t, results[0].Entries, []bsfs.Entry{{0, 1}, {1, 1}})
	expect.EQ(t, results[1].Entries, []bsfs.Entry{{0, 0}, {1, 0}})
	expect.EQ(t, results[2].Entries, []bsfs.Entry{{0, 1}})
}

func TestSplitBlocksErrors(t *testing.T) {
	sites := []bsfs.Site{{{0}}, {{1}}}
	_, err := bsfs.SplitBlocks([]bsfs.PosType{5, 4}, sites, 10)
	expect.True(t, bsfs.IsKind(err, bsfs.ShapeError))
	expect.EQ(t, err.(*bsfs.Error).Site, 1)

	_, err = bsfs.SplitBlocks([]bsfs.PosType{-1, 4}, sites, 10)
	expect.True(t, bsfs.IsKind(err, bsfs.ShapeError))
	_, err = bsfs.SplitBlocks([]bsfs.PosType{1}, sites, 10)
	expect.True(t, bsfs.IsKind(err, bsfs.ShapeError))
	_, err = bsfs.SplitBlocks([]bsfs.PosType{1, 2}, sites, 0)
	expect.True(t, bsfs.IsKind(err, bsfs.ConfigError))

	windows, err := bsfs.SplitBlocks(nil, nil, 10)
	assert.NoError(t, err)
	expect.EQ(t, len(windows), 0)
}

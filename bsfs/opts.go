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

// Opts controls how sites are classified and how blocks are scheduled.
type Opts struct {
	// Strict makes a haplotype position without a sample-map entry an
	// IndexError.  When false, such positions are excluded from every
	// population's count.
	Strict bool
	// Populations lists labels which get a matrix axis even if no haplotype
	// is assigned to them.  They are merged into the sorted order together
	// with the labels found in the sample map.
	Populations []string
	// Parallelism is the maximum number of blocks processed concurrently by
	// AggregateBlocks; 0 = runtime.NumCPU().
	Parallelism int
}

// DefaultOpts is used when a nil *Opts is passed.
var DefaultOpts = Opts{
	Strict:      false,
	Populations: nil,
	Parallelism: 0,
}

func optsOrDefault(opts *Opts) *Opts {
	if opts == nil {
		return &DefaultOpts
	}
	return opts
}

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

// Site holds the genotype calls at one genomic site: one ploidy vector per
// individual, in individual order.  0 is the ancestral allele; any other
// value is derived.
type Site [][]uint32

// Block is an ordered group of sites aggregated together.
type Block []Site

// Haplotypes is a flattened site: one call per haplotype.
type Haplotypes []uint32

// Flatten concatenates the ploidy vectors of site in individual order, so
// that every chromosome copy becomes an independent haplotype.
func Flatten(site Site) Haplotypes {
	n := 0
	for _, v := range site {
		n += len(v)
	}
	h := make(Haplotypes, 0, n)
	for _, v := range site {
		h = append(h, v...)
	}
	return h
}

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

/*Package bsfs computes blockwise site frequency spectra (bSFS) from
  biallelic genotype calls.

  A site is a vector of per-individual ploidy vectors. It is first flattened
  into a haplotype vector, then classified into an Entry: for each population
  (in sorted label order), the number of haplotypes carrying a derived
  (non-zero) call. A block of sites is reported either as the list of its
  entries or as a dense count matrix with one axis per population, axis k
  sized (haplotypes in population k) + 1.

  The sample map is keyed by flattened haplotype position, so a diploid
  individual occupies two consecutive keys.

  Matrix.Checksum fingerprints a block's matrix (shape and counts), so a
  caller can key per-block results in a cache or detect unchanged blocks
  between runs without keeping the matrices themselves.

  Every function here is a pure transformation over caller-owned data.  A
  PopulationIndex is immutable once built and may be shared by goroutines
  processing different blocks, provided the caller does not mutate the
  SampleMap it was derived from.
*/
package bsfs

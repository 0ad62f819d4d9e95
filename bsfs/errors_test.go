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
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/popgen/bsfs"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func TestErrorReportsLocation(t *testing.T) {
	block := bsfs.Block{
		{{0, 1}, {1, 0}, {0, 0}, {1, 1}},
		{{0, 1}},
	}
	_, err := bsfs.Aggregate(block, twoPopMap(), bsfs.ModeMatrix, nil)
	require.Error(t, err)
	msg := err.Error()
	expect.True(t, strings.HasPrefix(msg, "bsfs: ShapeError site 1"), msg)
	expect.False(t, strings.Contains(msg, "block"), msg)
}

func TestErrorBaseKinds(t *testing.T) {
	tests := []struct {
		kind bsfs.ErrorKind
		base errors.Kind
		err  func() error
	}{
		{bsfs.ConfigError, errors.Invalid, func() error {
			_, err := bsfs.IndexPopulations(nil, nil)
			return err
		}},
		{bsfs.ShapeError, errors.Precondition, func() error {
			_, err := bsfs.NewMatrix()
			return err
		}},
		{bsfs.IndexError, errors.NotExist, func() error {
			idx, _ := bsfs.IndexPopulations(bsfs.SampleMap{1: "a"}, &bsfs.Opts{Strict: true})
			_, err := idx.Classify(bsfs.Haplotypes{0, 0})
			return err
		}},
	}
	for _, tt := range tests {
		err := tt.err()
		require.Error(t, err)
		e, ok := err.(*bsfs.Error)
		require.True(t, ok)
		expect.EQ(t, e.Kind, tt.kind)
		expect.True(t, errors.Is(tt.base, e.Err), tt.kind)
	}
}

func TestKindOf(t *testing.T) {
	expect.EQ(t, bsfs.KindOf(nil), bsfs.ErrorKind(0))
	expect.EQ(t, bsfs.KindOf(fmt.Errorf("unrelated")), bsfs.ErrorKind(0))
	expect.False(t, bsfs.IsKind(nil, bsfs.ConfigError))

	_, err := bsfs.IndexPopulations(nil, nil)
	wrapped := fmt.Errorf("loading block: %w", err)
	expect.EQ(t, bsfs.KindOf(wrapped), bsfs.ConfigError)
	expect.EQ(t, bsfs.OverflowError.String(), "OverflowError")
	expect.EQ(t, bsfs.ErrorKind(9).String(), "ErrorKind(9)")
}

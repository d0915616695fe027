// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathtrie

import "errors"

// Configuration errors returned (wrapped) by New. An unmatched path during
// Lookup or Remove is an expected outcome reported via the boolean result,
// never as an error.
var (
	// ErrWildcardSuffixEmpty indicates that the wildcard suffix must be non-empty.
	ErrWildcardSuffixEmpty = errors.New("wildcard suffix must be non-empty")

	// ErrBloomFilterSizeZero indicates that the bloom filter size must be greater than zero.
	ErrBloomFilterSizeZero = errors.New("bloom filter size must be non-zero")

	// ErrBloomHashFunctionsInvalid indicates that the number of bloom hash functions must be positive.
	ErrBloomHashFunctionsInvalid = errors.New("bloom hash functions must be positive")
)

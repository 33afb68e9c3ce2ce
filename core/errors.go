// Copyright 2025 Halcyon Labs
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


package core

import "errors"

// Domain errors
var (
	// ErrNoFragments indicates a document yielded zero fragments when split.
	// Callers treat this the same as a load failure.
	ErrNoFragments = errors.New("document produced no fragments")

	// ErrEmptyContent indicates a document has no content to index.
	ErrEmptyContent = errors.New("content cannot be empty")
)

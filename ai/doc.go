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


// Package ai provides abstractions for the embedding services used by the
// indexing pipeline.
//
// The pipeline and the store layer depend only on the Embedder interface.
// Two implementation sub-packages exist:
//
//   - ai/bedrock: production implementation over AWS Bedrock
//   - ai/mock: test doubles for unit testing without AWS access
//
// Production constructors (bedrock.NewEmbedder) return the interface type to
// keep callers decoupled from the concrete client; mock constructors return
// concrete types so tests can inject behavior and assert on call counts.
package ai

// Copyright 2025 Ryna Labs
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


// Package ai defines the optional external collaborators the assistant can
// use: a conversational backend that generates assistant-style replies, and a
// place recognizer that spots location names in free text.
//
// Both collaborators are optional. The core degrades gracefully without them:
// extraction falls back to pattern matching, and search turns simply skip the
// assistant enrichment. Implementations live in subpackages (openai, mock);
// the algorithmic packages depend only on the interfaces defined here.
package ai

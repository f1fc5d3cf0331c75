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


// Package extract turns free-form housing queries into structured search
// criteria: unit-aware numeric parsing, pattern-based field extraction, and
// bounded-edit-distance matching of location tokens against the catalog.
//
// Every function in this package is total: malformed numerals, absent fields
// and unrecognizable text resolve to documented defaults, never errors. The
// extractor runs on arbitrary user input and must not have failure modes.
package extract

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


// Package search provides relevance scoring and ranking over a property catalog.
//
// The Engine type implements an additive scoring algorithm that combines:
//   - Location matching with a strict disqualification rule
//   - Price bound matching with a soft near-budget fallback
//   - Bedroom, property type and amenity matching
//
// Candidates are scored, filtered against hard constraints and ranked so the
// most relevant listings come first.
package search

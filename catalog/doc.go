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


// Package catalog supplies property listings to the search core.
//
// The core never loads listings itself; it consumes a Provider and treats
// the returned slice as a value snapshot valid for one request. This package
// ships a static in-memory provider plus a JSON loader that merges the
// basics, characteristics and image feeds used by the listing pipeline.
package catalog

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


package dialog

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog provider is not provided.
	ErrCatalogRequired = errors.New("catalog provider required")

	// ErrExtractorRequired is returned when a criteria extractor is not provided.
	ErrExtractorRequired = errors.New("criteria extractor required")

	// ErrSearchEngineRequired is returned when a search engine is not provided.
	ErrSearchEngineRequired = errors.New("search engine required")

	// ErrClassifierRequired is returned when an intent classifier is not provided.
	ErrClassifierRequired = errors.New("intent classifier required")

	// ErrSessionRequired is returned when a guided session is not provided.
	ErrSessionRequired = errors.New("guided session required")

	// ErrNoActiveSession is returned when a guided answer arrives for a
	// session that is not active. The session is reset before returning.
	ErrNoActiveSession = errors.New("no active guided session")
)

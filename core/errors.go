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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProperty indicates a Property failed validation.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrInvalidCriteria indicates a Criteria failed validation.
	ErrInvalidCriteria = errors.New("invalid criteria")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNegativePrice indicates a negative price value.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeBedrooms indicates a negative bedroom count.
	ErrNegativeBedrooms = errors.New("bedroom count cannot be negative")

	// ErrInvertedPriceBounds indicates MinPrice exceeds MaxPrice.
	ErrInvertedPriceBounds = errors.New("minimum price exceeds maximum price")
)

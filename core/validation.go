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

import "fmt"

// ValidateProperty validates a Property according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Price must not be negative
//   - Bedrooms, when present, must not be negative
//
// NOT validated:
//   - ID (0 is valid; the catalog loader derives one from content)
//   - Location, PropertyType, Amenities (optional free text)
func ValidateProperty(property *Property) error {
	if property == nil {
		return fmt.Errorf("%w: property is nil", ErrInvalidProperty)
	}

	if property.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrEmptyTitle)
	}

	if property.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrNegativePrice)
	}

	if property.Bedrooms != nil && *property.Bedrooms < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrNegativeBedrooms)
	}

	return nil
}

// ValidateCriteria validates a Criteria according to domain rules.
//
// Validation rules:
//   - MinPrice must not be negative
//   - MinPrice must not exceed MaxPrice
//   - Bedrooms, when present, must not be negative
//
// The extractor never produces inverted bounds (it takes min/max of parsed
// operands), so a violation here indicates hand-built criteria.
func ValidateCriteria(criteria *Criteria) error {
	if criteria == nil {
		return fmt.Errorf("%w: criteria is nil", ErrInvalidCriteria)
	}

	if criteria.MinPrice < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrNegativePrice)
	}

	if criteria.MinPrice > criteria.MaxPrice {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrInvertedPriceBounds)
	}

	if criteria.Bedrooms != nil && *criteria.Bedrooms < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrNegativeBedrooms)
	}

	return nil
}

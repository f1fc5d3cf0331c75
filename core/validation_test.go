package core

import (
	"errors"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		name     string
		property *Property
		wantErr  error
	}{
		{
			name: "valid property",
			property: &Property{
				Title:    "Sea View Apartment",
				Location: "Anjuna, Goa",
				Price:    4500000,
				Bedrooms: intPtr(2),
			},
			wantErr: nil,
		},
		{
			name: "valid without optional fields",
			property: &Property{
				Title: "Plot near highway",
			},
			wantErr: nil,
		},
		{
			name:     "nil property",
			property: nil,
			wantErr:  ErrInvalidProperty,
		},
		{
			name:     "empty title",
			property: &Property{Location: "Goa", Price: 100},
			wantErr:  ErrEmptyTitle,
		},
		{
			name:     "negative price",
			property: &Property{Title: "Villa", Price: -1},
			wantErr:  ErrNegativePrice,
		},
		{
			name:     "negative bedrooms",
			property: &Property{Title: "Villa", Bedrooms: intPtr(-2)},
			wantErr:  ErrNegativeBedrooms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProperty(tt.property)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProperty() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProperty() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCriteria(t *testing.T) {
	valid := EmptyCriteria()
	if err := ValidateCriteria(&valid); err != nil {
		t.Errorf("ValidateCriteria(empty) error = %v, want nil", err)
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantErr  error
	}{
		{
			name:     "bounded range",
			criteria: Criteria{MinPrice: 2000000, MaxPrice: 5000000},
			wantErr:  nil,
		},
		{
			name:     "negative min price",
			criteria: Criteria{MinPrice: -1, MaxPrice: UnboundedPrice},
			wantErr:  ErrNegativePrice,
		},
		{
			name:     "inverted bounds",
			criteria: Criteria{MinPrice: 5000000, MaxPrice: 2000000},
			wantErr:  ErrInvertedPriceBounds,
		},
		{
			name:     "negative bedrooms",
			criteria: Criteria{MaxPrice: UnboundedPrice, Bedrooms: intPtr(-1)},
			wantErr:  ErrNegativeBedrooms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCriteria(&tt.criteria)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCriteria() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCriteria() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := ValidateCriteria(nil); !errors.Is(err, ErrInvalidCriteria) {
		t.Errorf("ValidateCriteria(nil) error = %v, want %v", err, ErrInvalidCriteria)
	}
}

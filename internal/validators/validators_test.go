package validators

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
	"github.com/cloud-ru/unit-economics-go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxUnitsSold: 1e6,
		MaxPrice:     1e7,
		MaxCost:      1e7,
	}
}

func TestValidateFormInput(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		modify     func(*calculations.FormInput)
		wantFields []string
	}{
		{
			name:   "example input is valid",
			modify: func(in *calculations.FormInput) {},
		},
		{
			name: "optional costs may be zero",
			modify: func(in *calculations.FormInput) {
				in.Logistics = 0
				in.Fulfillment = 0
				in.PaidAcceptance = 0
				in.StorageCost = 0
				in.Advertising = 0
				in.WBCommissionPercent = 0
			},
		},
		{
			name: "zero units sold",
			modify: func(in *calculations.FormInput) {
				in.UnitsSold = 0
			},
			wantFields: []string{"unitsSold"},
		},
		{
			name: "all required fields missing",
			modify: func(in *calculations.FormInput) {
				in.UnitsSold = 0
				in.PurchasePrice = -1
				in.SellingPrice = 0
			},
			wantFields: []string{"unitsSold", "purchasePrice", "sellingPrice"},
		},
		{
			name: "negative cost",
			modify: func(in *calculations.FormInput) {
				in.Advertising = -10
			},
			wantFields: []string{"advertising"},
		},
		{
			name: "percent above 100",
			modify: func(in *calculations.FormInput) {
				in.RedemptionRatePercent = 120
			},
			wantFields: []string{"redemptionRate"},
		},
		{
			name: "price not finite",
			modify: func(in *calculations.FormInput) {
				in.SellingPrice = math.Inf(1)
			},
			wantFields: []string{"sellingPrice"},
		},
		{
			name: "units over limit",
			modify: func(in *calculations.FormInput) {
				in.UnitsSold = 2e6
			},
			wantFields: []string{"unitsSold"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := calculations.ExampleFormInput()
			tt.modify(&in)

			err := ValidateFormInput(cfg, in)
			if (err != nil) != (len(tt.wantFields) > 0) {
				t.Fatalf("ValidateFormInput() error = %v, want fields %v", err, tt.wantFields)
			}

			got := InvalidFields(err)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("InvalidFields() = %v, want %v", got, tt.wantFields)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("InvalidFields()[%d] = %s, want %s", i, got[i], tt.wantFields[i])
				}
			}
		})
	}
}

func TestFieldErrorUnwrap(t *testing.T) {
	err := CheckRequired("sellingPrice", 0, 100)

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	if fieldErr.Field != "sellingPrice" {
		t.Errorf("expected field sellingPrice, got %s", fieldErr.Field)
	}
	if errors.Unwrap(err) == nil {
		t.Error("expected wrapped cause")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validate  func() error
		wantError bool
	}{
		{"valid percent", func() error { return CheckPercent("wbCommission", 15.5) }, false},
		{"negative percent", func() error { return CheckPercent("wbCommission", -0.1) }, true},
		{"NaN percent", func() error { return CheckPercent("wbCommission", math.NaN()) }, true},
		{"valid required", func() error { return CheckRequired("unitsSold", 1, 10) }, false},
		{"required at limit", func() error { return CheckRequired("unitsSold", 10, 10) }, false},
		{"required over limit", func() error { return CheckRequired("unitsSold", 11, 10) }, true},
		{"cost over limit", func() error { return CheckCost(testConfig(), "logistics", 2e7) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

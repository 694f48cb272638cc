package model

import "testing"

func TestDefaultRiskCategory(t *testing.T) {
	tests := []struct {
		category ContractCategory
		want     RiskCategory
	}{
		{CategoryITServices, RiskCategoryHigh},
		{CategoryBankingServices, RiskCategoryHigh},
		{CategoryProfessionalServices, RiskCategoryMedium},
		{CategoryLegalServices, RiskCategoryMedium},
		{CategoryFacilityManagement, RiskCategoryLow},
		{CategoryMarketingServices, RiskCategoryLow},
		{CategoryInsurance, RiskCategoryCritical},
		{CategoryOther, RiskCategoryMedium},
		{CategoryHumanResources, RiskCategoryMedium},
	}
	for _, tt := range tests {
		if got := DefaultRiskCategory(tt.category); got != tt.want {
			t.Errorf("DefaultRiskCategory(%s) = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestEffectiveDefaults(t *testing.T) {
	var ct ContractType
	if got := ct.EffectiveReminderDays(); got != 30 {
		t.Errorf("EffectiveReminderDays() on zero value = %d, want 30", got)
	}
	if got := ct.EffectiveDurationMonths(); got != 12 {
		t.Errorf("EffectiveDurationMonths() on zero value = %d, want 12", got)
	}

	ct.DefaultReminderDays = 60
	ct.DefaultDurationMonths = 36
	if got := ct.EffectiveReminderDays(); got != 60 {
		t.Errorf("EffectiveReminderDays() = %d, want 60", got)
	}
	if got := ct.EffectiveDurationMonths(); got != 36 {
		t.Errorf("EffectiveDurationMonths() = %d, want 36", got)
	}
}

func TestHighRisk(t *testing.T) {
	for _, tt := range []struct {
		risk RiskCategory
		want bool
	}{
		{RiskCategoryLow, false},
		{RiskCategoryMedium, false},
		{RiskCategoryHigh, true},
		{RiskCategoryCritical, true},
	} {
		ct := ContractType{RiskCategory: tt.risk}
		if got := ct.HighRisk(); got != tt.want {
			t.Errorf("HighRisk() with %s = %v, want %v", tt.risk, got, tt.want)
		}
	}
}

func TestStatusDisplayName(t *testing.T) {
	if got := StatusActive.DisplayName(); got != "Active" {
		t.Errorf("DisplayName() = %q, want Active", got)
	}
	if got := ContractStatus("UNKNOWN").DisplayName(); got != "UNKNOWN" {
		t.Errorf("unknown status should fall back to raw value, got %q", got)
	}
	if ContractStatus("UNKNOWN").Valid() {
		t.Error("unknown status must not be valid")
	}
}

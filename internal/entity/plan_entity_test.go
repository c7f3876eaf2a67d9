package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBillingIntervalAdvance(t *testing.T) {
	tests := []struct {
		name     string
		interval BillingInterval
		from     string
		want     string
	}{
		{name: "monthly mid month", interval: BillingIntervalMonthly, from: "2024-03-01", want: "2024-03-31"},
		{name: "monthly across month end", interval: BillingIntervalMonthly, from: "2024-01-15", want: "2024-02-14"},
		{name: "yearly leap year", interval: BillingIntervalYearly, from: "2024-01-01", want: "2024-12-31"},
		{name: "yearly regular year", interval: BillingIntervalYearly, from: "2023-01-01", want: "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := time.Parse("2006-01-02", tt.from)
			got := tt.interval.Advance(from).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("Advance(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestBillingIntervalMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		interval BillingInterval
		price    string
		want     string
	}{
		{name: "monthly passes through", interval: BillingIntervalMonthly, price: "29.99", want: "29.99"},
		{name: "yearly divides by 12", interval: BillingIntervalYearly, price: "120", want: "10"},
		{name: "yearly non terminating", interval: BillingIntervalYearly, price: "100", want: "8.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			want := decimal.RequireFromString(tt.want)
			got := tt.interval.MonthlyEquivalent(price)
			if !got.Equal(want) {
				t.Errorf("MonthlyEquivalent(%s) = %s, want %s", tt.price, got, tt.want)
			}
		})
	}
}

func TestBillingIntervalValid(t *testing.T) {
	if !BillingIntervalMonthly.Valid() || !BillingIntervalYearly.Valid() {
		t.Error("known intervals must be valid")
	}
	if BillingInterval("weekly").Valid() {
		t.Error("unknown interval must be invalid")
	}
}

func TestSubscriptionStatusValid(t *testing.T) {
	for _, s := range []SubscriptionStatus{
		SubscriptionStatusActive,
		SubscriptionStatusCanceled,
		SubscriptionStatusPastDue,
		SubscriptionStatusTrial,
	} {
		if !s.Valid() {
			t.Errorf("status %s must be valid", s)
		}
	}
	if SubscriptionStatus("paused").Valid() {
		t.Error("unknown status must be invalid")
	}
}

package domain_test

import (
	"testing"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAgreementStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.AgreementStatus
		to   domain.AgreementStatus
		want bool
	}{
		{name: "pending to accepted", from: domain.AgreementPending, to: domain.AgreementAccepted, want: true},
		{name: "pending to rejected", from: domain.AgreementPending, to: domain.AgreementRejected, want: true},
		{name: "pending stays pending", from: domain.AgreementPending, to: domain.AgreementPending, want: true},
		{name: "accepted stays accepted (bill status change)", from: domain.AgreementAccepted, to: domain.AgreementAccepted, want: true},
		{name: "accepted to rejected", from: domain.AgreementAccepted, to: domain.AgreementRejected, want: false},
		{name: "accepted back to pending", from: domain.AgreementAccepted, to: domain.AgreementPending, want: false},
		{name: "rejected to accepted", from: domain.AgreementRejected, to: domain.AgreementAccepted, want: false},
		{name: "rejected to pending", from: domain.AgreementRejected, to: domain.AgreementPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAgreement_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AgreementStatus
		want   bool
	}{
		{name: "pending holds the apartment", status: domain.AgreementPending, want: true},
		{name: "accepted holds the apartment", status: domain.AgreementAccepted, want: true},
		{name: "rejected releases the apartment", status: domain.AgreementRejected, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.Agreement{Status: tt.status}
			assert.Equal(t, tt.want, a.IsActive())
		})
	}
}

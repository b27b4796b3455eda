package models

import "testing"

func TestDonationDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		donation Donation
		want     string
	}{
		{"named donor", Donation{DonorName: "Ivan Petrov"}, "Ivan Petrov"},
		{"anonymous flag hides name", Donation{DonorName: "Ivan Petrov", IsAnonymous: true}, "Anonymous"},
		{"no name left", Donation{}, "Anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.donation.DisplayName(); got != tt.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

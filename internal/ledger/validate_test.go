package ledger

import (
	"errors"
	"testing"
)

func TestValidateShares(t *testing.T) {
	tests := []struct {
		name        string
		amountMinor int64
		payerID     string
		shares      []Share
		wantErr     error
	}{
		{
			name:        "valid even split",
			amountMinor: 2000,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 1000},
				{UserID: "bob", ShareMinor: 1000},
			},
		},
		{
			name:        "valid uneven split",
			amountMinor: 1001,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 334},
				{UserID: "bob", ShareMinor: 334},
				{UserID: "carol", ShareMinor: 333},
			},
		},
		{
			name:        "zero-amount expense with zero shares",
			amountMinor: 0,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 0},
				{UserID: "bob", ShareMinor: 0},
			},
		},
		{
			name:        "negative amount",
			amountMinor: -100,
			payerID:     "alice",
			shares:      []Share{{UserID: "alice", ShareMinor: -100}},
			wantErr:     ErrInvalidArgument,
		},
		{
			name:        "empty payer id",
			amountMinor: 100,
			payerID:     "",
			shares:      []Share{{UserID: "alice", ShareMinor: 100}},
			wantErr:     ErrInvalidArgument,
		},
		{
			name:        "empty share list",
			amountMinor: 100,
			payerID:     "alice",
			shares:      nil,
			wantErr:     ErrInvalidArgument,
		},
		{
			name:        "negative share",
			amountMinor: 100,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 200},
				{UserID: "bob", ShareMinor: -100},
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name:        "payer missing from shares",
			amountMinor: 2000,
			payerID:     "carol",
			shares: []Share{
				{UserID: "alice", ShareMinor: 1000},
				{UserID: "bob", ShareMinor: 1000},
			},
			wantErr: ErrPayerNotParticipant,
		},
		{
			name:        "shares under amount",
			amountMinor: 2000,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 1000},
				{UserID: "bob", ShareMinor: 999},
			},
			wantErr: ErrShareSumMismatch,
		},
		{
			name:        "shares over amount by one",
			amountMinor: 2000,
			payerID:     "alice",
			shares: []Share{
				{UserID: "alice", ShareMinor: 1001},
				{UserID: "bob", ShareMinor: 1000},
			},
			wantErr: ErrShareSumMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateShares(tt.amountMinor, tt.payerID, tt.shares)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateShares() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateShares() failed: %v", err)
			}
			// Validation is non-mutating: shares come back unchanged.
			if len(got) != len(tt.shares) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.shares))
			}
			for i := range got {
				if got[i] != tt.shares[i] {
					t.Errorf("share %d = %+v, want %+v", i, got[i], tt.shares[i])
				}
			}
		})
	}
}

func TestValidateSharesCap(t *testing.T) {
	shares := make([]Share, MaxShares+1)
	for i := range shares {
		shares[i] = Share{UserID: "user", ShareMinor: 0}
	}
	shares[0].UserID = "payer"

	_, err := ValidateShares(0, "payer", shares)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for %d shares, got %v", len(shares), err)
	}

	// Exactly at the cap is fine.
	_, err = ValidateShares(0, "payer", shares[:MaxShares])
	if err != nil {
		t.Fatalf("ValidateShares() at cap failed: %v", err)
	}
}

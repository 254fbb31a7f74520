package policy

import "testing"

func TestDecideJoinAdmission(t *testing.T) {
	tests := []struct {
		name      string
		pol       RuntimePolicy
		unionSize int
		want      DecisionAction
	}{
		{"under threshold admits", Hardened(100), 50, Admit},
		{"past warn threshold warns", Hardened(100), 85, Warn},
		{"past cap rejects", Hardened(100), 101, Reject},
		{"no cap never rejects", Hardened(NoRowCap), 10_000_000, Admit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewEvidenceLedger()
			got := tt.pol.DecideJoinAdmission(tt.unionSize, ledger)
			if got != tt.want {
				t.Errorf("DecideJoinAdmission() = %v, want %v", got, tt.want)
			}
			if len(ledger.Entries()) != 1 {
				t.Errorf("expected exactly one ledger entry, got %d", len(ledger.Entries()))
			}
		})
	}
}

func TestDecideUnknownFeature_AlwaysRecords(t *testing.T) {
	ledger := NewEvidenceLedger()
	Strict().DecideUnknownFeature("index_alignment", "duplicate labels", ledger)
	if len(ledger.Entries()) != 1 {
		t.Errorf("expected one ledger entry, got %d", len(ledger.Entries()))
	}
	if ledger.Entries()[0].Action != Warn {
		t.Errorf("expected an unknown-feature decision to be Warn, got %v", ledger.Entries()[0].Action)
	}
}

func TestStrict_Mode(t *testing.T) {
	if Strict().Mode() != ModeStrict {
		t.Errorf("Strict().Mode() = %v, want %v", Strict().Mode(), ModeStrict)
	}
	if Hardened(10).Mode() != ModeHardened {
		t.Errorf("Hardened(10).Mode() = %v, want %v", Hardened(10).Mode(), ModeHardened)
	}
}

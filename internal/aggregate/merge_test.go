package aggregate

import (
	"testing"

	"adpulse/internal/domain"
)

func TestFingerprint(t *testing.T) {
	a := []domain.CanonicalRecord{
		rec("Slingo Android", "slingo_and_us_cpi_TPJ", "p", "2024-03-01", 1, nil),
		rec("Azula", "azula_iph_jp_cpi_MTG", "p", "2024-03-01", 1, nil),
	}
	got := Fingerprint(a)
	want := "Azula|Slingo|Japan|United States"
	if got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := []domain.CanonicalRecord{
		rec("Slingo Android", "slingo_and_us_cpi_TPJ", "p", "2024-03-01", 1, nil),
		rec("Azula", "azula_iph_jp_cpi_MTG", "p", "2024-03-01", 1, nil),
	}
	b := []domain.CanonicalRecord{a[1], a[0]}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprint must not depend on record order")
	}
}

func TestIsSameCampaign(t *testing.T) {
	slingo := func(day string) domain.CanonicalRecord {
		return rec("Slingo Android", "slingo_and_us_cpi_TPJ", "p", day, 1, nil)
	}
	azula := rec("Azula", "azula_iph_jp_cpi_MTG", "p", "2024-03-01", 1, nil)
	busfrenzy := rec("Bus Frenzy", "busfrenzy_and_de_cpi_VGL", "p", "2024-03-01", 1, nil)
	skyrails := rec("Sky Rails Android", "skyrails_and_tr_cpi_MSW", "p", "2024-03-01", 1, nil)

	tests := []struct {
		name string
		a, b []domain.CanonicalRecord
		want bool
	}{
		{
			name: "identical sets match",
			a:    []domain.CanonicalRecord{slingo("2024-03-01")},
			b:    []domain.CanonicalRecord{slingo("2024-03-02")},
			want: true,
		},
		{
			name: "majority game overlap matches",
			a:    []domain.CanonicalRecord{slingo("2024-03-01"), azula},
			b:    []domain.CanonicalRecord{slingo("2024-03-02"), azula, busfrenzy},
			want: true,
		},
		{
			name: "minority game overlap does not match",
			a:    []domain.CanonicalRecord{slingo("2024-03-01"), azula},
			b:    []domain.CanonicalRecord{slingo("2024-03-02"), busfrenzy},
			want: false,
		},
		{
			name: "disjoint games do not match",
			a:    []domain.CanonicalRecord{slingo("2024-03-01")},
			b:    []domain.CanonicalRecord{skyrails},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameCampaign(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSameCampaign = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeRecordsReplaceAndAppend(t *testing.T) {
	existing := []domain.CanonicalRecord{
		rec("Slingo Android", "cn", "an", "2024-03-01", 10, nil),
		rec("Slingo Android", "cn", "an", "2024-03-02", 20, nil),
	}
	incoming := []domain.CanonicalRecord{
		rec("Slingo Android", "cn", "an", "2024-03-02", 25, nil),
		rec("Slingo Android", "cn", "an", "2024-03-03", 30, nil),
	}
	merged := MergeRecords(existing, incoming)
	if len(merged) != 3 {
		t.Fatalf("got %d records, want 3", len(merged))
	}
	// Shared key replaced in place, order of surviving rows preserved.
	if merged[0].Installs != 10 || merged[1].Installs != 25 || merged[2].Installs != 30 {
		t.Errorf("installs = %d, %d, %d", merged[0].Installs, merged[1].Installs, merged[2].Installs)
	}
	if merged[1].Day != "2024-03-02" || merged[2].Day != "2024-03-03" {
		t.Errorf("days = %q, %q", merged[1].Day, merged[2].Day)
	}
}

func TestMergeRecordsIdempotent(t *testing.T) {
	set := []domain.CanonicalRecord{
		rec("Slingo Android", "cn", "an", "2024-03-01", 10, nil),
		rec("Slingo Android", "cn", "an", "2024-03-02", 20, nil),
	}
	merged := MergeRecords(set, set)
	if len(merged) != len(set) {
		t.Fatalf("got %d records, want %d", len(merged), len(set))
	}
	for i := range set {
		if merged[i].Key() != set[i].Key() || merged[i].Installs != set[i].Installs {
			t.Errorf("record %d changed: %+v", i, merged[i])
		}
	}
}

func TestMergeRecordsDoesNotMutateExisting(t *testing.T) {
	existing := []domain.CanonicalRecord{
		rec("Slingo Android", "cn", "an", "2024-03-01", 10, nil),
	}
	incoming := []domain.CanonicalRecord{
		rec("Slingo Android", "cn", "an", "2024-03-01", 99, nil),
	}
	MergeRecords(existing, incoming)
	if existing[0].Installs != 10 {
		t.Errorf("input slice mutated: %+v", existing[0])
	}
}

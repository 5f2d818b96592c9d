package ingest

import (
	"reflect"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   Format
	}{
		{
			name:   "detailed signature",
			header: []string{"app", "campaign_network", "adgroup_network", "day", "installs", "ecpi", "adjust_cost"},
			want:   FormatDetailed,
		},
		{
			name:   "azula signature has revenue but no app",
			header: []string{"campaign_network", "adgroup_network", "day", "installs", "all_revenue", "ecpi", "roas_d7"},
			want:   FormatAzula,
		},
		{
			name:   "busfrenzy signature",
			header: []string{"app", "campaign_network", "adgroup_network", "day", "installs", "cost", "all_revenue", "roas_d0"},
			want:   FormatBusFrenzy,
		},
		{
			name:   "anything else is generic",
			header: []string{"app", "campaign_network", "day", "installs"},
			want:   FormatGeneric,
		},
		{
			name:   "detection ignores column order",
			header: []string{"adjust_cost", "day", "ecpi", "app"},
			want:   FormatDetailed,
		},
		{
			name:   "detection is case-insensitive",
			header: []string{"App", "ECPI", "Adjust_Cost"},
			want:   FormatDetailed,
		},
		{
			name:   "empty header is generic",
			header: nil,
			want:   FormatGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.header); got != tt.want {
				t.Errorf("DetectFormat(%v) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestRepairHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{
			name:   "strips stray m prefix",
			header: []string{"m app", "day"},
			want:   []string{"app", "day"},
		},
		{
			name:   "strips mis-encoded gönder prefix",
			header: []string{"gönderapp", "day"},
			want:   []string{"app", "day"},
		},
		{
			name:   "strips stacked markers",
			header: []string{"m gönderapp", "day"},
			want:   []string{"app", "day"},
		},
		{
			name:   "clean header untouched",
			header: []string{"app", "day"},
			want:   []string{"app", "day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairHeader(tt.header)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RepairHeader(%v) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestRepairHeaderDoesNotMutateInput(t *testing.T) {
	header := []string{"m app", "day"}
	RepairHeader(header)
	if header[0] != "m app" {
		t.Errorf("input slice was mutated: %v", header)
	}
}

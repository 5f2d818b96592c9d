package decode

import "testing"

func TestNetworkExactTables(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SCE", "Catbyte"},
		{"sce", "Catbyte"},
		{"TPJ", "Tapjoy"},
		{"VGL", "Vungle"},
		{"YXBwbG92aW5faW50", "AppLovin"},
		{"a3dhaV9pbnQ=", "Kwai for Business"},
		{"YWRqb2VfcGxheXRpbWU=", "adjoe"},
		{"PTSDK", "adjoe"},
		{"ptsdk_and_2", "adjoe"},
		{"PTSDK_GAMELIKE", "AppLike"},
	}
	for _, tt := range tests {
		if got := Network(tt.in); got != tt.want {
			t.Errorf("Network(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNetworkForcedPrefixes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DGT_summer_push", "Digital Turbine"},
		{"ttc_q3_retarget", "TikTok for Business"},
		{"MSP_loyalty_2024", "Mistplay"},
	}
	for _, tt := range tests {
		if got := Network(tt.in); got != tt.want {
			t.Errorf("Network(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNetworkNumericPatterns(t *testing.T) {
	tests := []string{
		"45209_5406",
		"34631_207475",
		"18240_reward-77",
		"5521_US-301",
		"9980_120-45-slot",
		"77120_banner",
		"88412_",
		"900142",
	}
	for _, in := range tests {
		if got := Network(in); got != "Mintegral" {
			t.Errorf("Network(%q) = %q, want Mintegral", in, got)
		}
	}
}

func TestNetworkAffixScan(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SCE_slingo_us", "Catbyte"},
		{"summer_TPJ", "Tapjoy"},
		{"skyrails-vgl", "Vungle"},
		{"MSW_and_de", "Mistplay"},
	}
	for _, tt := range tests {
		if got := Network(tt.in); got != tt.want {
			t.Errorf("Network(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNetworkAffixScanRequiresBoundary(t *testing.T) {
	// "SCEnery" starts with a known code but not on a token boundary.
	if got := Network("SCEnery"); got != "SCEnery" {
		t.Errorf("Network(SCEnery) = %q, want verbatim", got)
	}
}

func TestNetworkArtifactStripping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TPJ,undefined", "Tapjoy"},
		{"SCE_slingo_creative=v2_banner", "Catbyte"},
		{"  VGL  ", "Vungle"},
		{"45209_5406,45209_5406", "Mintegral"},
	}
	for _, tt := range tests {
		if got := Network(tt.in); got != tt.want {
			t.Errorf("Network(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNetworkStructuralFallbacks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aB3dE5fG7hJ9kL2=", "ironSource"},
		{"VyQmFubmVyX3Nsb3Q0Mg==", "Vungle"},
	}
	for _, tt := range tests {
		if got := Network(tt.in); got != tt.want {
			t.Errorf("Network(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNetworkIdempotentOnCanonicalNames(t *testing.T) {
	names := []string{
		"Catbyte", "AppLovin", "Unity Ads", "ironSource", "Mintegral",
		"Vungle", "Tapjoy", "TikTok for Business", "Mistplay", "adjoe",
	}
	for _, name := range names {
		if got := Network(name); got != name {
			t.Errorf("Network(%q) = %q, canonical names must pass through", name, got)
		}
	}
}

func TestNetworkVerbatimFallthrough(t *testing.T) {
	var collected []string
	got := NetworkWith("mystery_partner_42x", func(code string) {
		collected = append(collected, code)
	})
	if got != "mystery_partner_42x" {
		t.Errorf("got %q, want verbatim input", got)
	}
	if len(collected) != 1 || collected[0] != "mystery_partner_42x" {
		t.Errorf("collector saw %v, want the undecoded code once", collected)
	}
}

func TestNetworkEmptyInput(t *testing.T) {
	if got := Network(""); got != "" {
		t.Errorf("Network(\"\") = %q, want empty passthrough", got)
	}
}

func TestNormalizePublisher(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"unknown", "Unknown"},
		{"Unknown", "Unknown"},
		{"test", "Test"},
		{"TEST", "Test"},
		{"TPJ", "Tapjoy"},
		{"pub_partner_9", "pub_partner_9"},
	}
	for _, tt := range tests {
		if got := NormalizePublisher(tt.in); got != tt.want {
			t.Errorf("NormalizePublisher(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package usecase

import (
	"context"
	"strings"
	"testing"

	"adpulse/internal/infrastructure"
	"adpulse/pkg/logger"
)

func newAssistant(t *testing.T) (*AssistantService, string) {
	t.Helper()
	log := logger.New("error")
	pipeline := NewPipelineService(infrastructure.NewDatasetRepository(log), log, testMetrics)
	insights := NewInsightsService(pipeline, log)

	csv := strings.Join([]string{
		detailedHeader,
		detailedRow("Slingo Android", "slingo_and_us_cpi_TPJ", "2024-03-01", "100"),
		detailedRow("Azula", "azula_iph_jp_cpi_MTG", "2024-03-01", "30"),
	}, "\n")
	ds := uploadAndCommit(t, pipeline, "chat.csv", csv)

	return NewAssistantService(insights, log), ds.ID
}

func TestAssistantReply(t *testing.T) {
	assistant, fileID := newAssistant(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"top game", "what is my best game?", "Slingo"},
		{"top market", "which country performs best?", "United States"},
		{"publisher", "strongest publisher?", "installs among your publishers"},
		{"installs", "how many installs do I have?", "130 installs"},
		{"spend", "what did I spend?", "Total spend"},
		{"revenue", "how is my roas?", "ROAS d7"},
		{"retention", "show me retention", "retention d7"},
		{"date range", "what period does this cover?", "2024-03-01 through 2024-03-01"},
		{"help", "help", "I can tell you about"},
		{"unmatched", "sing me a song", "I can tell you about"},
		{"empty", "", "I can tell you about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := assistant.Reply(ctx, fileID, tt.message)
			if err != nil {
				t.Fatalf("Reply: %v", err)
			}
			if !strings.Contains(reply, tt.want) {
				t.Errorf("Reply(%q) = %q, want it to contain %q", tt.message, reply, tt.want)
			}
		})
	}
}

func TestAssistantRetentionWithoutDetailedData(t *testing.T) {
	log := logger.New("error")
	pipeline := NewPipelineService(infrastructure.NewDatasetRepository(log), log, testMetrics)
	insights := NewInsightsService(pipeline, log)
	assistant := NewAssistantService(insights, log)

	csv := strings.Join([]string{
		"app,campaign_network,adgroup_network,day,installs,cost,all_revenue,roas_d0,roas_d3,roas_d7",
		"Bus Frenzy,busfrenzy_and_de_cpi_VGL,unknown,2024-03-01,40,120.00,55.00,0.05,0.18,0.46",
	}, "\n")
	ds := uploadAndCommit(t, pipeline, "busfrenzy.csv", csv)

	reply, err := assistant.Reply(context.Background(), ds.ID, "what about retention?")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if !strings.Contains(reply, "no retention columns") {
		t.Errorf("Reply = %q, want the no-retention answer", reply)
	}
}

func TestAssistantUnknownFile(t *testing.T) {
	assistant, _ := newAssistant(t)
	if _, err := assistant.Reply(context.Background(), "missing-id", "installs?"); err == nil {
		t.Error("Reply for a missing file should fail")
	}
}

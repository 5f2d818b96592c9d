package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"adpulse/pkg/logger"
)

// AssistantService backs the dashboard chat widget. Replies are canned:
// the message is matched against intent patterns and the answer is rendered
// from the current KPI summary. There is no NLP here and none is wanted.
type AssistantService struct {
	insights *InsightsService
	logger   *logger.Logger
}

func NewAssistantService(insights *InsightsService, logger *logger.Logger) *AssistantService {
	return &AssistantService{
		insights: insights,
		logger:   logger,
	}
}

type intent struct {
	pattern *regexp.Regexp
	render  func(*Summary) string
}

var intents = []intent{
	{
		pattern: regexp.MustCompile(`\b(top|best|strongest)\b.*\bgame\b|\bgame\b.*\b(top|best)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("Your strongest title is %s with the most installs in the selected range.", s.TopGame)
		},
	},
	{
		pattern: regexp.MustCompile(`\b(country|geo|market|region)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("%s is your top market by installs.", s.TopCountry)
		},
	},
	{
		pattern: regexp.MustCompile(`\b(publisher|network|source|channel)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("%s drives the most installs among your publishers.", s.TopPublisher)
		},
	},
	{
		pattern: regexp.MustCompile(`\binstalls?\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("You have %d installs across %d groups; %s leads.", s.TotalInstalls, s.Groups, s.TopGame)
		},
	},
	{
		pattern: regexp.MustCompile(`\b(cost|spend|budget|ecpi)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("Total spend is %.2f at an average eCPI of %.3f.", s.TotalCost, s.AvgECPI)
		},
	},
	{
		pattern: regexp.MustCompile(`\b(revenue|roas|profit|return)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("Total revenue is %.2f with an installs-weighted ROAS d7 of %.3f.", s.TotalRevenue, s.AvgROASD7)
		},
	},
	{
		pattern: regexp.MustCompile(`\bretention\b`),
		render: func(s *Summary) string {
			if !s.HasDetailedData {
				return "This file carries no retention columns, so I can't answer that one."
			}
			return fmt.Sprintf("Installs-weighted retention d7 is %.1f%%.", s.AvgRetentionD7*100)
		},
	},
	{
		pattern: regexp.MustCompile(`\b(date|range|period|when|days?)\b`),
		render: func(s *Summary) string {
			return fmt.Sprintf("The data covers %s through %s.", s.DateFrom, s.DateTo)
		},
	},
}

const helpReply = "I can tell you about installs, spend, revenue, ROAS, retention, " +
	"your top game, country or publisher, and the covered date range."

// Reply matches the message against the intent patterns in order and
// renders the first hit from the dataset's KPI summary.
func (a *AssistantService) Reply(ctx context.Context, fileID, message string) (string, error) {
	sum, err := a.insights.Summarize(ctx, fileID, "", "")
	if err != nil {
		return "", err
	}

	low := strings.ToLower(strings.TrimSpace(message))
	if low == "" || strings.Contains(low, "help") {
		return helpReply, nil
	}

	for _, it := range intents {
		if it.pattern.MatchString(low) {
			reply := it.render(sum)
			a.logger.WithContext(ctx).WithFields(map[string]any{
				"file_id": fileID,
				"intent":  it.pattern.String(),
			}).Debug("Assistant intent matched")
			return reply, nil
		}
	}

	return helpReply, nil
}

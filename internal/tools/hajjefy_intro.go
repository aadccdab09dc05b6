package tools

import (
	"context"
	"encoding/json"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

// introTool serves the static capabilities overview. No client needed.
type introTool struct{}

// Overview constructs the tool.
func Overview() *introTool {
	return &introTool{}
}

func (t *introTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_hajjefy_overview",
		Description: "Get an overview of Hajjefy capabilities and sample prompts to get started",
		InputSchema: &protocol.JSONSchema{
			Type:                 "object",
			Properties:           map[string]protocol.JSONSchema{},
			AdditionalProperties: false,
		},
	}
}

func (t *introTool) Invoke(_ context.Context, _ json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	return protocol.TextResult(introText), nil
}

const introText = `# Hajjefy - AI-Powered Time Tracking Analytics

Welcome to Hajjefy! I'm your AI assistant for analyzing Tempo.io time tracking data. I can help you uncover insights, track productivity, and understand team performance patterns.

## What I Can Do

### Time Analytics
- Comprehensive daily hours breakdown with day-by-day analysis
- **Per-user daily hours tracking** with individual productivity metrics
- Project/account allocation and time distribution
- Billable vs non-billable hours analysis with percentages
- Weekly patterns and productivity trends
- Specific worklog timestamps and detailed entries
- Export data in various formats

### Team & User Insights
- Get detailed user performance analytics
- **Individual daily hours per user** with billable breakdowns
- Analyze team workload distribution
- Track capacity and utilization rates
- Identify top performers and bottlenecks
- User ranking by productivity and active days

### Customer & TAM Analytics
- Customer analysis aggregated across every account code a customer owns
- Per-user customer allocation breakdowns
- TAM expertise tiers with resource recommendations
- Optional Salesforce account enrichment

## Try These Sample Prompts

### Getting Started
- "Show me a time tracking summary for the last 30 days"
- "What's our team's billable vs non-billable hours breakdown?"
- "Give me daily hours for the past week with project breakdown"

### Team Analysis
- "Show me capacity analysis for all users"
- "Who are our most productive team members?"
- "What's the team workload distribution this month?"

### Customer Insights
- "Analyze RelateCare's hours for the last quarter"
- "How is Nadim Hajje's time split across customers?"
- "Who are our best TAM resources with at least 10 TAM hours?"

### Custom Date Ranges
- "Show time summary from September 1 to September 15"
- "Analyze capacity for the last 90 days"

## Pro Tips

1. **Be Specific**: Include date ranges, user names, or specific metrics you're interested in
2. **Ask Follow-ups**: "Can you break that down by user?" or "What about billable hours only?"
3. **Export When Needed**: "Export this data to CSV" after getting insights you want to save

---

*Powered by Hajjefy.com - Connected to your Tempo.io data*`

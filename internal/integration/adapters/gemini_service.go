// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/studysync/backend/internal/application/adapter"
)

// GeminiService implements the StudyPlannerService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GeneratePlan produces a study plan for the given subjects and constraints.
func (s *GeminiService) GeneratePlan(ctx context.Context, request *adapter.StudyPlanRequest) (*adapter.StudyPlanResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.StudyPlanRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an academic study coach. Your task is to create a practical,
day-by-day study plan for a university student.

RULES:
- Balance time across all subjects, giving more time to focus areas and upcoming exams
- Break each day into concrete blocks with a subject and a goal for the block
- Include short breaks and at least one rest day per week
- Keep the plan realistic for the stated hours per day
- Write the plan body in Markdown with a section per day

SUBJECTS:
`)

	for _, subject := range request.Subjects {
		sb.WriteString(fmt.Sprintf("- %s\n", subject))
	}

	sb.WriteString(fmt.Sprintf("\nHOURS AVAILABLE PER DAY: %d\n", request.HoursPerDay))

	if request.FocusAreas != "" {
		sb.WriteString(fmt.Sprintf("\nFOCUS AREAS:\n%s\n", request.FocusAreas))
	}
	if request.UpcomingExams != "" {
		sb.WriteString(fmt.Sprintf("\nUPCOMING EXAMS:\n%s\n", request.UpcomingExams))
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "title": "short descriptive title for the plan",
  "plan": "the full study plan in Markdown"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiPlan represents the raw response from Gemini.
type geminiPlan struct {
	Title string `json:"title"`
	Plan  string `json:"plan"`
}

// parseResponse parses the Gemini response into a StudyPlanResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.StudyPlanResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var plan geminiPlan
	if err := json.Unmarshal([]byte(textContent), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if plan.Title == "" {
		plan.Title = "Study plan"
	}
	if plan.Plan == "" {
		return nil, fmt.Errorf("empty plan in response")
	}

	return &adapter.StudyPlanResult{
		Title:   plan.Title,
		Content: plan.Plan,
	}, nil
}

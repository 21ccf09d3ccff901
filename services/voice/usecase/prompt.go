package usecase

import (
	"fmt"
	"strings"

	"github.com/echonote/backend/services/voice/entity"
)

const analysisSystemPrompt = "You are a helpful assistant that analyzes transcribed voice recordings " +
	"to extract and categorize ideas using semantic understanding. Always respond with valid JSON."

// buildAnalysisPrompt assembles the instruction for the generation service:
// the transcript, the known category names and, when available, recent and
// semantically similar ideas for cross-recording linking.
func buildAnalysisPrompt(transcript string, categories []string, recent []*entity.Idea, similar []*entity.SimilarIdea) string {
	var recentContext string
	if len(recent) > 0 {
		var lines []string
		for _, idea := range recent {
			tags := "none"
			if len(idea.AIAutoTags) > 0 {
				tags = strings.Join(idea.AIAutoTags, ", ")
			}
			lines = append(lines, fmt.Sprintf("- %q (tags: %s)", idea.Content, tags))
		}
		recentContext = "\n\nRecent ideas for potential linking:\n" + strings.Join(lines, "\n")
	}

	var similarContext string
	if len(similar) > 0 {
		var lines []string
		for _, idea := range similar {
			lines = append(lines, fmt.Sprintf("- %q (%.1f%% similar, type: %s)", idea.Content, idea.Similarity*100, idea.IdeaType))
		}
		similarContext = "\n\nSemantically similar ideas (based on meaning):\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Analyze this transcribed text using intelligent idea organization and semantic understanding. Your task is to:
1. Identify main ideas vs sub-components vs follow-up ideas
2. Determine semantic relationships with recent and similar ideas
3. Set confidence levels for uncertain groupings
4. Extract relevant auto-tags for semantic linking

Text: %q

Available categories: %s%s%s

Return a JSON response with this exact structure:
{
  "multiple_ideas": boolean,
  "ideas": [
    {
      "content": "extracted idea text",
      "idea_type": "main|sub-component|follow-up",
      "category": "category_name",
      "sequence": 1,
      "tags": ["user-facing-tag1", "user-facing-tag2"],
      "ai_auto_tags": ["semantic-tag1", "semantic-tag2", "entity-name"],
      "confidence_level": 0.95,
      "potential_master_idea": "content of related recent idea if this should be linked",
      "needs_clarification": false,
      "clarification_question": "Should this be part of your X project?"
    }
  ]
}

CRITICAL Guidelines:
- main: Core standalone concepts that deserve their own entry
- sub-component: Details, features, or requirements of a main idea (use when ideas are clearly related)
- follow-up: Completely separate ideas mentioned in same recording
- confidence_level: 0.0-1.0 (set below 0.7 for uncertain groupings)
- needs_clarification: true only when confidence < 0.7 AND linking to existing ideas
- ai_auto_tags: semantic tags for automatic linking (entities, projects, concepts)
- tags: user-facing tags (urgency, timing, action items)
- potential_master_idea: exact content match from recent ideas if this should be linked
- If 80%%+ semantic similarity with similar ideas, suggest linking with needs_clarification
- Number ideas in sequence, prioritize main ideas first
- Keep original wording but clean up speech-to-text errors`,
		transcript, strings.Join(categories, ", "), recentContext, similarContext)
}

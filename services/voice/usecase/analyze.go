package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/echonote/backend/pkg/jsonrepair"
	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/consts"
	"github.com/echonote/backend/services/voice/entity"
)

type analysisPayload struct {
	MultipleIdeas bool           `json:"multiple_ideas"`
	Ideas         []*entity.Idea `json:"ideas"`
}

// analyzeTranscript asks the generation service to split the transcript into
// ideas. Any failure, a dead upstream, malformed JSON the repair pass cannot
// fix, an empty idea list, degrades to one locally synthesized idea so the
// caller always gets the transcript back with something attached.
func (u *usecase) analyzeTranscript(ctx context.Context, apiKey, transcript string, categories []string, recent []*entity.Idea, similar []*entity.SimilarIdea) []*entity.Idea {
	log := logger.FromContext(ctx)

	prompt := buildAnalysisPrompt(transcript, categories, recent, similar)

	raw, err := u.ai.Complete(ctx, apiKey, analysisSystemPrompt, prompt)
	if err != nil {
		log.Error("analysis call failed, falling back", "error", err)
		return []*entity.Idea{fallbackIdea(transcript, categories)}
	}

	ideas, ok := parseAnalysis(raw)
	if !ok {
		log.Warn("analysis reply unparseable after repair, falling back", "reply_length", len(raw))
		return []*entity.Idea{fallbackIdea(transcript, categories)}
	}
	log.Debug("analysis parsed", "ideas", len(ideas))

	return ideas
}

func parseAnalysis(raw string) ([]*entity.Idea, bool) {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		repaired, ok := jsonrepair.Repair(raw)
		if !ok {
			return nil, false
		}
		if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
			return nil, false
		}
	}

	ideas := make([]*entity.Idea, 0, len(payload.Ideas))
	for _, idea := range payload.Ideas {
		if idea == nil || strings.TrimSpace(idea.Content) == "" {
			continue
		}
		ideas = append(ideas, idea)
	}
	if len(ideas) == 0 {
		return nil, false
	}

	return ideas, true
}

// normalizeIdeas enforces the idea invariants regardless of what the model
// returned: known type, confidence in [0,1], the originating transcript, and
// sequence values forming a permutation of 1..N.
func normalizeIdeas(ideas []*entity.Idea, transcript string) {
	seen := make(map[int]bool, len(ideas))
	valid := true

	for _, idea := range ideas {
		switch idea.IdeaType {
		case consts.IdeaTypeMain, consts.IdeaTypeSubComponent, consts.IdeaTypeFollowUp:
		default:
			idea.IdeaType = consts.IdeaTypeMain
		}

		if idea.ConfidenceLevel < 0 {
			idea.ConfidenceLevel = 0
		}
		if idea.ConfidenceLevel > 1 {
			idea.ConfidenceLevel = 1
		}

		if idea.OriginalTranscription == "" {
			idea.OriginalTranscription = transcript
		}
		if idea.Tags == nil {
			idea.Tags = []string{}
		}
		if idea.AIAutoTags == nil {
			idea.AIAutoTags = []string{}
		}

		if idea.Sequence < 1 || idea.Sequence > len(ideas) || seen[idea.Sequence] {
			valid = false
		}
		seen[idea.Sequence] = true
	}

	if !valid {
		for i, idea := range ideas {
			idea.Sequence = i + 1
		}
	}
}

// fallbackIdea synthesizes a single idea from the bare transcript using
// keyword matching, used when the generation service is unusable.
func fallbackIdea(transcript string, categories []string) *entity.Idea {
	lower := strings.ToLower(transcript)

	category := ""
	for _, name := range categories {
		if strings.Contains(lower, strings.ToLower(name)) {
			category = name
			break
		}
	}
	if category == "" {
		for name, keywords := range categoryKeywords {
			if containsAny(lower, keywords) {
				category = name
				break
			}
		}
	}

	var tags []string
	if containsAny(lower, []string{"urgent", "asap", "immediately", "right away"}) {
		tags = append(tags, "urgent")
	}
	if containsAny(lower, []string{"buy", "purchase", "order", "get "}) {
		tags = append(tags, "action-item")
	}
	if containsAny(lower, []string{"call", "email", "message", "contact", "remind"}) {
		tags = append(tags, "follow-up")
	}
	if tags == nil {
		tags = []string{}
	}

	return &entity.Idea{
		Content:               transcript,
		OriginalTranscription: transcript,
		IdeaType:              consts.IdeaTypeMain,
		Category:              category,
		Sequence:              1,
		Tags:                  tags,
		AIAutoTags:            []string{consts.FallbackAutoTag},
		ConfidenceLevel:       consts.FallbackConfidence,
	}
}

var categoryKeywords = map[string][]string{
	"Business":         {"meeting", "client", "revenue", "startup", "pitch"},
	"Technology":       {"app", "code", "software", "api", "server"},
	"Health & Fitness": {"workout", "gym", "run", "doctor", "diet"},
	"Finance":          {"invoice", "budget", "pay", "money", "tax"},
	"Travel":           {"flight", "trip", "hotel", "travel", "visit"},
	"Learning":         {"learn", "course", "read", "study", "book"},
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

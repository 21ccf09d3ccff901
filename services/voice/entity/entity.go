package entity

import "time"

type (
	// Idea is one discrete thought extracted from a recording. All ideas
	// from one analysis call share a parent recording id and carry a
	// sequence unique within that group.
	Idea struct {
		ID                    string    `json:"id,omitempty"`
		UserID                string    `json:"-"`
		Content               string    `json:"content"`
		OriginalTranscription string    `json:"original_transcription,omitempty"`
		IdeaType              string    `json:"idea_type"`
		Category              string    `json:"category,omitempty"`
		Sequence              int       `json:"sequence"`
		Tags                  []string  `json:"tags"`
		AIAutoTags            []string  `json:"ai_auto_tags"`
		ConfidenceLevel       float64   `json:"confidence_level"`
		PotentialMasterIdea   string    `json:"potential_master_idea,omitempty"`
		NeedsClarification    bool      `json:"needs_clarification"`
		ClarificationQuestion string    `json:"clarification_question,omitempty"`
		MasterIdeaID          *string   `json:"master_idea_id,omitempty"`
		ParentRecordingID     string    `json:"parent_recording_id,omitempty"`
		Embedding             []float64 `json:"-"`
		CreatedAt             time.Time `json:"created_at,omitempty"`
	}

	// SimilarIdea is a stored idea that matched the transcript embedding.
	SimilarIdea struct {
		ID         string  `json:"id"`
		Content    string  `json:"content"`
		IdeaType   string  `json:"idea_type"`
		Similarity float64 `json:"similarity"`
	}

	// AnalysisResult is the full payload returned by the voice-to-text
	// pipeline: transcript plus structured ideas, in one response.
	AnalysisResult struct {
		Text          string         `json:"text"`
		Ideas         []*Idea        `json:"ideas"`
		MultipleIdeas bool           `json:"multiple_ideas"`
		SimilarIdeas  []*SimilarIdea `json:"similar_ideas"`
	}

	Category struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		IsDefault bool   `json:"is_default"`
	}

	// Profile holds per-user settings, including the stored third-party
	// API credential resolved fresh on every pipeline invocation.
	Profile struct {
		UserID string `json:"user_id"`
		APIKey string `json:"-"`
	}
)

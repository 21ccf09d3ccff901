package consts

import "time"

const (
	// Captured audio is always plain webm; the codec parameter is never
	// sent, so both sides agree on one wire format.
	AudioMimeType = "audio/webm"
	AudioFileName = "audio.webm"

	MaxAudioSize = 25 * 1024 * 1024 // 25MB
	MinAudioSize = 1000

	WhisperModel   = "whisper-1"
	EmbeddingModel = "text-embedding-ada-002"
	AnalysisModel  = "gpt-4.1-2025-04-14"

	SimilarityThreshold  = 0.75
	SimilarityMatchCount = 5

	RecentIdeasWindow = 48 * time.Hour
	RecentIdeasLimit  = 20

	// Idea types
	IdeaTypeMain         = "main"
	IdeaTypeSubComponent = "sub-component"
	IdeaTypeFollowUp     = "follow-up"

	// Auto-tag marking an idea synthesized locally because the analysis
	// service failed or returned garbage.
	FallbackAutoTag    = "fallback-analysis"
	FallbackConfidence = 0.3
)

// DefaultCategoryNames is used when the categories table is unavailable.
var DefaultCategoryNames = []string{
	"Business", "Technology", "Creative", "Personal", "Learning",
	"Health & Fitness", "Travel", "Finance", "Relationships", "Other",
}

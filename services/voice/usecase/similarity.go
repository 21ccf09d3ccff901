package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/consts"
	"github.com/echonote/backend/services/voice/entity"
)

// findSimilarIdeas embeds the transcript and ranks stored ideas by cosine
// similarity. Strictly best effort: any failure logs and returns nothing so
// the pipeline carries on without similarity context.
func (u *usecase) findSimilarIdeas(ctx context.Context, userID, apiKey, transcript string) []*entity.SimilarIdea {
	log := logger.FromContext(ctx)

	embedding, err := u.ai.Embed(ctx, apiKey, transcript)
	if err != nil {
		log.Warn("embedding failed, skipping similarity search", "error", err)
		return []*entity.SimilarIdea{}
	}

	candidates, err := u.storage.ListIdeasWithEmbeddings(ctx, userID, consts.RecentIdeasLimit*5)
	if err != nil {
		log.Warn("failed to load embedded ideas, skipping similarity search", "error", err)
		return []*entity.SimilarIdea{}
	}

	similar := make([]*entity.SimilarIdea, 0, consts.SimilarityMatchCount)
	for _, candidate := range candidates {
		score := cosineSimilarity(embedding, candidate.Embedding)
		if score < consts.SimilarityThreshold {
			continue
		}
		similar = append(similar, &entity.SimilarIdea{
			ID:         candidate.ID,
			Content:    candidate.Content,
			IdeaType:   candidate.IdeaType,
			Similarity: score,
		})
	}

	sort.Slice(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})
	if len(similar) > consts.SimilarityMatchCount {
		similar = similar[:consts.SimilarityMatchCount]
	}

	return similar
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

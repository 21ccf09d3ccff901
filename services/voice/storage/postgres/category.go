package postgres

import (
	"context"
	"fmt"

	"github.com/echonote/backend/services/voice/entity"
	"github.com/echonote/backend/services/voice/storage/postgres/ent"
	"github.com/echonote/backend/services/voice/storage/postgres/ent/category"
)

func (s *store) GetDefaultCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := s.Category.Query().
		Where(category.IsDefault(true)).
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list default categories: %w", err)
	}

	categories := make([]*entity.Category, len(rows))
	for i, row := range rows {
		categories[i] = &entity.Category{
			ID:        row.ID.String(),
			Name:      row.Name,
			IsDefault: row.IsDefault,
		}
	}

	return categories, nil
}

// Package postgres implements the voice storage interface on an ent client.
// The generated client is produced by `go generate ./...` from the schemas
// in ./schema.
package postgres

import (
	"github.com/echonote/backend/services/voice/storage"
	"github.com/echonote/backend/services/voice/storage/postgres/ent"
)

type store struct {
	*ent.Client
}

func New(client *ent.Client) storage.Storage {
	return &store{
		Client: client,
	}
}

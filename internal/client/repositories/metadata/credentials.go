package metadata

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/dbx"
)

// Credentials is the persisted half of the session: the bearer token and
// the signed-in user id.
type Credentials struct {
	db *sql.DB
}

func NewCredentials(db *sql.DB) *Credentials {
	return &Credentials{db: db}
}

func (c *Credentials) repo() Repository {
	return NewSQLiteRepository(c.db)
}

// Token returns the stored bearer token or "" if none is stored.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	v, _, err := c.repo().Get(ctx, common.StorageKeyAuthToken)
	return v, err
}

// UserID returns the stored user id or "" if none is stored.
func (c *Credentials) UserID(ctx context.Context) (string, error) {
	v, _, err := c.repo().Get(ctx, common.StorageKeyUserID)
	return v, err
}

// Save stores token and user id in a single transaction.
func (c *Credentials) Save(ctx context.Context, token, userID string) error {
	return dbx.InTx(ctx, c.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyAuthToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUserID, userID)
	})
}

// RemoveToken deletes only the token, keeping the user id.
func (c *Credentials) RemoveToken(ctx context.Context) error {
	return c.repo().Delete(ctx, common.StorageKeyAuthToken)
}

// Clear wipes every persisted entry, not just the credentials.
func (c *Credentials) Clear(ctx context.Context) error {
	return c.repo().Clear(ctx)
}

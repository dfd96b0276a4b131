package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/verifytokens"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can
// use the same repositories inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	VerifyTokens(db dbx.DBTX) verifytokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
}

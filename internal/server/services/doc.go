// Package services contains the server-side business logic: vault sync,
// the share lifecycle for both share kinds, the share listings, expiry
// sweeping and account erasure. Services get repositories from a
// repomanager.RepositoryManager bound to handles from a dbx.Transactor.
package services

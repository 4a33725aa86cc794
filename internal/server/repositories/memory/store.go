// Package memory is an in-process implementation of every server
// repository, used by tests and by the "memory" store backend. One mutex
// guards all state, so each repository call is atomic.
package memory

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type Store struct {
	mu sync.Mutex

	vaults map[string]*models.Vault // by owner

	shares       map[string]*models.Share
	sharesByFrom map[string][]string
	sharesByTo   map[string][]string
	broadcast    []string // ids of Direct shares

	contacts       map[string]*models.ContactShare
	contactsByFrom map[string][]string
	contactsByTo   map[string][]string

	audit []*models.AuditEntry

	friends map[[2]string]bool
}

func NewStore() *Store {
	return &Store{
		vaults:         make(map[string]*models.Vault),
		shares:         make(map[string]*models.Share),
		sharesByFrom:   make(map[string][]string),
		sharesByTo:     make(map[string][]string),
		contacts:       make(map[string]*models.ContactShare),
		contactsByFrom: make(map[string][]string),
		contactsByTo:   make(map[string][]string),
		friends:        make(map[[2]string]bool),
	}
}

func (s *Store) Vaults() *VaultRepository               { return &VaultRepository{s} }
func (s *Store) Shares() *ShareRepository               { return &ShareRepository{s} }
func (s *Store) ContactShares() *ContactShareRepository { return &ContactShareRepository{s} }
func (s *Store) Audit() *AuditRepository                { return &AuditRepository{s} }
func (s *Store) Friendships() *Friendships              { return &Friendships{s} }

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}

func cloneTime[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

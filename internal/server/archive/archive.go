// Package archive keeps vault copies that a forced sync displaced, so a
// device that overwrote newer data by mistake can still get it back.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// ErrDisabled is returned when archiving is switched off.
var ErrDisabled = errors.New("vault archive disabled")

// Archive stores displaced vault versions and hands out download links.
type Archive interface {
	Store(ctx context.Context, v *models.Vault) (string, error)
	URL(ctx context.Context, ownerID string, version int64) (string, error)
}

// Key is the object key of an archived vault version.
func Key(ownerID string, version int64) string {
	return fmt.Sprintf("vaults/%s/%d", ownerID, version)
}

// snapshot is the archived object body.
type snapshot struct {
	VaultID    string    `json:"vault_id"`
	OwnerID    string    `json:"owner_id"`
	Version    int64     `json:"version"`
	Ciphertext []byte    `json:"ciphertext"`
	IV         []byte    `json:"iv"`
	AuthTag    []byte    `json:"auth_tag"`
	KDFSalt    []byte    `json:"kdf_salt"`
	ArchivedAt time.Time `json:"archived_at"`
}

func encode(v *models.Vault, at time.Time) ([]byte, error) {
	return json.Marshal(snapshot{
		VaultID:    v.ID,
		OwnerID:    v.OwnerID,
		Version:    v.Version,
		Ciphertext: v.Ciphertext,
		IV:         v.IV,
		AuthTag:    v.AuthTag,
		KDFSalt:    v.KDFSalt,
		ArchivedAt: at,
	})
}

// Disabled is the Archive used when archiving is off.
type Disabled struct{}

func (Disabled) Store(context.Context, *models.Vault) (string, error) { return "", ErrDisabled }

func (Disabled) URL(context.Context, string, int64) (string, error) { return "", ErrDisabled }

package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/vaultshare/internal/cryptox"
	"github.com/dmitrijs2005/vaultshare/internal/netx"
	pb "github.com/dmitrijs2005/vaultshare/internal/proto"
)

// PushVault seals plaintext under key and syncs it. The server never sees
// key or plaintext.
func (c *GRPCClient) PushVault(ctx context.Context, key, salt, plaintext []byte, clientVersion int64, force bool) (*pb.SyncVaultResponse, error) {
	sealed, err := cryptox.SealVault(key, salt, plaintext)
	if err != nil {
		return nil, err
	}
	return c.SyncVault(ctx, &pb.VaultBlob{
		Ciphertext: sealed.Ciphertext,
		Iv:         sealed.IV,
		AuthTag:    sealed.AuthTag,
		KdfSalt:    sealed.KDFSalt,
	}, clientVersion, force)
}

// PullVault fetches and opens the caller's vault.
func (c *GRPCClient) PullVault(ctx context.Context, key []byte) (plaintext []byte, version int64, err error) {
	v, err := c.GetVault(ctx)
	if err != nil {
		return nil, 0, err
	}
	plaintext, err = OpenBlob(key, v.GetBlob())
	if err != nil {
		return nil, 0, err
	}
	return plaintext, v.GetVersion(), nil
}

// OpenBlob decrypts a vault blob, e.g. the server snapshot of a conflict.
func OpenBlob(key []byte, b *pb.VaultBlob) ([]byte, error) {
	return cryptox.OpenVault(key, &cryptox.Sealed{
		Ciphertext: b.GetCiphertext(),
		IV:         b.GetIv(),
		AuthTag:    b.GetAuthTag(),
		KDFSalt:    b.GetKdfSalt(),
	})
}

// DownloadArchive fetches an archived vault version through its presigned
// URL. The body is the archive's JSON snapshot.
func (c *GRPCClient) DownloadArchive(ctx context.Context, httpClient *http.Client, version int64) ([]byte, error) {
	url, err := c.ArchiveURL(ctx, version)
	if err != nil {
		return nil, err
	}
	return netx.Download(ctx, httpClient, url)
}

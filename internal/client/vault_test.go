package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/cryptox"
	"github.com/dmitrijs2005/vaultshare/internal/server/archive"
)

// httpArchive serves a memory archive over HTTP, standing in for presigned
// S3 links.
type httpArchive struct {
	*archive.Memory
	base string
}

func (a *httpArchive) URL(ctx context.Context, owner string, version int64) (string, error) {
	if _, err := a.Memory.URL(ctx, owner, version); err != nil {
		return "", err
	}
	return a.base + "/" + archive.Key(owner, version), nil
}

func TestClient_SealedVaultRoundTrip(t *testing.T) {
	mem := archive.NewMemory()
	objects := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := mem.Object(strings.TrimPrefix(r.URL.Path, "/"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer objects.Close()

	ts := startServerWith(t, &httpArchive{Memory: mem, base: objects.URL})
	laptop, phone := ts.dial(t, "alice"), ts.dial(t, "alice")
	ctx := context.Background()

	salt, err := cryptox.NewSalt()
	require.NoError(t, err)
	key := cryptox.DeriveMasterKey([]byte("correct horse"), salt)

	out, err := laptop.PushVault(ctx, key, salt, []byte(`{"entries":["a"]}`), 0, false)
	require.NoError(t, err)
	require.Equal(t, int64(1), out.NewVersion)

	plain, version, err := phone.PullVault(ctx, cryptox.DeriveMasterKey([]byte("correct horse"), salt))
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, `{"entries":["a"]}`, string(plain))

	_, err = phone.PushVault(ctx, key, salt, []byte(`{"entries":["a","b"]}`), 1, false)
	require.NoError(t, err)

	// the laptop is behind: it gets the phone's copy to merge
	out, err = laptop.PushVault(ctx, key, salt, []byte(`{"entries":["a","c"]}`), 1, false)
	require.NoError(t, err)
	require.Equal(t, "conflict", out.Status)
	theirs, err := OpenBlob(key, out.ServerSnapshot.Blob)
	require.NoError(t, err)
	assert.Equal(t, `{"entries":["a","b"]}`, string(theirs))

	// forcing keeps the displaced version downloadable
	_, err = laptop.PushVault(ctx, key, salt, []byte(`{"entries":["a","c"]}`), 1, true)
	require.NoError(t, err)

	body, err := laptop.DownloadArchive(ctx, objects.Client(), 2)
	require.NoError(t, err)
	var snap struct {
		Version    int64  `json:"version"`
		Ciphertext []byte `json:"ciphertext"`
		IV         []byte `json:"iv"`
		AuthTag    []byte `json:"auth_tag"`
		KDFSalt    []byte `json:"kdf_salt"`
	}
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, int64(2), snap.Version)
	restored, err := cryptox.OpenVault(key, &cryptox.Sealed{Ciphertext: snap.Ciphertext, IV: snap.IV, AuthTag: snap.AuthTag, KDFSalt: snap.KDFSalt})
	require.NoError(t, err)
	assert.Equal(t, `{"entries":["a","b"]}`, string(restored))

	_, _, err = laptop.PullVault(ctx, cryptox.DeriveMasterKey([]byte("wrong"), salt))
	assert.ErrorIs(t, err, cryptox.ErrOpen)
}

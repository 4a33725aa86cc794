package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

var vault = &models.Vault{
	ID:        "v1",
	OwnerID:   "alice",
	Version:   7,
	VaultBlob: models.VaultBlob{Ciphertext: []byte("ct"), IV: []byte("iv"), AuthTag: []byte("tag"), KDFSalt: []byte("salt")},
}

func stubS3(t *testing.T) {
	t.Helper()
	origLoad, origNew, origPut, origHead, origPresign := loadDefaultAWSConfig, newS3ClientFromConfig, putObject, headObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject, headObject, presignGetObject = origLoad, origNew, origPut, origHead, origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
		assert.True(t, opts.UsePathStyle)
		return &s3.Client{}
	}
}

func newTestArchive(t *testing.T) *S3Archive {
	t.Helper()
	a, err := NewS3Archive(context.Background(), S3Config{
		User: "minioadmin", Password: "minioadmin", Bucket: "vaultshare",
		Region: "us-east-1", Endpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return a
}

func TestKey(t *testing.T) {
	assert.Equal(t, "vaults/alice/7", Key("alice", 7))
}

func TestNewS3Archive_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Archive(context.Background(), S3Config{})
	assert.ErrorContains(t, err, "no creds")
}

func TestS3Archive_Store(t *testing.T) {
	stubS3(t)
	a := newTestArchive(t)
	assert.Equal(t, 15*time.Minute, a.cfg.URLExpiry)

	var got snapshot
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		assert.Equal(t, "vaultshare", *in.Bucket)
		assert.Equal(t, "vaults/alice/7", *in.Key)
		body, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		return nil
	}

	key, err := a.Store(context.Background(), vault)
	require.NoError(t, err)
	assert.Equal(t, "vaults/alice/7", key)
	assert.Equal(t, int64(7), got.Version)
	assert.Equal(t, []byte("ct"), got.Ciphertext)

	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error { return errors.New("denied") }
	_, err = a.Store(context.Background(), vault)
	assert.ErrorContains(t, err, "denied")
}

func TestS3Archive_URL(t *testing.T) {
	stubS3(t)
	a := newTestArchive(t)

	headObject = func(*s3.Client, context.Context, *s3.HeadObjectInput) error { return nil }
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, 15*time.Minute, po.Expires)
		return &v4.PresignedHTTPRequest{URL: "https://s3/" + *in.Key, Method: http.MethodGet}, nil
	}

	url, err := a.URL(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/vaults/alice/7", url)

	headObject = func(*s3.Client, context.Context, *s3.HeadObjectInput) error { return &types.NotFound{} }
	_, err = a.URL(context.Background(), "alice", 8)
	assert.ErrorIs(t, err, common.ErrNotFound)

	headObject = func(*s3.Client, context.Context, *s3.HeadObjectInput) error { return nil }
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign failed")
	}
	_, err = a.URL(context.Background(), "alice", 7)
	assert.ErrorContains(t, err, "sign failed")
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, err := m.URL(context.Background(), "alice", 7)
	assert.ErrorIs(t, err, common.ErrNotFound)

	key, err := m.Store(context.Background(), vault)
	require.NoError(t, err)

	body, ok := m.Object(key)
	require.True(t, ok)
	assert.Contains(t, string(body), `"version":7`)

	url, err := m.URL(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Equal(t, "memory://vaults/alice/7", url)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Store(context.Background(), vault)
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = Disabled{}.URL(context.Background(), "alice", 1)
	assert.ErrorIs(t, err, ErrDisabled)
}

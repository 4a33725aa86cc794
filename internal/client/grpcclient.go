// Package client is a Go client for the vaultshare gRPC service.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	pb "github.com/dmitrijs2005/vaultshare/internal/proto"
)

type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.VaultShareClient
	accessToken string
}

// New dials target with the access token attached to every call. Extra
// options come after the defaults, so tests can swap the dialer or the
// credentials.
func New(target, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{accessToken: accessToken}
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.streamAccessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewVaultShareClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error { return c.conn.Close() }

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if c.accessToken != "" {
		ctx = withAccessToken(ctx, c.accessToken)
	}
	return mapError(invoker(ctx, method, req, reply, cc, opts...))
}

func (c *GRPCClient) streamAccessTokenInterceptor(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if c.accessToken != "" {
		ctx = withAccessToken(ctx, c.accessToken)
	}
	stream, err := streamer(ctx, desc, cc, method, opts...)
	if err != nil {
		return nil, mapError(err)
	}
	return stream, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.Empty{})
	return err
}

func (c *GRPCClient) GetVault(ctx context.Context) (*pb.Vault, error) {
	return c.client.GetVault(ctx, &pb.Empty{})
}

func (c *GRPCClient) InitializeVault(ctx context.Context, blob *pb.VaultBlob) (*pb.Vault, error) {
	return c.client.InitializeVault(ctx, &pb.InitializeVaultRequest{Blob: blob})
}

func (c *GRPCClient) SyncVault(ctx context.Context, blob *pb.VaultBlob, clientVersion int64, force bool) (*pb.SyncVaultResponse, error) {
	return c.client.SyncVault(ctx, &pb.SyncVaultRequest{Blob: blob, ClientVersion: clientVersion, Force: force})
}

func (c *GRPCClient) DeleteVault(ctx context.Context) error {
	_, err := c.client.DeleteVault(ctx, &pb.Empty{})
	return err
}

func (c *GRPCClient) ArchiveURL(ctx context.Context, version int64) (string, error) {
	out, err := c.client.ArchiveURL(ctx, &pb.ArchiveURLRequest{Version: version})
	if err != nil {
		return "", err
	}
	return out.GetUrl(), nil
}

// CreateShare sends envelope, a serialized share envelope, as a new share.
func (c *GRPCClient) CreateShare(ctx context.Context, mode, recipient, passwordRef string, envelope []byte, ttl time.Duration) (*pb.CreateShareResponse, error) {
	return c.client.CreateShare(ctx, &pb.CreateShareRequest{
		Mode:        mode,
		RecipientId: recipient,
		PasswordRef: passwordRef,
		Envelope:    envelope,
		TtlSeconds:  int64(ttl / time.Second),
	})
}

func (c *GRPCClient) FetchShare(ctx context.Context, id string) (*pb.Share, error) {
	return c.client.FetchShare(ctx, &pb.ShareIDRequest{Id: id})
}

func (c *GRPCClient) AcceptShare(ctx context.Context, id string) (*pb.Share, error) {
	return c.client.AcceptShare(ctx, &pb.ShareIDRequest{Id: id})
}

func (c *GRPCClient) RevokeShare(ctx context.Context, id string) error {
	_, err := c.client.RevokeShare(ctx, &pb.ShareIDRequest{Id: id})
	return err
}

func (c *GRPCClient) ShareToken(ctx context.Context, id string) (string, error) {
	out, err := c.client.ShareToken(ctx, &pb.ShareIDRequest{Id: id})
	if err != nil {
		return "", err
	}
	return out.GetToken(), nil
}

func (c *GRPCClient) ShareTokenQR(ctx context.Context, id string, size int) ([]byte, error) {
	out, err := c.client.ShareTokenQR(ctx, &pb.TokenQRRequest{Id: id, Size: int32(size)})
	if err != nil {
		return nil, err
	}
	return out.GetPng(), nil
}

func (c *GRPCClient) RedeemShare(ctx context.Context, token string) (*pb.Share, error) {
	return c.client.RedeemShare(ctx, &pb.RedeemRequest{Token: token})
}

func (c *GRPCClient) ShareHistory(ctx context.Context, id string) ([]*pb.AuditEntry, error) {
	out, err := c.client.ShareHistory(ctx, &pb.ShareIDRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return out.GetEntries(), nil
}

func (c *GRPCClient) CreateContactShare(ctx context.Context, recipient, passwordRef string, envelope []byte, ttl time.Duration) (*pb.Share, error) {
	return c.client.CreateContactShare(ctx, &pb.CreateContactShareRequest{
		RecipientId: recipient,
		PasswordRef: passwordRef,
		Envelope:    envelope,
		TtlSeconds:  int64(ttl / time.Second),
	})
}

func (c *GRPCClient) FetchContactShare(ctx context.Context, id string) (*pb.Share, error) {
	return c.client.FetchContactShare(ctx, &pb.ShareIDRequest{Id: id})
}

func (c *GRPCClient) AcceptContactShare(ctx context.Context, id string) (*pb.Share, error) {
	return c.client.AcceptContactShare(ctx, &pb.ShareIDRequest{Id: id})
}

func (c *GRPCClient) RevokeContactShare(ctx context.Context, id string) error {
	_, err := c.client.RevokeContactShare(ctx, &pb.ShareIDRequest{Id: id})
	return err
}

func (c *GRPCClient) ContactShareHistory(ctx context.Context, id string) ([]*pb.AuditEntry, error) {
	out, err := c.client.ContactShareHistory(ctx, &pb.ShareIDRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return out.GetEntries(), nil
}

func (c *GRPCClient) ListSent(ctx context.Context) ([]*pb.Share, error) {
	out, err := c.client.ListSent(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return out.GetShares(), nil
}

func (c *GRPCClient) ListReceived(ctx context.Context) ([]*pb.Share, error) {
	out, err := c.client.ListReceived(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return out.GetShares(), nil
}

func (c *GRPCClient) EraseAccount(ctx context.Context) error {
	_, err := c.client.EraseAccount(ctx, &pb.Empty{})
	return err
}

// EventStream is an open Subscribe call.
type EventStream struct {
	stream grpc.ServerStreamingClient[pb.Event]
}

// Subscribe opens the caller's event stream. Cancel ctx to close it.
func (c *GRPCClient) Subscribe(ctx context.Context) (*EventStream, error) {
	stream, err := c.client.Subscribe(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return &EventStream{stream: stream}, nil
}

// Recv blocks for the next event. It returns io.EOF when the server ends
// the stream cleanly.
func (s *EventStream) Recv() (*pb.Event, error) {
	ev, err := s.stream.Recv()
	if err != nil {
		return nil, mapError(err)
	}
	return ev, nil
}

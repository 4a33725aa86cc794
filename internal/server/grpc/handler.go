package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/vaultshare/internal/proto"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/services"
)

// Handlers return service errors as they are; statusInterceptor maps them
// onto gRPC codes.

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// vault

func (s *GRPCServer) GetVault(ctx context.Context, _ *pb.Empty) (*pb.Vault, error) {
	v, err := s.svc.Vaults.Get(ctx, identity(ctx))
	if err != nil {
		return nil, err
	}
	return vaultToPB(v), nil
}

func (s *GRPCServer) InitializeVault(ctx context.Context, req *pb.InitializeVaultRequest) (*pb.Vault, error) {
	v, err := s.svc.Vaults.Initialize(ctx, identity(ctx), blobFromPB(req.GetBlob()))
	if err != nil {
		return nil, err
	}
	return vaultToPB(v), nil
}

func (s *GRPCServer) SyncVault(ctx context.Context, req *pb.SyncVaultRequest) (*pb.SyncVaultResponse, error) {
	out, err := s.svc.Vaults.Sync(ctx, identity(ctx), blobFromPB(req.GetBlob()), req.GetClientVersion(), req.GetForce())
	if err != nil {
		return nil, err
	}
	return syncToPB(out), nil
}

func (s *GRPCServer) DeleteVault(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.svc.Vaults.Delete(ctx, identity(ctx)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ArchiveURL(ctx context.Context, req *pb.ArchiveURLRequest) (*pb.URLResponse, error) {
	url, err := s.svc.Vaults.ArchiveURL(ctx, identity(ctx), req.GetVersion())
	if err != nil {
		return nil, err
	}
	return &pb.URLResponse{Url: url}, nil
}

// shares

func (s *GRPCServer) CreateShare(ctx context.Context, req *pb.CreateShareRequest) (*pb.CreateShareResponse, error) {
	out, err := s.svc.Shares.Create(ctx, identity(ctx), services.CreateShareRequest{
		Mode:        models.ModeKind(req.GetMode()),
		RecipientID: req.GetRecipientId(),
		PasswordRef: req.GetPasswordRef(),
		Payload:     req.GetEnvelope(),
		TTL:         ttl(req.GetTtlSeconds()),
	})
	if err != nil {
		return nil, err
	}
	return &pb.CreateShareResponse{Share: shareToPB(out.Share, false), Token: out.Token}, nil
}

func (s *GRPCServer) FetchShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Share, error) {
	sh, err := s.svc.Shares.Fetch(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return shareToPB(sh, true), nil
}

func (s *GRPCServer) AcceptShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Share, error) {
	sh, err := s.svc.Shares.Accept(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return shareToPB(sh, true), nil
}

func (s *GRPCServer) RevokeShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Empty, error) {
	if err := s.svc.Shares.Revoke(ctx, req.GetId(), identity(ctx)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ShareToken(ctx context.Context, req *pb.ShareIDRequest) (*pb.TokenResponse, error) {
	tok, err := s.svc.Shares.Token(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return &pb.TokenResponse{Token: tok}, nil
}

func (s *GRPCServer) ShareTokenQR(ctx context.Context, req *pb.TokenQRRequest) (*pb.TokenQRResponse, error) {
	png, err := s.svc.Shares.TokenQR(ctx, req.GetId(), identity(ctx), int(req.GetSize()))
	if err != nil {
		return nil, err
	}
	return &pb.TokenQRResponse{Png: png}, nil
}

func (s *GRPCServer) RedeemShare(ctx context.Context, req *pb.RedeemRequest) (*pb.Share, error) {
	sh, err := s.svc.Shares.Redeem(ctx, req.GetToken(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return shareToPB(sh, true), nil
}

func (s *GRPCServer) ShareHistory(ctx context.Context, req *pb.ShareIDRequest) (*pb.HistoryResponse, error) {
	entries, err := s.svc.Shares.History(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return historyToPB(entries), nil
}

// contact shares

func (s *GRPCServer) CreateContactShare(ctx context.Context, req *pb.CreateContactShareRequest) (*pb.Share, error) {
	cs, err := s.svc.Contacts.Create(ctx, identity(ctx), services.CreateContactShareRequest{
		RecipientID: req.GetRecipientId(),
		PasswordRef: req.GetPasswordRef(),
		Payload:     req.GetEnvelope(),
		TTL:         ttl(req.GetTtlSeconds()),
	})
	if err != nil {
		return nil, err
	}
	return contactToPB(cs, false), nil
}

func (s *GRPCServer) FetchContactShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Share, error) {
	cs, err := s.svc.Contacts.Fetch(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return contactToPB(cs, true), nil
}

func (s *GRPCServer) AcceptContactShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Share, error) {
	cs, err := s.svc.Contacts.Accept(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return contactToPB(cs, true), nil
}

func (s *GRPCServer) RevokeContactShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.Empty, error) {
	if err := s.svc.Contacts.Revoke(ctx, req.GetId(), identity(ctx)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ContactShareHistory(ctx context.Context, req *pb.ShareIDRequest) (*pb.HistoryResponse, error) {
	entries, err := s.svc.Contacts.History(ctx, req.GetId(), identity(ctx))
	if err != nil {
		return nil, err
	}
	return historyToPB(entries), nil
}

// directory

func (s *GRPCServer) ListSent(ctx context.Context, _ *pb.Empty) (*pb.ListSharesResponse, error) {
	list, err := s.svc.Directory.ListSent(ctx, identity(ctx))
	if err != nil {
		return nil, err
	}
	return summariesToPB(list), nil
}

func (s *GRPCServer) ListReceived(ctx context.Context, _ *pb.Empty) (*pb.ListSharesResponse, error) {
	list, err := s.svc.Directory.ListReceived(ctx, identity(ctx))
	if err != nil {
		return nil, err
	}
	return summariesToPB(list), nil
}

func (s *GRPCServer) EraseAccount(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.svc.Accounts.Erase(ctx, identity(ctx)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

// Subscribe streams the caller's share events until the client goes away
// or the server stops.
func (s *GRPCServer) Subscribe(_ *pb.Empty, stream grpc.ServerStreamingServer[pb.Event]) error {
	if s.svc.Hub == nil {
		return status.Error(codes.Unimplemented, "notifications are disabled")
	}
	ctx := stream.Context()

	sub := s.svc.Hub.Subscribe(identity(ctx))
	defer s.svc.Hub.Unsubscribe(sub)
	s.logger.Debug(ctx, "subscriber connected", "identity", sub.Identity())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopping:
			return status.Error(codes.Unavailable, "server is shutting down")
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := stream.Send(eventToPB(ev)); err != nil {
				return err
			}
		}
	}
}

package grpc

import (
	"context"
	"net"
	"sync"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/vaultshare/internal/logging"
	pb "github.com/dmitrijs2005/vaultshare/internal/proto"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/services"
)

// Services bundles what the transport dispatches to.
type Services struct {
	Vaults    *services.VaultService
	Shares    *services.ShareService
	Contacts  *services.ContactShareService
	Directory *services.ShareDirectory
	Accounts  *services.AccountService
	Hub       *notify.Hub
}

type GRPCServer struct {
	pb.UnimplementedVaultShareServer

	address   string
	svc       Services
	logger    logging.Logger
	jwtSecret []byte

	stopping chan struct{} // closed on shutdown; ends Subscribe streams
	stopOnce sync.Once
}

func NewGRPCServer(address string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		svc:       svc,
		logger:    l.With("module", "grpc_server"),
		jwtSecret: []byte(secretKey),
		stopping:  make(chan struct{}),
	}
}

// NewServer returns a grpc.Server with the interceptors installed and the
// service registered, ready to Serve on any listener.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor, s.statusInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	}, opts...)
	srv := grpc.NewServer(opts...)
	pb.RegisterVaultShareServer(srv, s)
	return srv
}

// Stop ends open Subscribe streams. GracefulStop would otherwise wait for
// them forever.
func (s *GRPCServer) Stop() {
	s.stopOnce.Do(func() { close(s.stopping) })
}

// Run serves on the configured address until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.Stop()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}

// Package grpc exposes the Gatekeeper services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/SteveJRobertson/gatekeeper/internal/logging"
	pb "github.com/SteveJRobertson/gatekeeper/internal/proto"
	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
	"github.com/SteveJRobertson/gatekeeper/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte, isAdmin bool) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type accessSvc interface {
	VerifyAccess(ctx context.Context, username string) (*services.VerifyResult, error)
}

type GRPCServer struct {
	pb.UnimplementedGatekeeperServiceServer
	address   string
	users     userSvc
	access    accessSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, as *services.AccessService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		access:    as,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterGatekeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

package grpc

import (
	"context"
	"testing"

	"github.com/SteveJRobertson/gatekeeper/internal/common"
	"github.com/SteveJRobertson/gatekeeper/internal/logging"
	pb "github.com/SteveJRobertson/gatekeeper/internal/proto"
	"github.com/SteveJRobertson/gatekeeper/internal/server/access"
	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
	"github.com/SteveJRobertson/gatekeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	refreshResp *services.TokenPair
	refreshErr  error

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error
}

func (f *fakeUser) Register(ctx context.Context, username string, salt, verifier []byte, isAdmin bool) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}
func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

type fakeAccess struct {
	resp *services.VerifyResult
	err  error

	lastUsername string
}

func (f *fakeAccess) VerifyAccess(ctx context.Context, username string) (*services.VerifyResult, error) {
	f.lastUsername = username
	return f.resp, f.err
}

// ---- helpers ----

func newServer(u userSvc, a accessSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		access:    a,
		logger:    logging.NopLogger{},
		jwtSecret: []byte("k"),
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeAccess{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.User{ID: "42", UserName: "batman"}}
	s := newServer(u, &fakeAccess{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		Username: "batman", Salt: []byte("s"), Verifier: []byte("v"), Admin: true,
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetId() != "42" {
		t.Fatalf("unexpected id: %q", resp.GetId())
	}
}

func TestRegister_Internal(t *testing.T) {
	u := &fakeUser{regErr: common.ErrorInternal}
	s := newServer(u, &fakeAccess{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

func TestGetSalt_OK(t *testing.T) {
	u := &fakeUser{saltResp: []byte("SALT")}
	s := newServer(u, &fakeAccess{})
	resp, err := s.GetSalt(context.Background(), &pb.GetSaltRequest{Username: "batman"})
	if err != nil {
		t.Fatalf("GetSalt error: %v", err)
	}
	if string(resp.GetSalt()) != "SALT" {
		t.Fatalf("unexpected salt: %q", resp.GetSalt())
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeAccess{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "batman", VerifierCandidate: []byte("v")})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	u := &fakeUser{loginErr: common.ErrorUnauthorized}
	s := newServer(u, &fakeAccess{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "joker"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestRefreshToken_OK(t *testing.T) {
	u := &fakeUser{refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeAccess{})
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	u := &fakeUser{refreshErr: common.ErrRefreshTokenExpired}
	s := newServer(u, &fakeAccess{})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrRefreshTokenExpired.Error() {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestVerify_Granted(t *testing.T) {
	a := &fakeAccess{resp: &services.VerifyResult{Granted: true}}
	s := newServer(&fakeUser{}, a)
	resp, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "batman"})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !resp.GetGranted() || resp.GetMessage() != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if a.lastUsername != "batman" {
		t.Fatalf("service called with %q", a.lastUsername)
	}
}

func TestVerify_DeniedWithMessage(t *testing.T) {
	a := &fakeAccess{resp: &services.VerifyResult{Granted: false, Message: access.MsgNoAdminRights}}
	s := newServer(&fakeUser{}, a)
	resp, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "robin"})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if resp.GetGranted() || resp.GetMessage() != access.MsgNoAdminRights {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVerify_Internal(t *testing.T) {
	a := &fakeAccess{err: common.ErrorInternal}
	s := newServer(&fakeUser{}, a)
	_, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "batman"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

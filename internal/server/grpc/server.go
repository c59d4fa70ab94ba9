// Package grpc exposes the Freshify services over gRPC using the generated
// protobuf service in internal/proto.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/logging"
	pb "github.com/dmitrijs2005/freshify/internal/proto"
	"github.com/dmitrijs2005/freshify/internal/rpc"
	"github.com/dmitrijs2005/freshify/internal/server/models"
	"github.com/dmitrijs2005/freshify/internal/server/services"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type inventorySvc interface {
	SaveItems(ctx context.Context, owner, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error)
	ListItems(ctx context.Context, owner string) ([]*services.ListedItem, error)
	UpdateQuantity(ctx context.Context, owner string, id int64, quantity int) error
	UpdateExpiry(ctx context.Context, owner string, id int64, days int) error
	CompleteItem(ctx context.Context, owner string, id int64) (*services.CompletionResult, error)
	WasteItem(ctx context.Context, owner string, id int64) (*inventory.ImpactCounters, error)
	GetImpact(ctx context.Context, owner string) (*inventory.ImpactCounters, error)
}

type scanSvc interface {
	AnalyzeImage(ctx context.Context, owner, image string, purchased []inventory.PurchasedItem) (*services.ScanResult, error)
	AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error)
}

type recipeSvc interface {
	SuggestRecipe(ctx context.Context, owner, focus string) (*inventory.Recipe, error)
}

type GRPCServer struct {
	pb.UnimplementedFreshifyServiceServer
	address   string
	users     userSvc
	inventory inventorySvc
	scans     scanSvc
	recipes   recipeSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, is inventorySvc, ss scanSvc, rs recipeSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		inventory: is,
		scans:     ss,
		recipes:   rs,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the service and health checks
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterFreshifyServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "rpc failed", "method", info.FullMethod, "took", time.Since(start), "error", err)
	} else {
		s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "took", time.Since(start))
	}
	return resp, err
}

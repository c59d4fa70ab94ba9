package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	pb "github.com/dmitrijs2005/freshify/internal/proto"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

// Status message prefixes the server uses for remote service failures.
var analysisFailurePrefixes = []string{"could not analyze image", "could not suggest recipe"}

// stub is the subset of pb.FreshifyServiceClient used here.
type stub interface {
	Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error)
	Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error)
	Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error)
	RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error)
	AnalyzeReceipt(ctx context.Context, in *pb.AnalyzeReceiptRequest, opts ...grpc.CallOption) (*pb.AnalyzeReceiptResponse, error)
	AnalyzeImage(ctx context.Context, in *pb.AnalyzeImageRequest, opts ...grpc.CallOption) (*pb.AnalyzeImageResponse, error)
	SaveItems(ctx context.Context, in *pb.SaveItemsRequest, opts ...grpc.CallOption) (*pb.SaveItemsResponse, error)
	ListItems(ctx context.Context, in *pb.ListItemsRequest, opts ...grpc.CallOption) (*pb.ListItemsResponse, error)
	UpdateQuantity(ctx context.Context, in *pb.UpdateQuantityRequest, opts ...grpc.CallOption) (*pb.UpdateQuantityResponse, error)
	UpdateExpiry(ctx context.Context, in *pb.UpdateExpiryRequest, opts ...grpc.CallOption) (*pb.UpdateExpiryResponse, error)
	CompleteItem(ctx context.Context, in *pb.CompleteItemRequest, opts ...grpc.CallOption) (*pb.CompleteItemResponse, error)
	WasteItem(ctx context.Context, in *pb.WasteItemRequest, opts ...grpc.CallOption) (*pb.WasteItemResponse, error)
	GetImpact(ctx context.Context, in *pb.GetImpactRequest, opts ...grpc.CallOption) (*pb.GetImpactResponse, error)
	SuggestRecipe(ctx context.Context, in *pb.SuggestRecipeRequest, opts ...grpc.CallOption) (*pb.SuggestRecipeResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      stub

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(refresh)
	}
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())

	return invoker(withAccessToken(ctx, resp.GetAccessToken()), method, req, reply, cc, opts...)
}

func NewFreshifyClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFreshifyServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) error {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func (s *GRPCClient) RefreshToken() string {
	_, refresh := s.tokens()
	return refresh
}

func (s *GRPCClient) OnTokensRefreshed(fn func(refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) ForgetTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = "", ""
}

func (s *GRPCClient) AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error) {
	resp, err := s.client.AnalyzeReceipt(ctx, &pb.AnalyzeReceiptRequest{Image: image})
	if err != nil {
		return nil, s.mapError(err)
	}
	return decoded(rpc.PurchasedFromProto("items", resp.GetItems()))
}

func (s *GRPCClient) AnalyzeImage(ctx context.Context, image string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error) {
	resp, err := s.client.AnalyzeImage(ctx, &pb.AnalyzeImageRequest{Image: image, Purchased: rpc.PurchasedToProto(purchased)})
	if err != nil {
		return nil, s.mapError(err)
	}
	items, err := decoded(rpc.ConsolidatedFromProto("items", resp.GetItems()))
	if err != nil {
		return nil, err
	}
	return &rpc.AnalyzeImageResponse{ImageRef: resp.GetImageRef(), Items: items}, nil
}

func (s *GRPCClient) SaveItems(ctx context.Context, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error) {
	resp, err := s.client.SaveItems(ctx, &pb.SaveItemsRequest{ImageRef: imageRef, Items: rpc.ConsolidatedToProto(items)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetIds(), nil
}

func (s *GRPCClient) ListItems(ctx context.Context) ([]rpc.Item, error) {
	resp, err := s.client.ListItems(ctx, &pb.ListItemsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	items := make([]rpc.Item, 0, len(resp.GetItems()))
	for _, in := range resp.GetItems() {
		it, err := decoded(rpc.ItemFromProto(in))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *GRPCClient) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	_, err := s.client.UpdateQuantity(ctx, &pb.UpdateQuantityRequest{Id: id, Quantity: int32(quantity)})
	return s.mapError(err)
}

func (s *GRPCClient) UpdateExpiry(ctx context.Context, id int64, days int) error {
	_, err := s.client.UpdateExpiry(ctx, &pb.UpdateExpiryRequest{Id: id, Days: int32(days)})
	return s.mapError(err)
}

func (s *GRPCClient) CompleteItem(ctx context.Context, id int64) (*rpc.CompleteItemResponse, error) {
	resp, err := s.client.CompleteItem(ctx, &pb.CompleteItemRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	impact, err := decoded(rpc.ImpactFromProto(resp.GetImpact()))
	if err != nil {
		return nil, err
	}
	return &rpc.CompleteItemResponse{Credited: resp.GetCredited(), Impact: impact}, nil
}

func (s *GRPCClient) WasteItem(ctx context.Context, id int64) (*rpc.WasteItemResponse, error) {
	resp, err := s.client.WasteItem(ctx, &pb.WasteItemRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	impact, err := decoded(rpc.ImpactFromProto(resp.GetImpact()))
	if err != nil {
		return nil, err
	}
	return &rpc.WasteItemResponse{Impact: impact}, nil
}

func (s *GRPCClient) GetImpact(ctx context.Context) (*rpc.Impact, error) {
	resp, err := s.client.GetImpact(ctx, &pb.GetImpactRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	impact, err := decoded(rpc.ImpactFromProto(resp.GetImpact()))
	if err != nil {
		return nil, err
	}
	return &impact, nil
}

func (s *GRPCClient) SuggestRecipe(ctx context.Context, focus string) (*inventory.Recipe, error) {
	resp, err := s.client.SuggestRecipe(ctx, &pb.SuggestRecipeRequest{Focus: focus})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.RecipeFromProto(resp.GetRecipe()), nil
}

// decoded wraps a failure to read a server reply.
func decoded[T any](v T, err error) (T, error) {
	if err != nil {
		return v, fmt.Errorf("%w: malformed server reply: %v", ErrUnavailable, err)
	}
	return v, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable:
		for _, p := range analysisFailurePrefixes {
			if strings.HasPrefix(st.Message(), p) {
				return fmt.Errorf("%w: %s", ErrAnalysisFailed, st.Message())
			}
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

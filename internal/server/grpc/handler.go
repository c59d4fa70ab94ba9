package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/freshify/internal/proto"
	"github.com/dmitrijs2005/freshify/internal/rpc"
	"github.com/dmitrijs2005/freshify/internal/server/services"
)

func toItem(li *services.ListedItem) *pb.Item {
	return &pb.Item{
		Id:           li.ID,
		CreatedAt:    timestamppb.New(li.CreatedAt),
		Name:         li.Name,
		Quantity:     int32(li.Quantity),
		Price:        li.Price.String(),
		Expiry:       int32(li.Expiry),
		ImageUrl:     li.ImageURL,
		Band:         li.Rating.Band.String(),
		Position:     li.Rating.Position,
		ExpiringSoon: li.ExpiringSoon,
	}
}

func (s *GRPCServer) Ping(ctx context.Context, in *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	req, err := rpc.RegisterFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	req, err := rpc.LoginFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	req, err := rpc.RefreshTokenFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) AnalyzeReceipt(ctx context.Context, in *pb.AnalyzeReceiptRequest) (*pb.AnalyzeReceiptResponse, error) {
	req, err := rpc.AnalyzeReceiptFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgAnalysisFailed)
	}

	items, err := s.scans.AnalyzeReceipt(ctx, req.Image)
	if err != nil {
		return nil, toStatus(err, msgAnalysisFailed)
	}
	return &pb.AnalyzeReceiptResponse{Items: rpc.PurchasedToProto(items)}, nil
}

func (s *GRPCServer) AnalyzeImage(ctx context.Context, in *pb.AnalyzeImageRequest) (*pb.AnalyzeImageResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.AnalyzeImageFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgAnalysisFailed)
	}

	res, err := s.scans.AnalyzeImage(ctx, owner, req.Image, req.Purchased)
	if err != nil {
		return nil, toStatus(err, msgAnalysisFailed)
	}
	return &pb.AnalyzeImageResponse{ImageRef: res.ImageRef, Items: rpc.ConsolidatedToProto(res.Items)}, nil
}

func (s *GRPCServer) SaveItems(ctx context.Context, in *pb.SaveItemsRequest) (*pb.SaveItemsResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.SaveItemsFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}

	ids, err := s.inventory.SaveItems(ctx, owner, req.ImageRef, req.Items)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}
	return &pb.SaveItemsResponse{Ids: ids}, nil
}

func (s *GRPCServer) ListItems(ctx context.Context, in *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	listed, err := s.inventory.ListItems(ctx, owner)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}

	items := make([]*pb.Item, 0, len(listed))
	for _, li := range listed {
		items = append(items, toItem(li))
	}
	return &pb.ListItemsResponse{Items: items}, nil
}

func (s *GRPCServer) UpdateQuantity(ctx context.Context, in *pb.UpdateQuantityRequest) (*pb.UpdateQuantityResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.UpdateQuantityFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}

	if err := s.inventory.UpdateQuantity(ctx, owner, req.ID, req.Quantity); err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}
	return &pb.UpdateQuantityResponse{}, nil
}

func (s *GRPCServer) UpdateExpiry(ctx context.Context, in *pb.UpdateExpiryRequest) (*pb.UpdateExpiryResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.UpdateExpiryFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}

	if err := s.inventory.UpdateExpiry(ctx, owner, req.ID, req.Days); err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}
	return &pb.UpdateExpiryResponse{}, nil
}

func (s *GRPCServer) CompleteItem(ctx context.Context, in *pb.CompleteItemRequest) (*pb.CompleteItemResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.CompleteItemFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}

	res, err := s.inventory.CompleteItem(ctx, owner, req.ID)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}
	return &pb.CompleteItemResponse{Credited: res.Credited, Impact: rpc.ImpactToProto(res.Impact)}, nil
}

func (s *GRPCServer) WasteItem(ctx context.Context, in *pb.WasteItemRequest) (*pb.WasteItemResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.WasteItemFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}

	impact, err := s.inventory.WasteItem(ctx, owner, req.ID)
	if err != nil {
		return nil, toStatus(err, msgSaveFailed)
	}
	return &pb.WasteItemResponse{Impact: rpc.ImpactToProto(impact)}, nil
}

func (s *GRPCServer) GetImpact(ctx context.Context, in *pb.GetImpactRequest) (*pb.GetImpactResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.inventory.GetImpact(ctx, owner)
	if err != nil {
		return nil, toStatus(err, msgInternal)
	}
	return &pb.GetImpactResponse{Impact: rpc.ImpactToProto(c)}, nil
}

func (s *GRPCServer) SuggestRecipe(ctx context.Context, in *pb.SuggestRecipeRequest) (*pb.SuggestRecipeResponse, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req, err := rpc.SuggestRecipeFromProto(in)
	if err != nil {
		return nil, toStatus(err, msgRecipeFailed)
	}

	recipe, err := s.recipes.SuggestRecipe(ctx, owner, req.Focus)
	if err != nil {
		return nil, toStatus(err, msgRecipeFailed)
	}
	return &pb.SuggestRecipeResponse{Recipe: rpc.RecipeToProto(recipe)}, nil
}

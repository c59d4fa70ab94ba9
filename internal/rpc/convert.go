package rpc

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	pb "github.com/dmitrijs2005/freshify/internal/proto"
)

// parseDecimal reads a wire price. The empty string is proto3's zero value.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewValidationError(field, "is not a decimal")
	}
	return d, nil
}

func validated[T any](req *T) (*T, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func RegisterFromProto(in *pb.RegisterRequest) (*RegisterRequest, error) {
	return validated(&RegisterRequest{Username: in.GetUsername(), Password: in.GetPassword()})
}

func LoginFromProto(in *pb.LoginRequest) (*LoginRequest, error) {
	return validated(&LoginRequest{Username: in.GetUsername(), Password: in.GetPassword()})
}

func RefreshTokenFromProto(in *pb.RefreshTokenRequest) (*RefreshTokenRequest, error) {
	return validated(&RefreshTokenRequest{RefreshToken: in.GetRefreshToken()})
}

func AnalyzeReceiptFromProto(in *pb.AnalyzeReceiptRequest) (*AnalyzeReceiptRequest, error) {
	return validated(&AnalyzeReceiptRequest{Image: in.GetImage()})
}

func AnalyzeImageFromProto(in *pb.AnalyzeImageRequest) (*AnalyzeImageRequest, error) {
	purchased, err := PurchasedFromProto("purchased", in.GetPurchased())
	if err != nil {
		return nil, err
	}
	return validated(&AnalyzeImageRequest{Image: in.GetImage(), Purchased: purchased})
}

func SaveItemsFromProto(in *pb.SaveItemsRequest) (*SaveItemsRequest, error) {
	items, err := ConsolidatedFromProto("items", in.GetItems())
	if err != nil {
		return nil, err
	}
	return validated(&SaveItemsRequest{ImageRef: in.GetImageRef(), Items: items})
}

func UpdateQuantityFromProto(in *pb.UpdateQuantityRequest) (*UpdateQuantityRequest, error) {
	return validated(&UpdateQuantityRequest{ID: in.GetId(), Quantity: int(in.GetQuantity())})
}

func UpdateExpiryFromProto(in *pb.UpdateExpiryRequest) (*UpdateExpiryRequest, error) {
	return validated(&UpdateExpiryRequest{ID: in.GetId(), Days: int(in.GetDays())})
}

func CompleteItemFromProto(in *pb.CompleteItemRequest) (*ItemRequest, error) {
	return validated(&ItemRequest{ID: in.GetId()})
}

func WasteItemFromProto(in *pb.WasteItemRequest) (*ItemRequest, error) {
	return validated(&ItemRequest{ID: in.GetId()})
}

func SuggestRecipeFromProto(in *pb.SuggestRecipeRequest) (*SuggestRecipeRequest, error) {
	return validated(&SuggestRecipeRequest{Focus: in.GetFocus()})
}

// PurchasedFromProto converts receipt lines; field prefixes price errors.
func PurchasedFromProto(field string, in []*pb.PurchasedItem) ([]inventory.PurchasedItem, error) {
	out := make([]inventory.PurchasedItem, 0, len(in))
	for i, p := range in {
		price, err := parseDecimal(fmt.Sprintf("%s[%d].price", field, i), p.GetPrice())
		if err != nil {
			return nil, err
		}
		out = append(out, inventory.PurchasedItem{Name: p.GetName(), Quantity: int(p.GetQuantity()), Price: price})
	}
	return out, nil
}

func PurchasedToProto(in []inventory.PurchasedItem) []*pb.PurchasedItem {
	out := make([]*pb.PurchasedItem, 0, len(in))
	for _, p := range in {
		out = append(out, &pb.PurchasedItem{Name: p.Name, Quantity: int32(p.Quantity), Price: p.Price.String()})
	}
	return out
}

func ConsolidatedFromProto(field string, in []*pb.ConsolidatedItem) ([]inventory.ConsolidatedItem, error) {
	out := make([]inventory.ConsolidatedItem, 0, len(in))
	for i, c := range in {
		price, err := parseDecimal(fmt.Sprintf("%s[%d].price", field, i), c.GetPrice())
		if err != nil {
			return nil, err
		}
		item := inventory.ConsolidatedItem{Name: c.GetName(), Quantity: int(c.GetQuantity()), Price: price}
		if c.ExpirationDays != nil {
			days := int(c.GetExpirationDays())
			item.ExpirationDays = &days
		}
		out = append(out, item)
	}
	return out, nil
}

func ConsolidatedToProto(in []inventory.ConsolidatedItem) []*pb.ConsolidatedItem {
	out := make([]*pb.ConsolidatedItem, 0, len(in))
	for _, c := range in {
		item := &pb.ConsolidatedItem{Name: c.Name, Quantity: int32(c.Quantity), Price: c.Price.String()}
		if c.ExpirationDays != nil {
			days := int32(*c.ExpirationDays)
			item.ExpirationDays = &days
		}
		out = append(out, item)
	}
	return out
}

// ImpactToProto encodes counters; nil encodes as all zeroes.
func ImpactToProto(c *inventory.ImpactCounters) *pb.Impact {
	if c == nil {
		return &pb.Impact{MoneySaved: decimal.Zero.String()}
	}
	return &pb.Impact{MoneySaved: c.MoneySaved.String(), MealsSaved: c.MealsSaved, WasteIncidents: c.WasteIncidents}
}

func ImpactFromProto(in *pb.Impact) (Impact, error) {
	money, err := parseDecimal("impact.money_saved", in.GetMoneySaved())
	if err != nil {
		return Impact{}, err
	}
	return Impact{MoneySaved: money, MealsSaved: in.GetMealsSaved(), WasteIncidents: in.GetWasteIncidents()}, nil
}

func ItemFromProto(in *pb.Item) (Item, error) {
	price, err := parseDecimal("item.price", in.GetPrice())
	if err != nil {
		return Item{}, err
	}
	it := Item{
		ID:           in.GetId(),
		Name:         in.GetName(),
		Quantity:     int(in.GetQuantity()),
		Price:        price,
		Expiry:       int(in.GetExpiry()),
		ImageURL:     in.GetImageUrl(),
		Band:         in.GetBand(),
		Position:     in.GetPosition(),
		ExpiringSoon: in.GetExpiringSoon(),
	}
	if in.GetCreatedAt() != nil {
		it.CreatedAt = in.GetCreatedAt().AsTime()
	}
	return it, nil
}

// RecipeToProto lists ingredients sorted by name.
func RecipeToProto(r *inventory.Recipe) *pb.Recipe {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)

	ingredients := make([]*pb.RecipeIngredient, 0, len(names))
	for _, name := range names {
		ing := r.Ingredients[name]
		ingredients = append(ingredients, &pb.RecipeIngredient{Name: name, Quantity: ing.Quantity, Have: ing.Have})
	}
	return &pb.Recipe{
		Name:                r.Name,
		Description:         r.Description,
		CookingTime:         r.CookingTime,
		Ingredients:         ingredients,
		Instructions:        r.Instructions,
		NutritionalBenefits: r.NutritionalBenefits,
	}
}

func RecipeFromProto(in *pb.Recipe) *inventory.Recipe {
	r := &inventory.Recipe{
		Name:                in.GetName(),
		Description:         in.GetDescription(),
		CookingTime:         in.GetCookingTime(),
		Ingredients:         make(map[string]inventory.RecipeIngredient, len(in.GetIngredients())),
		Instructions:        in.GetInstructions(),
		NutritionalBenefits: in.GetNutritionalBenefits(),
	}
	for _, ing := range in.GetIngredients() {
		r.Ingredients[ing.GetName()] = inventory.RecipeIngredient{Quantity: ing.GetQuantity(), Have: ing.GetHave()}
	}
	return r
}

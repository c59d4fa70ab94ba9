package remote

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
)

const ServiceAnalysis = "analysis"

type AnalysisClient struct {
	p *poster
}

func NewAnalysisClient(baseURL string, o Options) *AnalysisClient {
	return &AnalysisClient{p: newPoster(ServiceAnalysis, baseURL, o)}
}

type analyzeImageRequest struct {
	Image string   `json:"image"`
	Items []string `json:"items,omitempty"`
}

type analyzeImageResponse struct {
	Foods []inventory.PredictedExpiry `json:"foods"`
	Error string                      `json:"error"`
}

// AnalyzeImage predicts shelf life for the foods in image. names, when
// given, tells the service which items to look for. A response without
// any food is a failure only when there is no receipt to fall back on;
// receipt items then simply carry no predicted expiry.
func (c *AnalysisClient) AnalyzeImage(ctx context.Context, image string, names []string) ([]inventory.PredictedExpiry, error) {
	var resp analyzeImageResponse
	if err := c.p.post(ctx, "/analyze_image", analyzeImageRequest{Image: image, Items: names}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, c.p.fail(resp.Error, nil)
	}
	if len(resp.Foods) == 0 && len(names) == 0 {
		return nil, c.p.fail("no food items detected", nil)
	}
	if resp.Foods == nil {
		resp.Foods = []inventory.PredictedExpiry{}
	}
	return resp.Foods, nil
}

type analyzeReceiptRequest struct {
	Image string `json:"image"`
}

type analyzeReceiptResponse struct {
	Items []inventory.PurchasedItem `json:"items"`
	Error string                    `json:"error"`
}

// AnalyzeReceipt reads purchased lines off a receipt photo.
func (c *AnalysisClient) AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error) {
	var resp analyzeReceiptResponse
	if err := c.p.post(ctx, "/analyze_receipt", analyzeReceiptRequest{Image: image}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, c.p.fail(resp.Error, nil)
	}
	if len(resp.Items) == 0 {
		return nil, c.p.fail("no receipt items detected", nil)
	}
	return resp.Items, nil
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPriceStockAdvisorFallbackOnError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("upstream down")}
	advisor := NewPriceStockAdvisor(fake, discardLogger())

	got := advisor.Execute(context.Background(), nil, nil, nil)

	if got.PriceRecommendations == nil || len(got.PriceRecommendations) != 0 {
		t.Errorf("price recommendations = %v, want empty non-nil", got.PriceRecommendations)
	}
	if got.StockRecommendations == nil || len(got.StockRecommendations) != 0 {
		t.Errorf("stock recommendations = %v, want empty non-nil", got.StockRecommendations)
	}
	if len(got.Insights) != 1 || got.Insights[0] != priceStockParseInsight {
		t.Errorf("insights = %v", got.Insights)
	}
}

func TestPriceStockAdvisorNeverEmitsNullArrays(t *testing.T) {
	fake := &fakeProvider{reply: "bukan JSON sama sekali"}
	advisor := NewPriceStockAdvisor(fake, discardLogger())

	got := advisor.Execute(context.Background(), nil, nil, nil)

	encoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "null") {
		t.Errorf("encoded advice contains null arrays: %s", encoded)
	}
}

func TestPriceStockAdvisorParsesModelOutput(t *testing.T) {
	fake := &fakeProvider{reply: "```json\n" + `{
		"priceRecommendations": [
			{"menuName": "Ayam Geprek Level 5", "currentPrice": 25000, "suggestedPrice": 27000, "reason": "Permintaan tinggi"}
		],
		"stockRecommendations": [
			{"menuName": "Es Teh Manis", "action": "tambah", "reason": "Sering habis siang hari"}
		],
		"insights": ["Penjualan minuman naik di akhir pekan"]
	}` + "\n```"}
	advisor := NewPriceStockAdvisor(fake, discardLogger())

	sales := []SalesRecord{{MenuName: "Ayam Geprek Level 5", UnitsSold: 120, Revenue: 3000000, Price: 25000}}
	got := advisor.Execute(context.Background(), sales, nil, nil)

	if len(got.PriceRecommendations) != 1 {
		t.Fatalf("price recommendations = %v", got.PriceRecommendations)
	}
	pr := got.PriceRecommendations[0]
	if pr.MenuName != "Ayam Geprek Level 5" || pr.CurrentPrice != 25000 || pr.SuggestedPrice != 27000 {
		t.Errorf("price recommendation = %+v", pr)
	}
	if len(got.StockRecommendations) != 1 || got.StockRecommendations[0].Action != "tambah" {
		t.Errorf("stock recommendations = %v", got.StockRecommendations)
	}
	if len(got.Insights) != 1 {
		t.Errorf("insights = %v", got.Insights)
	}
}

func TestPriceStockAdvisorPromptCarriesData(t *testing.T) {
	fake := &fakeProvider{reply: `{"insights": ["ok"]}`}
	advisor := NewPriceStockAdvisor(fake, discardLogger())

	advisor.Execute(context.Background(),
		[]SalesRecord{{MenuName: "Rendang", UnitsSold: 40}},
		[]MenuReview{{MenuName: "Rendang", Rating: 5, Comment: "mantap"}},
		[]StockLevel{{MenuName: "Rendang", Quantity: 12}},
	)

	prompt := fake.lastConv[len(fake.lastConv)-1].Content
	for _, want := range []string{"Rendang", "mantap", "12"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if fake.lastOpts.Temperature != 0.3 || fake.lastOpts.MaxTokens != 1500 {
		t.Errorf("generation options = %+v", fake.lastOpts)
	}
}

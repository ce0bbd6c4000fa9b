package services

import "strings"

// Recommendation is the answer to a "what service do I need" query.
type Recommendation struct {
	Service        string `json:"service"`
	Confidence     string `json:"confidence"`
	Reasoning      string `json:"reasoning"`
	EstimatedPrice string `json:"estimatedPrice"`
	Action         string `json:"action"`
}

const standardPrice = "$35 + State Fees ($5 OH / $10 WV per stamp)"

type keywordRule struct {
	keywords []string
	result   Recommendation
}

// Matching is first-rule-wins, so the waiting-list rule stays ahead of the
// generic service rules.
var recommendRules = []keywordRule{
	{
		keywords: []string{"ohio"},
		result: Recommendation{
			Service:        "Service Area Waiting List",
			Confidence:     "High",
			Reasoning:      "We are currently commissioned in West Virginia only. Join the waiting list and we will reach out when Ohio appointments open.",
			EstimatedPrice: "Free to join",
			Action:         "join_waitlist",
		},
	},
	{
		keywords: []string{"mortgage", "refinance", "closing", "loan", "deed"},
		result: Recommendation{
			Service:        "Loan Signing",
			Confidence:     "High",
			Reasoning:      "Real estate transactions require a certified Loan Signing Agent. Our flat rate includes printing and courier service.",
			EstimatedPrice: "$150 flat rate",
			Action:         "book_loan",
		},
	},
	{
		keywords: []string{"will", "trust", "poa", "power", "healthcare"},
		result: Recommendation{
			Service:        "Estate Planning",
			Confidence:     "High",
			Reasoning:      "These documents are sensitive. We recommend our Estate Planning service.",
			EstimatedPrice: standardPrice,
			Action:         "book_general",
		},
	},
	{
		keywords: []string{"car", "title", "dmv", "bill of sale"},
		result: Recommendation{
			Service:        "Vehicle Title Transfer",
			Confidence:     "Medium",
			Reasoning:      "For vehicle transactions, a standard mobile notary service is perfect.",
			EstimatedPrice: standardPrice,
			Action:         "book_general",
		},
	},
}

var defaultRecommendation = Recommendation{
	Service:        "Mobile Notary",
	Confidence:     "Medium",
	Reasoning:      "A standard Mobile Notary appointment fits your needs.",
	EstimatedPrice: standardPrice,
	Action:         "book_general",
}

// RecommendService maps a free-text query to a service suggestion by
// case-insensitive keyword lookup. No model, no external call.
func RecommendService(query string) Recommendation {
	lower := strings.ToLower(query)
	for _, rule := range recommendRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.result
			}
		}
	}
	return defaultRecommendation
}

package domain

import "time"

// Sources of a classification result
const (
	SourceClassifier = "classifier"
	SourceCache      = "cache"
)

// Classification is the multi-pack decision for one product title
type Classification struct {
	Title        string    `json:"title"`
	Multipack    bool      `json:"multipack"`
	Rule         string    `json:"rule,omitempty"`     // Rule that fired, empty for single items
	Fragment     string    `json:"fragment,omitempty"` // Pattern library alternative that matched
	Source       string    `json:"source"`             // "classifier" or "cache"
	ClassifiedAt time.Time `json:"classifiedAt"`
}

// ClassifyRequest represents a single-title classification request
type ClassifyRequest struct {
	Title string `json:"title" binding:"required"`
}

// BatchClassifyRequest represents a multi-title classification request
type BatchClassifyRequest struct {
	Titles []string `json:"titles" binding:"required"`
}

// BatchClassifyResponse wraps the results of a batch request, in request order
type BatchClassifyResponse struct {
	Results []Classification `json:"results"`
}

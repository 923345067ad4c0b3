package model

// AppFeature is a non-CPG app destination the assistant can route to
// (calculators, timers, scoring tools). The registry is fixed at build time.
type AppFeature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Route       string `json:"route"`
	Description string `json:"description"`
}

var appFeatures = []AppFeature{
	{ID: "pediatric", Title: "Pediatric Guidelines", Route: "/pediatric", Description: "Pediatric dosing, weight-based calculations, and age-specific protocols"},
	{ID: "scores", Title: "Clinical Scores", Route: "/scores", Description: "GCS, APGAR, AVPU, and other clinical scoring systems"},
	{ID: "waafels", Title: "WAAFELS Protocol", Route: "/waafels", Description: "Wound assessment and fluid estimation guidelines"},
	{ID: "files", Title: "Clinical Files", Route: "/files", Description: "Complete CPG documentation and reference files"},
	{ID: "care", Title: "Patient Care", Route: "/care", Description: "Patient care protocols and procedures"},
	{ID: "flowchart", Title: "Clinical Flowcharts", Route: "/flowchart", Description: "Decision trees and clinical pathways for various conditions"},
	{ID: "rsi", Title: "RSI Protocol", Route: "/rsi", Description: "Rapid Sequence Intubation guidelines and medications"},
	{ID: "cpr", Title: "CPR Timer", Route: "/cpr", Description: "CPR timing and compression guidelines"},
}

// AppFeatures returns the fixed feature registry in definition order.
func AppFeatures() []AppFeature {
	return appFeatures
}

// FindAppFeature looks up a feature by its ID. Returns nil if unknown.
func FindAppFeature(id string) *AppFeature {
	for i := range appFeatures {
		if appFeatures[i].ID == id {
			return &appFeatures[i]
		}
	}
	return nil
}

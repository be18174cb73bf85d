package api

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	MealID string `json:"mealId"`
}

// CategoriesResponse is the body of GET /api/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// AreasResponse is the body of GET /api/areas.
type AreasResponse struct {
	Areas []string `json:"areas"`
}

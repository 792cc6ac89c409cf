package helpers

// Request/Response DTOs
type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=500"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Resources int    `json:"resources"`
	Time      string `json:"time"`
}

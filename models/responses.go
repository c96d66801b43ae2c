package models

// ErrorResponse is the JSON body written for every failed request.
// Detail is always a short, client-safe message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a generic single-message JSON body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse lists the resources exposed by the gateway.
type RootResponse struct {
	Message   string            `json:"message"`
	Resources map[string]string `json:"resources"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// GreetRequest is the body accepted by POST /greet.
type GreetRequest struct {
	Name string `json:"name"`
}

// MathRequest is the body accepted by the arithmetic endpoints.
type MathRequest struct {
	Numbers []float64 `json:"numbers"`
}

// MathResult carries the outcome of an arithmetic operation.
type MathResult struct {
	Result float64 `json:"result"`
}

// MathOperation describes one arithmetic endpoint in the math index.
type MathOperation struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// MathIndex is returned by GET /math.
type MathIndex struct {
	Resource   string          `json:"resource"`
	Operations []MathOperation `json:"operations"`
}

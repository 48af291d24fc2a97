package domain

type ResponseType string

const (
	ResponseGeoJSON ResponseType = "geojson"
	ResponseText    ResponseType = "text"
)

type ChatRequest struct {
	Query string `json:"query" validate:"required,notblank"`
}

// ChatResponse is the uniform envelope for the chat endpoint. Data is always
// a string: plain Polish text or a GeoJSON FeatureCollection serialized as one.
type ChatResponse struct {
	Type   ResponseType `json:"type"`
	Data   string       `json:"data"`
	Intent string       `json:"intent"`
}

func TextResponse(intent IntentType, text string) ChatResponse {
	return ChatResponse{Type: ResponseText, Data: text, Intent: string(intent)}
}

func GeoJSONResponse(intent IntentType, geojson string) ChatResponse {
	return ChatResponse{Type: ResponseGeoJSON, Data: geojson, Intent: string(intent)}
}

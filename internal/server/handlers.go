package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vlad-ds/street-view-mcp/internal/artifact"
	"github.com/vlad-ds/street-view-mcp/internal/streetview"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "get_street_view", "get_metadata").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Validates them (exactly one location selector, filename rules)
//  3. Delegates to the Street View client or the artifact store
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "get_street_view":
		return s.handleGetStreetView(args)
	case "get_metadata":
		return s.handleGetMetadata(args)
	case "open_image_locally":
		return s.handleOpenImageLocally(args)
	case "create_html_page":
		return s.handleCreateHTMLPage(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// buildLocation constructs the one-of-three location selector from the raw
// tool arguments. Supplying zero or more than one selector is rejected here,
// before any network call.
func buildLocation(address, latLng, panoID string) (streetview.Location, error) {
	set := 0
	for _, v := range []string{address, latLng, panoID} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return streetview.Location{}, fmt.Errorf("must provide one of: location, lat_lng, or pano_id")
	}
	if set > 1 {
		return streetview.Location{}, fmt.Errorf("provide only one of: location, lat_lng, or pano_id")
	}

	switch {
	case address != "":
		return streetview.AddressLocation(address), nil
	case latLng != "":
		return streetview.ParseLatLng(latLng)
	default:
		return streetview.PanoLocation(panoID), nil
	}
}

// === Tool Handlers ===

type getStreetViewArgs struct {
	Filename string  `json:"filename"`
	Location string  `json:"location"`
	LatLng   string  `json:"lat_lng"`
	PanoID   string  `json:"pano_id"`
	Size     string  `json:"size"`
	Heading  float64 `json:"heading"`
	Pitch    float64 `json:"pitch"`
	FOV      float64 `json:"fov"`
	Radius   int     `json:"radius"`
	Source   string  `json:"source"`
}

// savedResult reports a successful artifact write.
type savedResult struct {
	Path  string `json:"path"`
	Saved bool   `json:"saved"`
}

func (s *Server) handleGetStreetView(args json.RawMessage) (interface{}, error) {
	var a getStreetViewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// Filename and selector checks happen before the HTTP request so a bad
	// call never reaches the network.
	if err := artifact.ValidName(a.Filename); err != nil {
		return nil, err
	}
	if s.store.Exists(a.Filename) {
		return nil, &artifact.ExistsError{Name: a.Filename}
	}
	loc, err := buildLocation(a.Location, a.LatLng, a.PanoID)
	if err != nil {
		return nil, err
	}

	opts := streetview.ImageOptions{
		Size:    a.Size,
		Heading: a.Heading,
		Pitch:   a.Pitch,
		FOV:     a.FOV,
		Radius:  a.Radius,
		Source:  streetview.Source(a.Source),
	}

	data, err := s.client.FetchImage(context.Background(), loc, opts)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(a.Filename, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("saved street view image", "file", a.Filename, "location", loc.String(), "bytes", len(data))
	return savedResult{Path: path, Saved: true}, nil
}

type getMetadataArgs struct {
	Location string `json:"location"`
	LatLng   string `json:"lat_lng"`
	PanoID   string `json:"pano_id"`
	Radius   int    `json:"radius"`
	Source   string `json:"source"`
}

func (s *Server) handleGetMetadata(args json.RawMessage) (interface{}, error) {
	var a getMetadataArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	loc, err := buildLocation(a.Location, a.LatLng, a.PanoID)
	if err != nil {
		return nil, err
	}

	opts := streetview.MetadataOptions{
		Radius: a.Radius,
		Source: streetview.Source(a.Source),
	}
	return s.client.FetchMetadata(context.Background(), loc, opts)
}

type openImageLocallyArgs struct {
	Filename string `json:"filename"`
}

type openedResult struct {
	Path   string `json:"path"`
	Opened bool   `json:"opened"`
}

func (s *Server) handleOpenImageLocally(args json.RawMessage) (interface{}, error) {
	var a openImageLocallyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.store.OpenViewer(a.Filename); err != nil {
		return nil, err
	}
	return openedResult{Path: s.store.Path(a.Filename), Opened: true}, nil
}

type createHTMLPageArgs struct {
	Filename     string   `json:"filename"`
	Title        string   `json:"title"`
	HTMLElements []string `json:"html_elements"`
}

func (s *Server) handleCreateHTMLPage(args json.RawMessage) (interface{}, error) {
	var a createHTMLPageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := artifact.ValidName(a.Filename); err != nil {
		return nil, err
	}
	if len(a.HTMLElements) == 0 {
		return nil, fmt.Errorf("html_elements must not be empty")
	}
	if a.Title == "" {
		a.Title = "Street View"
	}

	page := artifact.BuildPage(a.Title, a.HTMLElements)
	path, err := s.store.Save(a.Filename, []byte(page))
	if err != nil {
		return nil, err
	}

	s.log.Info("saved html page", "file", a.Filename, "elements", len(a.HTMLElements))
	return savedResult{Path: path, Saved: true}, nil
}

package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// locationProperties are the selector arguments shared by the fetching tools.
// Exactly one of the three must be supplied per call.
func locationProperties() map[string]interface{} {
	return map[string]interface{}{
		"location": map[string]interface{}{
			"type":        "string",
			"description": "Address to look up (e.g., \"Empire State Building, NY\"). Provide exactly one of location, lat_lng, pano_id.",
		},
		"lat_lng": map[string]interface{}{
			"type":        "string",
			"description": "Comma-separated latitude and longitude (e.g., \"40.748817,-73.985428\")",
		},
		"pano_id": map[string]interface{}{
			"type":        "string",
			"description": "Specific panorama ID to fetch",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	streetViewProps := locationProperties()
	streetViewProps["filename"] = map[string]interface{}{
		"type":        "string",
		"description": "Filename to save the image as, within the output directory (e.g., \"empire_state.jpg\"). Must not already exist.",
	}
	streetViewProps["size"] = map[string]interface{}{
		"type":        "string",
		"description": "Image dimensions as \"widthxheight\" (default \"600x400\")",
		"default":     "600x400",
	}
	streetViewProps["heading"] = map[string]interface{}{
		"type":        "number",
		"description": "Camera compass heading in degrees (0-360, wraps)",
		"default":     0,
	}
	streetViewProps["pitch"] = map[string]interface{}{
		"type":        "number",
		"description": "Camera pitch in degrees (-90 to 90)",
		"default":     0,
	}
	streetViewProps["fov"] = map[string]interface{}{
		"type":        "number",
		"description": "Field of view in degrees (zoom level, 10-120, default 90)",
		"default":     90,
	}
	streetViewProps["radius"] = map[string]interface{}{
		"type":        "integer",
		"description": "Search radius in meters when using location or lat_lng (default 50)",
		"default":     50,
	}
	streetViewProps["source"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"default", "outdoor"},
		"description": "Limit searches to selected sources (default \"default\")",
		"default":     "default",
	}

	metadataProps := locationProperties()
	metadataProps["radius"] = map[string]interface{}{
		"type":        "integer",
		"description": "Search radius in meters when using location or lat_lng (default 50)",
		"default":     50,
	}
	metadataProps["source"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"default", "outdoor"},
		"description": "Limit searches to selected sources (default \"default\")",
		"default":     "default",
	}

	return []Tool{
		{
			Name:        "get_street_view",
			Description: "Fetch a Street View image by address, coordinates, or panorama ID and save it to the output directory. Fails if the filename already exists.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": streetViewProps,
				"required":   []string{"filename"},
			},
		},
		{
			Name:        "get_metadata",
			Description: "Fetch metadata about a Street View panorama (status, copyright, capture date, pano ID, resolved coordinates) to check imagery availability.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": metadataProps,
			},
		},
		{
			Name:        "open_image_locally",
			Description: "Open a previously saved image from the output directory with the OS default image viewer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Filename of a saved image in the output directory",
					},
				},
				"required": []string{"filename"},
			},
		},
		{
			Name:        "create_html_page",
			Description: "Create an HTML page in the output directory from a list of HTML fragment strings. Fragments are inserted verbatim without escaping; supply trusted, already-valid HTML. Fails if the filename already exists.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Filename to save the page as (e.g., \"tour.html\"). Must not already exist.",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Page title (default \"Street View\")",
						"default":     "Street View",
					},
					"html_elements": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "HTML fragments concatenated into the page body, in order",
					},
				},
				"required": []string{"filename", "html_elements"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

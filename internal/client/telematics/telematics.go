// Package telematics loads the static fleet telematics fixture.
package telematics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Client reads telematics documents from a fixture file.
type Client struct {
	fixturePath string
}

// NewClient creates a new instance of Client bound to the given fixture path.
func NewClient(fixturePath string) (*Client, error) {
	if fixturePath == "" {
		return nil, fmt.Errorf("fixture path is empty")
	}
	return &Client{
		fixturePath: fixturePath,
	}, nil
}

// GetTelematicsData reads and parses the fixture. The file is read on every call.
func (c *Client) GetTelematicsData(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read telematics fixture: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal telematics fixture %s: %w", c.fixturePath, err)
	}

	return &doc, nil
}

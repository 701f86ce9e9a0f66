package nfldata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ImportTeamDesc imports team descriptions, colors, and logo locations.
func (c *Client) ImportTeamDesc(ctx context.Context) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.TeamDesc)
	if err != nil {
		return nil, fmt.Errorf("importing team descriptions: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing team descriptions: %w", err)
	}
	return t, nil
}

package omniagentpay

import "context"

// ListNetworks lists the networks supported by the API.
func (c *Client) ListNetworks(ctx context.Context) ([]Network, error) {
	var networks []Network
	if err := c.apiClient.ListNetworks(ctx, &networks); err != nil {
		return nil, err
	}
	return nonNil(networks), nil
}

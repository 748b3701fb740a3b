// Package dfclient provides the main entry point for creating Dialfire API clients.
package dfclient

import (
	"fmt"
	"strings"

	"github.com/armitxes/dialfire-go/internal/client"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// New creates a new Dialfire API client. The zero Config targets the vendor's
// production API origin; APIEndpoint exists to point tests at a local server.
func New(config *dialfire.Config) (dialfire.Client, error) {
	if config == nil {
		return nil, dialfire.ErrConfigRequired
	}

	if config.APIEndpoint != "" {
		endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.APIEndpoint = endpoint
	}

	dialfireClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return dialfireClient, nil
}

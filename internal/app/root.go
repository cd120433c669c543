package app

import (
	"context"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/config"
	audionetwork_service "github.com/oshokin/audionetwork-grabber/internal/service/audionetwork"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the client, sets up the service components,
// and starts the download for the provided page URL.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, pageURL string) error {
	client := audionetwork_client.NewClient(cfg)
	templateManager := audionetwork_service.NewTemplateManager(ctx, cfg)
	tagProcessor := audionetwork_service.NewTagProcessor()

	s := audionetwork_service.NewService(cfg, client, templateManager, tagProcessor)

	return s.DownloadURL(ctx, pageURL)
}

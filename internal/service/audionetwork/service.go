package audionetwork

import (
	"context"
	"fmt"
	"os"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/config"
	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// Service defines the interface for downloading content from a page URL.
type Service interface {
	// DownloadURL fetches the page at pageURL and downloads its preview audio
	// and cover art into the configured output directory.
	DownloadURL(ctx context.Context, pageURL string) error
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client fetches pages and files.
	client audionetwork_client.Client
	// templateManager renders track filenames and album folder names.
	templateManager TemplateManager
	// tagProcessor writes metadata tags into downloaded audio files.
	tagProcessor TagProcessor
}

// NewService creates and returns a new instance of ServiceImpl.
func NewService(
	cfg *config.Config,
	client audionetwork_client.Client,
	templateManager TemplateManager,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:             cfg,
		client:          client,
		templateManager: templateManager,
		tagProcessor:    tagProcessor,
	}
}

// DownloadURL fetches the page at pageURL, determines whether it describes a
// single track or an album, and downloads accordingly.
func (s *ServiceImpl) DownloadURL(ctx context.Context, pageURL string) error {
	logger.Infof(ctx, "Reading %s", pageURL)

	pageHTML, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	page, err := audionetwork_client.ParsePage(pageHTML)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", s.cfg.OutputPath, err)
	}

	switch page.Kind {
	case audionetwork_client.PageKindSingle:
		logger.Info(ctx, "Page describes a single track")

		return s.downloadSingleTrack(ctx, page.Track)
	case audionetwork_client.PageKindAlbum:
		logger.Info(ctx, "Page describes an album")

		return s.downloadAlbum(ctx, page.Album, page.Tracks)
	default:
		return audionetwork_client.ErrNoTrackInfo
	}
}

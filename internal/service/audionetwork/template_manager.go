package audionetwork

import (
	"bytes"
	"context"
	"html"
	"html/template"

	"github.com/oshokin/audionetwork-grabber/internal/config"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// TemplateManager defines the interface for managing templates used to generate filenames and folder names.
type TemplateManager interface {
	// GetTrackFilename generates a filename (without extension) for a track based on its tags.
	GetTrackFilename(ctx context.Context, trackTags map[string]string) string

	// GetAlbumFolderName generates a folder name for an album based on its tags.
	GetAlbumFolderName(ctx context.Context, albumTags map[string]string) string
}

// TemplateManagerImpl implements the TemplateManager interface.
type TemplateManagerImpl struct {
	// trackFilenameTemplate is the template for track filenames.
	trackFilenameTemplate *template.Template
	// albumFolderTemplate is the template for album folder names.
	albumFolderTemplate *template.Template
	// defaultTrackFilenameTemplate is the fallback template for track filenames.
	defaultTrackFilenameTemplate *template.Template
	// defaultAlbumFolderTemplate is the fallback template for album folder names.
	defaultAlbumFolderTemplate *template.Template
}

// NewTemplateManager creates and returns a new instance of TemplateManagerImpl.
// It initializes templates from the configuration and falls back to default templates if parsing fails.
func NewTemplateManager(ctx context.Context, cfg *config.Config) TemplateManager {
	// Initialize default templates.
	defaultTrackFilenameTemplate := template.Must(
		template.New("defaultTrackFilenameTemplate").Parse(config.DefaultTrackFilenameTemplate))
	defaultAlbumFolderTemplate := template.Must(
		template.New("defaultAlbumFolderTemplate").Parse(config.DefaultAlbumFolderTemplate))

	// Parse custom templates from the configuration.
	// An unset template stays nil so the default is used.
	var (
		trackFilenameTemplate *template.Template
		albumFolderTemplate   *template.Template
		err                   error
	)

	if cfg.TrackFilenameTemplate != "" {
		trackFilenameTemplate, err = template.New("trackFilenameTemplate").Parse(cfg.TrackFilenameTemplate)
		if err != nil {
			logger.Errorf(ctx, "Failed to parse track filename template, using default: %v", err)
		}
	}

	if cfg.AlbumFolderTemplate != "" {
		albumFolderTemplate, err = template.New("albumFolderTemplate").Parse(cfg.AlbumFolderTemplate)
		if err != nil {
			logger.Errorf(ctx, "Failed to parse album folder template, using default: %v", err)
		}
	}

	return &TemplateManagerImpl{
		trackFilenameTemplate:        trackFilenameTemplate,
		albumFolderTemplate:          albumFolderTemplate,
		defaultTrackFilenameTemplate: defaultTrackFilenameTemplate,
		defaultAlbumFolderTemplate:   defaultAlbumFolderTemplate,
	}
}

// GetTrackFilename generates a filename (without extension) for a track based on its tags.
func (m *TemplateManagerImpl) GetTrackFilename(ctx context.Context, trackTags map[string]string) string {
	return m.render(ctx, m.trackFilenameTemplate, m.defaultTrackFilenameTemplate, trackTags)
}

// GetAlbumFolderName generates a folder name for an album based on its tags.
func (m *TemplateManagerImpl) GetAlbumFolderName(ctx context.Context, albumTags map[string]string) string {
	return m.render(ctx, m.albumFolderTemplate, m.defaultAlbumFolderTemplate, albumTags)
}

func (m *TemplateManagerImpl) render(
	ctx context.Context,
	textBuilder, defaultTextBuilder *template.Template,
	tags map[string]string,
) string {
	var buffer bytes.Buffer

	// Execute the selected template with the tags.
	if textBuilder != nil {
		if err := textBuilder.Execute(&buffer, tags); err != nil {
			logger.Errorf(ctx, "Failed to execute template, using default: %v", err)

			// Fall back to the default template if execution fails.
			buffer.Reset()
			_ = defaultTextBuilder.Execute(&buffer, tags) //nolint:errcheck // Default template is always valid.
		}
	} else {
		// Use default template if custom template is nil.
		_ = defaultTextBuilder.Execute(&buffer, tags) //nolint:errcheck // Default template is always valid.
	}

	// Unescape HTML entities in the generated name.
	return html.UnescapeString(buffer.String())
}

package audionetwork

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
	"github.com/oshokin/audionetwork-grabber/internal/utils"
)

// downloadCover saves the cover art as "folder.jpg" inside the folder.
// An already present cover is never re-fetched, so each folder triggers at
// most one cover request per run. The image is written to a temporary name
// first so a failed fetch never leaves a partial cover behind.
func (s *ServiceImpl) downloadCover(ctx context.Context, coverURL, folder string) (coverResult, error) {
	coverPath := filepath.Join(folder, coverFilename)

	// The existence check comes before any network activity.
	exists, err := utils.IsFileExist(coverPath)
	if err != nil {
		return coverMissing, fmt.Errorf("failed to check cover file: %w", err)
	}

	if exists {
		logger.Debugf(ctx, "Cover '%s' already exists, skipping download", coverPath)

		return coverAlreadyExists, nil
	}

	if strings.TrimSpace(coverURL) == "" {
		return coverMissing, nil
	}

	fetchResult, err := s.client.FetchFile(ctx, coverURL)
	if err != nil {
		return coverMissing, fmt.Errorf("failed to fetch cover: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempCoverPath := filepath.Join(folder, "folder_"+uuid.NewString()+constants.ExtensionJPG)

	file, err := os.OpenFile(filepath.Clean(tempCoverPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return coverMissing, fmt.Errorf("failed to create cover file: %w", err)
	}

	_, copyErr := io.Copy(file, fetchResult.Body)
	closeErr := file.Close()

	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tempCoverPath) //nolint:errcheck // Best-effort cleanup.

		if copyErr != nil {
			return coverMissing, fmt.Errorf("failed to save cover: %w", copyErr)
		}

		return coverMissing, fmt.Errorf("failed to save cover: %w", closeErr)
	}

	if err = os.Rename(tempCoverPath, coverPath); err != nil {
		_ = os.Remove(tempCoverPath) //nolint:errcheck // Best-effort cleanup.

		return coverMissing, fmt.Errorf("failed to save cover: %w", err)
	}

	logger.Debugf(ctx, "Saved album cover to %s", coverPath)

	return coverDownloaded, nil
}

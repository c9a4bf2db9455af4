package usecase

import (
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/directory"
)

// DirectoryUC implements the directory use case interface
type DirectoryUC struct {
	cfg           *models.Config
	directoryRepo directory.DirectoryRepo
}

// NewDirectoryUC creates a new directory use case
func NewDirectoryUC(
	cfg *models.Config,
	directoryRepo directory.DirectoryRepo,
) *DirectoryUC {
	return &DirectoryUC{
		cfg:           cfg,
		directoryRepo: directoryRepo,
	}
}

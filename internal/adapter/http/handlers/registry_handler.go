package handlers

import (
	"net/http"
	"sort"

	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// RegistryHandler exposes the registry snapshot the import screens use to
// populate their dropdowns.

type RegistryHandler struct {
	usecase usecase.IRegistryLookupUseCase
}

func NewRegistryHandler(uc usecase.IRegistryLookupUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

type registryPackageResponse struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	IsActive bool   `json:"is_active"`
}

type registrySnapshotResponse struct {
	Areas    []string                  `json:"areas"`
	Packages []registryPackageResponse `json:"packages"`
	Warnings []string                  `json:"warnings,omitempty"`
	Complete bool                      `json:"complete"`
}

// GetSnapshot loads a fresh snapshot of areas and packages. Registries that
// fail to load degrade to empty lists with a warning.
func (h *RegistryHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.usecase.LoadSnapshot(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := registrySnapshotResponse{
		Areas:    make([]string, 0, len(snap.Areas)),
		Packages: make([]registryPackageResponse, 0, len(snap.Packages)),
		Warnings: snap.Warnings,
		Complete: snap.Complete,
	}
	for name := range snap.Areas {
		out.Areas = append(out.Areas, name)
	}
	sort.Strings(out.Areas)
	for name, info := range snap.Packages {
		out.Packages = append(out.Packages, registryPackageResponse{
			Name:     name,
			Price:    info.Price.String(),
			IsActive: info.IsActive,
		})
	}
	sort.Slice(out.Packages, func(i, j int) bool { return out.Packages[i].Name < out.Packages[j].Name })

	c.JSON(http.StatusOK, out)
}

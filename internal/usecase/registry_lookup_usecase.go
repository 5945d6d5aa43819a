package usecase

import (
	"context"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PackageInfo is the validator's view of one active package.
type PackageInfo struct {
	Price    decimal.Decimal
	IsActive bool
}

// VCInfo is the validator's view of one inventory card.
type VCInfo struct {
	Status     entities.VCStatus
	CustomerID string
}

// RegistrySnapshot is a point-in-time copy of the three registries consulted
// during validation. A snapshot lives for one validation session; registries
// mutate between imports, so snapshots are never cached across sessions.
//
// A registry that failed to load degrades to empty and adds a warning, so the
// remaining registries still validate. Complete is false in that case and the
// validator must refuse to report a batch as ready to import.
type RegistrySnapshot struct {
	Areas       map[string]struct{}
	Packages    map[string]PackageInfo
	VCInventory map[string]VCInfo

	// Per-registry load outcome. A registry that failed to load is skipped
	// during row validation instead of failing every row.
	AreasLoaded     bool
	PackagesLoaded  bool
	InventoryLoaded bool

	Warnings []string
	Complete bool
}

func (s RegistrySnapshot) HasArea(name string) bool {
	_, ok := s.Areas[name]
	return ok
}

func (s RegistrySnapshot) Package(name string) (PackageInfo, bool) {
	p, ok := s.Packages[name]
	return p, ok
}

func (s RegistrySnapshot) VC(vcNumber string) (VCInfo, bool) {
	v, ok := s.VCInventory[vcNumber]
	return v, ok
}

// IRegistryLookupUseCase loads registry snapshots for validation sessions.

type IRegistryLookupUseCase interface {
	LoadSnapshot(ctx context.Context) (RegistrySnapshot, error)
}

type RegistryLookupUseCase struct {
	areas     interfaces.IAreaRegistry
	packages  interfaces.IPackageRegistry
	inventory interfaces.IVCInventory
	logger    *zap.Logger
}

var _ IRegistryLookupUseCase = (*RegistryLookupUseCase)(nil)

func NewRegistryLookupUseCase(
	areas interfaces.IAreaRegistry,
	packages interfaces.IPackageRegistry,
	inventory interfaces.IVCInventory,
	logger *zap.Logger,
) *RegistryLookupUseCase {
	return &RegistryLookupUseCase{areas: areas, packages: packages, inventory: inventory, logger: logger}
}

// LoadSnapshot reads all three registries. Individual load failures do not
// abort the snapshot: "no packages loaded" must not block area validation.
func (u *RegistryLookupUseCase) LoadSnapshot(ctx context.Context) (RegistrySnapshot, error) {
	snap := RegistrySnapshot{
		Areas:       map[string]struct{}{},
		Packages:    map[string]PackageInfo{},
		VCInventory: map[string]VCInfo{},
		Complete:    true,
	}

	names, err := u.areas.ListNames(ctx)
	if err != nil {
		u.logger.Warn("area registry unavailable", zap.Error(err))
		snap.Warnings = append(snap.Warnings, "area registry unavailable: area checks skipped")
		snap.Complete = false
	} else {
		snap.AreasLoaded = true
		for _, n := range names {
			snap.Areas[n] = struct{}{}
		}
	}

	pkgs, err := u.packages.ListActive(ctx)
	if err != nil {
		u.logger.Warn("package registry unavailable", zap.Error(err))
		snap.Warnings = append(snap.Warnings, "package registry unavailable: package checks skipped")
		snap.Complete = false
	} else {
		snap.PackagesLoaded = true
		for _, p := range pkgs {
			snap.Packages[p.Name] = PackageInfo{Price: p.Price, IsActive: p.IsActive}
		}
	}

	items, err := u.inventory.List(ctx)
	if err != nil {
		u.logger.Warn("vc inventory unavailable", zap.Error(err))
		snap.Warnings = append(snap.Warnings, "vc inventory unavailable: vc checks skipped")
		snap.Complete = false
	} else {
		snap.InventoryLoaded = true
		for _, it := range items {
			snap.VCInventory[it.VCNumber] = VCInfo{Status: it.Status, CustomerID: it.CustomerID}
		}
	}

	u.logger.Debug("registry snapshot loaded",
		zap.Int("areas", len(snap.Areas)),
		zap.Int("packages", len(snap.Packages)),
		zap.Int("vcs", len(snap.VCInventory)),
		zap.Bool("complete", snap.Complete))
	return snap, nil
}

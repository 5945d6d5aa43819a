package usecase

import (
	"context"
	"errors"
	"testing"

	"cabletv_backoffice/internal/domain/entities"
	mock_interfaces "cabletv_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRegistryLookupUseCase_LoadSnapshot(t *testing.T) {
	t.Run("all registries load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		areas := mock_interfaces.NewMockIAreaRegistry(ctrl)
		packages := mock_interfaces.NewMockIPackageRegistry(ctrl)
		inventory := mock_interfaces.NewMockIVCInventory(ctrl)
		uc := NewRegistryLookupUseCase(areas, packages, inventory, zap.NewNop())

		areas.EXPECT().ListNames(gomock.Any()).Return([]string{"North"}, nil)
		packages.EXPECT().ListActive(gomock.Any()).Return([]entities.Package{
			{Name: "Basic", Price: dec("300.00"), IsActive: true},
		}, nil)
		inventory.EXPECT().List(gomock.Any()).Return([]entities.VCInventoryItem{
			{VCNumber: "VC001", Status: entities.VCStatusAvailable},
		}, nil)

		snap, err := uc.LoadSnapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !snap.Complete {
			t.Fatalf("expected complete snapshot")
		}
		if !snap.HasArea("North") {
			t.Fatalf("expected area North")
		}
		if _, ok := snap.Package("Basic"); !ok {
			t.Fatalf("expected package Basic")
		}
		if _, ok := snap.VC("VC001"); !ok {
			t.Fatalf("expected VC001")
		}
	})

	t.Run("one registry failing degrades, not aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		areas := mock_interfaces.NewMockIAreaRegistry(ctrl)
		packages := mock_interfaces.NewMockIPackageRegistry(ctrl)
		inventory := mock_interfaces.NewMockIVCInventory(ctrl)
		uc := NewRegistryLookupUseCase(areas, packages, inventory, zap.NewNop())

		areas.EXPECT().ListNames(gomock.Any()).Return([]string{"North"}, nil)
		packages.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("scan failed"))
		inventory.EXPECT().List(gomock.Any()).Return(nil, nil)

		snap, err := uc.LoadSnapshot(context.Background())
		if err != nil {
			t.Fatalf("a degraded snapshot is not an error: %v", err)
		}
		if snap.Complete {
			t.Fatalf("expected incomplete snapshot")
		}
		if !snap.AreasLoaded || snap.PackagesLoaded || !snap.InventoryLoaded {
			t.Fatalf("unexpected load flags: %+v", snap)
		}
		if len(snap.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", snap.Warnings)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNoCustomersSelected = errors.New("no customers selected")
	ErrUnknownArea         = errors.New("area does not exist")
	ErrUnknownPackage      = errors.New("package does not exist or is not active")
)

// BulkOutcome is the result of one customer's write within a bulk update.
type BulkOutcome struct {
	CustomerID string `json:"customer_id"`
	Error      string `json:"error,omitempty"`
}

// BulkResult reports a bulk fan-out. Every selected customer gets an
// outcome; a failed write is reported, never swallowed, and never rolled
// back.
type BulkResult struct {
	Updated  int           `json:"updated"`
	Failed   int           `json:"failed"`
	Outcomes []BulkOutcome `json:"outcomes"`
}

// IBulkUseCase applies area and package changes across a customer set with
// one write per customer, awaited concurrently.

type IBulkUseCase interface {
	UpdateArea(ctx context.Context, customerIDs []string, newArea string, actor entities.Actor) (BulkResult, error)
	UpdatePackage(ctx context.Context, customerIDs []string, packageName string, actor entities.Actor) (BulkResult, error)
}

type BulkUseCase struct {
	repo     interfaces.ICustomerRepository
	registry IRegistryLookupUseCase
	logger   *zap.Logger
}

var _ IBulkUseCase = (*BulkUseCase)(nil)

func NewBulkUseCase(repo interfaces.ICustomerRepository, registry IRegistryLookupUseCase, logger *zap.Logger) *BulkUseCase {
	return &BulkUseCase{repo: repo, registry: registry, logger: logger}
}

// UpdateArea moves the selected customers to newArea.
func (u *BulkUseCase) UpdateArea(ctx context.Context, customerIDs []string, newArea string, actor entities.Actor) (BulkResult, error) {
	newArea = strings.TrimSpace(newArea)
	if len(customerIDs) == 0 {
		return BulkResult{}, ErrNoCustomersSelected
	}

	snap, err := u.registry.LoadSnapshot(ctx)
	if err != nil {
		return BulkResult{}, err
	}
	if !snap.AreasLoaded || !snap.HasArea(newArea) {
		return BulkResult{}, fmt.Errorf("%w: %q", ErrUnknownArea, newArea)
	}

	result := u.fanOut(ctx, customerIDs, func(c *entities.Customer) {
		c.Area = newArea
	})
	u.logger.Info("bulk area update",
		zap.String("area", newArea),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
		zap.String("actor", actor.ID))
	return result, nil
}

// UpdatePackage switches the selected customers to packageName and adjusts
// their running balance by the price difference, so payments already applied
// this cycle are preserved.
func (u *BulkUseCase) UpdatePackage(ctx context.Context, customerIDs []string, packageName string, actor entities.Actor) (BulkResult, error) {
	packageName = strings.TrimSpace(packageName)
	if len(customerIDs) == 0 {
		return BulkResult{}, ErrNoCustomersSelected
	}

	snap, err := u.registry.LoadSnapshot(ctx)
	if err != nil {
		return BulkResult{}, err
	}
	pkg, ok := snap.Package(packageName)
	if !snap.PackagesLoaded || !ok || !pkg.IsActive {
		return BulkResult{}, fmt.Errorf("%w: %q", ErrUnknownPackage, packageName)
	}

	result := u.fanOut(ctx, customerIDs, func(c *entities.Customer) {
		delta := pkg.Price.Sub(c.PackageAmount)
		c.PackageName = packageName
		c.PackageAmount = pkg.Price
		c.CurrentOutstanding = c.CurrentOutstanding.Add(delta)
		for i := range c.Connections {
			if c.Connections[i].IsPrimary {
				c.Connections[i].PlanName = packageName
				c.Connections[i].PlanPrice = pkg.Price
			}
		}
	})
	u.logger.Info("bulk package update",
		zap.String("package", packageName),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
		zap.String("actor", actor.ID))
	return result, nil
}

// fanOut issues one load-mutate-save per customer concurrently and collects
// per-customer outcomes in selection order.
func (u *BulkUseCase) fanOut(ctx context.Context, customerIDs []string, mutate func(*entities.Customer)) BulkResult {
	outcomes := make([]BulkOutcome, len(customerIDs))
	var wg sync.WaitGroup
	for i, id := range customerIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			outcomes[i] = BulkOutcome{CustomerID: id}

			c, err := u.repo.GetByID(ctx, id)
			if err != nil {
				outcomes[i].Error = err.Error()
				return
			}
			if c.ID == "" {
				outcomes[i].Error = ErrCustomerNotFound.Error()
				return
			}

			mutate(&c)
			c.UpdatedAt = time.Now().UTC()
			if _, err := u.repo.Save(ctx, c); err != nil {
				outcomes[i].Error = err.Error()
			}
		}(i, id)
	}
	wg.Wait()

	result := BulkResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Error == "" {
			result.Updated++
		} else {
			result.Failed++
		}
	}
	return result
}

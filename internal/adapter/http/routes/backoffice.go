package routes

import (
	"cabletv_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers      = "/customers"
	PathActionRequests = "/action-requests"
	PathImports        = "/imports"
	PathBulk           = "/bulk"
	PathRegistries     = "/registries"
)

type backofficeHandlers struct {
	customers      *handlers.CustomerHandler
	status         *handlers.StatusHandler
	balance        *handlers.BalanceHandler
	actionRequests *handlers.ActionRequestHandler
	imports        *handlers.ImportHandler
	bulk           *handlers.BulkHandler
	registries     *handlers.RegistryHandler
}

func addBackofficeRoutes(rg *gin.RouterGroup, h backofficeHandlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.customers.CreateCustomer)
		customers.GET("", h.customers.ListCustomers)
		customers.GET("/export/csv", h.customers.ExportCustomersCSV)
		customers.GET("/export/excel", h.customers.ExportCustomersExcel)
		customers.GET("/:customer_id", h.customers.GetCustomer)
		customers.PATCH("/:customer_id/disable", h.customers.DisableCustomer)
		customers.PATCH("/:customer_id/status", h.status.ChangeStatus)
		customers.POST("/:customer_id/vcs", h.status.AssignVC)
		customers.DELETE("/:customer_id/vcs", h.status.ReleaseVC)
		customers.POST("/:customer_id/balance/recompute", h.balance.RecomputeBalance)
	}

	requests := rg.Group(PathActionRequests)
	{
		requests.GET("", h.actionRequests.ListPending)
		requests.GET("/:request_id", h.actionRequests.GetRequest)
		requests.PATCH("/:request_id/approve", h.actionRequests.ApproveRequest)
		requests.PATCH("/:request_id/deny", h.actionRequests.DenyRequest)
	}

	imports := rg.Group(PathImports)
	{
		imports.POST("/validate", h.imports.ValidateImport)
		imports.POST("/commit", h.imports.CommitImport)
	}

	bulk := rg.Group(PathBulk)
	{
		bulk.PATCH("/area", h.bulk.UpdateArea)
		bulk.PATCH("/package", h.bulk.UpdatePackage)
	}

	registries := rg.Group(PathRegistries)
	{
		registries.GET("/snapshot", h.registries.GetSnapshot)
	}
}

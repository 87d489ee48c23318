package handler

import (
	"net/http"

	"github.com/smartmart/smartmart-api/internal/api/handler/router"
	"github.com/smartmart/smartmart-api/internal/usecases/cataloging"
	"github.com/smartmart/smartmart-api/internal/usecases/dashboarding"
	"github.com/smartmart/smartmart-api/internal/usecases/selling"
	"github.com/smartmart/smartmart-api/internal/usecases/summarizing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, summaryService summarizing.SummaryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/summaries",
			Method:  http.MethodGet,
			Handler: GetMonthlySummaries(summaryService),
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/categories",
			Method:  http.MethodPost,
			Handler: CreateCategory(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/next-id",
			Method:  http.MethodGet,
			Handler: NextProductID(service),
		},
		{
			Path:    "/v1/products/upload",
			Method:  http.MethodPost,
			Handler: UploadProductsCSV(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Sales(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/next-id",
			Method:  http.MethodGet,
			Handler: NextSaleID(service),
		},
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSalesCSV(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "inventory-management/internal/inventory/delivery/http"
	inventoryRepo "inventory-management/internal/inventory/repository/postgre"
	inventoryUC "inventory-management/internal/inventory/usecase"
)

// setupInventoryDomain initializes the inventory domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := inventoryRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := inventoryUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := inventoryHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/inventory/items
	inventoryHTTP.RegisterRoutes(api.Group("/inventory"), h)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}

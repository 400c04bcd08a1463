package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/handlers"
)

// requestTimeout bounds every database round trip through the request
// context. Sample-data generation runs thousands of sequential inserts, so it
// gets its own, much longer deadline.
const (
	requestTimeout = 10 * time.Second
	seedTimeout    = 5 * time.Minute
)

// New constructs the gin engine with all routes and middlewares applied.
func New(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.Default())

	api := r.Group("/", withTimeout(requestTimeout))

	// Health endpoints
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/healthz", func(c *gin.Context) {
		if err := db.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ph := handlers.NewProviderHandler(db)
	api.GET("/providers", ph.List)
	api.POST("/providers", ph.Create)
	api.GET("/providers/:id", ph.Get)
	api.PUT("/providers/:id", ph.Update)
	api.DELETE("/providers/:id", ph.Delete)

	prh := handlers.NewProductHandler(db)
	api.GET("/products", prh.List)
	api.POST("/products", prh.Create)
	api.GET("/products/:id", prh.Get)
	api.PUT("/products/:id", prh.Update)
	api.DELETE("/products/:id", prh.Delete)
	api.GET("/products/:id/orders", prh.Orders)
	api.GET("/product/lowStock/:quantity", prh.LowStock)

	ch := handlers.NewCategoryHandler(db)
	api.GET("/categories", ch.List)
	api.POST("/categories", ch.Create)
	api.GET("/categories/:id", ch.Get)
	api.PUT("/categories/:id", ch.Update)
	api.DELETE("/categories/:id", ch.Delete)

	pch := handlers.NewProductCategoryHandler(db)
	api.GET("/productCategory", pch.List)
	api.POST("/productCategory", pch.Create)
	api.DELETE("/productCategory", pch.Delete)
	api.GET("/productCategory/:id", pch.ByCategory)

	pph := handlers.NewProviderProductHandler(db)
	api.GET("/providerProduct", pph.List)
	api.POST("/providerProduct", pph.Create)
	api.DELETE("/providerProduct", pph.Delete)
	api.GET("/providerProduct/:id", pph.ByProvider)

	clh := handlers.NewClientHandler(db)
	api.GET("/clients", clh.List)
	api.POST("/clients", clh.Create)
	api.GET("/clients/:id", clh.Get)
	api.PUT("/clients/:id", clh.Update)
	api.DELETE("/clients/:id", clh.Delete)
	api.GET("/clients/:id/orders", clh.Orders)

	oh := handlers.NewOrderHandler(db)
	api.GET("/orders", oh.List)
	api.POST("/orders", oh.Create)
	api.GET("/orders/:id", oh.Get)
	api.PUT("/orders/:id", oh.Update)
	api.DELETE("/orders/:id", oh.Delete)
	api.GET("/ordersbydates", oh.ByDates)

	olh := handlers.NewOrderLineHandler(db)
	api.GET("/productOrders", olh.List)
	api.POST("/productOrders", olh.Create)
	api.PUT("/productOrders/:id", olh.Update)
	api.DELETE("/productOrders", olh.Delete)
	api.GET("/productOrders/:id", olh.ByOrder)

	sh := handlers.NewStatsHandler(db)
	api.GET("/stats", sh.MostOrdered)

	sdh := handlers.NewSampleDataHandler(db)
	r.POST("/sampleData", withTimeout(seedTimeout), sdh.Generate)

	return r
}

func withTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

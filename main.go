package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	posUseCase "pos/src/pos/application/usecase"
	"pos/src/pos/domain/pricing"
	posCache "pos/src/pos/infrastructure/cache"
	posController "pos/src/pos/infrastructure/controller"
	posPersistence "pos/src/pos/infrastructure/persistence"
	"pos/src/shared/infrastructure/transaction"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	// Cargar .env si existe (en producción las variables vienen del entorno)
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a pos_db: %s", connStr)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("❌ Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	// Comprobar la conexión
	if err = db.Ping(); err != nil {
		log.Fatalf("❌ Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Println("✅ Conexión a pos_db establecida con éxito")

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar módulo POS
	setupPOSModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor POS Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupPOSModule configura el módulo POS
func setupPOSModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo POS...")

	// Crear repositorios
	orderRepo := posPersistence.NewOrderPostgresRepository(db)
	catalogRepo := posPersistence.NewCatalogPostgresRepository(db)
	partnerRepo := posPersistence.NewPartnerPostgresRepository(db)
	posRepo := posPersistence.NewPOSPostgresRepository(db)

	// Manager de transacciones compartido por los casos de uso mutantes
	txManager := transaction.NewManager(db)

	// Cache acotado de resolución de productos
	cacheSize, err := strconv.Atoi(getEnv("PRODUCT_CACHE_SIZE", "512"))
	if err != nil || cacheSize <= 0 {
		cacheSize = 512
	}
	productCache, err := posCache.NewLRUProductCache(cacheSize)
	if err != nil {
		log.Fatalf("❌ Error al crear el cache de productos: %v", err)
	}

	// Resolver de precios de sólo lectura
	resolver := pricing.NewResolver(catalogRepo, partnerRepo)

	// Crear casos de uso
	assignPartnerUC := posUseCase.NewAssignBusinessPartnerUseCase(orderRepo, posRepo, partnerRepo, catalogRepo, resolver, txManager)
	createOrderUC := posUseCase.NewCreateOrderUseCase(orderRepo, posRepo, catalogRepo, assignPartnerUC, txManager)
	updateOrderUC := posUseCase.NewUpdateOrderUseCase(orderRepo, posRepo, catalogRepo, assignPartnerUC, txManager)
	deleteOrderUC := posUseCase.NewDeleteOrderUseCase(orderRepo, txManager)
	getOrderUC := posUseCase.NewGetOrderUseCase(orderRepo)
	listOrdersUC := posUseCase.NewListOrdersUseCase(orderRepo, posRepo, partnerRepo)
	addOrderLineUC := posUseCase.NewAddOrderLineUseCase(orderRepo, catalogRepo, resolver, txManager)
	updateOrderLineUC := posUseCase.NewUpdateOrderLineUseCase(orderRepo, catalogRepo, txManager)
	deleteOrderLineUC := posUseCase.NewDeleteOrderLineUseCase(orderRepo, catalogRepo, txManager)
	listOrderLinesUC := posUseCase.NewListOrderLinesUseCase(orderRepo)
	getProductPriceUC := posUseCase.NewGetProductPriceUseCase(catalogRepo, posRepo, partnerRepo, productCache, resolver)
	listProductPricesUC := posUseCase.NewListProductPricesUseCase(catalogRepo, posRepo, partnerRepo, resolver)
	getPointOfSaleUC := posUseCase.NewGetPointOfSaleUseCase(posRepo)
	listPointOfSalesUC := posUseCase.NewListPointOfSalesUseCase(posRepo)

	// Crear controladores
	orderCtrl := posController.NewOrderController(createOrderUC, updateOrderUC, deleteOrderUC, getOrderUC, listOrdersUC, assignPartnerUC, addOrderLineUC, updateOrderLineUC, deleteOrderLineUC, listOrderLinesUC)
	priceCtrl := posController.NewProductPriceController(getProductPriceUC, listProductPricesUC)
	terminalCtrl := posController.NewPointOfSaleController(getPointOfSaleUC, listPointOfSalesUC)

	// Registrar rutas
	orderCtrl.RegisterRoutes(router)
	priceCtrl.RegisterRoutes(router)
	terminalCtrl.RegisterRoutes(router)

	log.Println("Módulo POS configurado exitosamente")
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sinansouth/EnglishNet/internal/config"
	"github.com/sinansouth/EnglishNet/internal/database"
	"github.com/sinansouth/EnglishNet/internal/handlers"
	"github.com/sinansouth/EnglishNet/internal/middleware"
	"github.com/sinansouth/EnglishNet/internal/models"
	"github.com/sinansouth/EnglishNet/internal/services"
	"github.com/sinansouth/EnglishNet/internal/store"
)

// @title EnglishNet API
// @version 1.0
// @description Net-score tracking backend for an English tutoring classroom preparing students for the LGS foreign-language section
// @host localhost:8080
// @BasePath /
func main() {
	if len(os.Args) > 1 {
		handleCommand(os.Args[1])
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.Server.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		for _, allowedOrigin := range cfg.CORS.Origins {
			if origin == allowedOrigin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check - simple endpoint that doesn't require DB
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "englishnet-api"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "EnglishNet API", "status": "running"})
	})

	// Metrics
	if cfg.Monitoring.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Services
	entityStore := store.New(db)
	importService := services.NewImportService(entityStore)

	// Handlers
	classroomHandler := handlers.NewClassroomHandler(entityStore)
	studentHandler := handlers.NewStudentHandler(entityStore)
	examHandler := handlers.NewExamHandler(entityStore)
	resultHandler := handlers.NewResultHandler(entityStore)
	importHandler := handlers.NewImportHandler(importService)
	statsHandler := handlers.NewStatsHandler(entityStore)

	// Routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/classrooms", classroomHandler.List)
		v1.POST("/classrooms", classroomHandler.Create)
		v1.PUT("/classrooms/:id", classroomHandler.Update)

		v1.GET("/students", studentHandler.List)
		v1.GET("/students/:id", studentHandler.Get)
		v1.POST("/students", studentHandler.Create)
		v1.PUT("/students/:id", studentHandler.Update)
		v1.DELETE("/students/:id", studentHandler.Delete)
		v1.POST("/students/bulk-delete", studentHandler.BulkDelete)
		v1.GET("/students/:id/results", studentHandler.Results)

		v1.GET("/exams", examHandler.List)
		v1.POST("/exams", examHandler.Create)
		v1.PUT("/exams/:id", examHandler.Update)
		v1.DELETE("/exams/:id", examHandler.Delete)
		v1.GET("/exams/:id/results", examHandler.Results)

		v1.POST("/results", resultHandler.CreateOrUpdate)
		v1.DELETE("/results/:id", resultHandler.Delete)

		importGroup := v1.Group("/import")
		{
			importGroup.POST("/roster", importHandler.Roster)
			importGroup.POST("/results", importHandler.Results)
			importGroup.POST("/class-changes", importHandler.ClassChanges)
		}

		statsGroup := v1.Group("/stats")
		{
			statsGroup.GET("/overview", statsHandler.Overview)
			statsGroup.GET("/students/:id", statsHandler.Student)
			statsGroup.GET("/exams/:id", statsHandler.Exam)
			statsGroup.GET("/rankings", statsHandler.Rankings)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func handleCommand(cmd string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatal("Migration failed:", err)
		}
		log.Println("Migration completed successfully")

	case "seed-demo":
		seedDemo(db)

	default:
		log.Printf("Unknown command: %s", cmd)
	}
}

// seedDemo loads a small demo class through the same paste-import pipeline
// the dashboard uses, so the seeded rows carry computed nets and absence
// back-fills exactly like real imports would.
func seedDemo(db *gorm.DB) {
	var count int64
	db.Model(&models.Classroom{}).Count(&count)
	if count > 0 {
		log.Println("Demo data already exists")
		return
	}

	entityStore := store.New(db)
	importService := services.NewImportService(entityStore)

	roster := "Ahmet\tYılmaz\t8/A\n" +
		"Ayşe\tDemir\t8/A\n" +
		"Mehmet\tCan\t8/A\n" +
		"Zeynep\tKaya\t8/B\n" +
		"Elif\tŞahin\t8/B\n" +
		"Emre\tAydın\t8/B\n"

	summary, err := importService.ImportRoster(roster)
	if err != nil {
		log.Fatal("Failed to seed roster:", err)
	}
	log.Printf("Seeded %d students in %d classrooms", summary.Added, len(summary.NewClassrooms))

	exams := []models.ExamDefinition{
		{Name: "LGS Deneme 1", Date: "2026-03-14"},
		{Name: "LGS Deneme 2", Date: "2026-04-11"},
	}
	for i := range exams {
		if err := entityStore.CreateExamDefinition(&exams[i]); err != nil {
			log.Fatal("Failed to seed exam definition:", err)
		}
	}

	results := "LGS Deneme 1\tAhmet Yılmaz\t8\t2\n" +
		"LGS Deneme 1\tAyşe Demir\t6\t3\n" +
		"LGS Deneme 1\tZeynep Kaya\t9\t1\n" +
		"LGS Deneme 1\tElif Şahin\t7\t1\n" +
		"LGS Deneme 2\tAhmet Yılmaz\t9\t1\n" +
		"LGS Deneme 2\tMehmet Can\t5\t4\n" +
		"LGS Deneme 2\tZeynep Kaya\t10\t0\n" +
		"LGS Deneme 2\tAyşe Demir\t7\t2\n"

	summary, err = importService.ImportResults(results)
	if err != nil {
		log.Fatal("Failed to seed results:", err)
	}
	log.Printf("Seeded %d results, %d marked absent", summary.Added, summary.AutoAbsent)
}

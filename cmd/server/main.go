package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/hubcompliance/compliance-hub/internal/domain/fiber/handler"
	"github.com/hubcompliance/compliance-hub/internal/logger"
	"github.com/hubcompliance/compliance-hub/internal/middleware"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/service"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	level := slog.LevelInfo
	if appConfig.Env != "production" {
		level = slog.LevelDebug
	}
	logger.Setup(os.Stdout, level)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	companyRepo := repository.NewCompanyRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	securityRepo := repository.NewSecurityRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	wbRepo := repository.NewWhistleblowingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.Fatal(err)
	}
	email := service.NewEmailJSService()
	breach := service.NewDeHashedService()
	scanner := service.NewNessusService()

	companyUC := usecase.NewCompanyUsecase(companyRepo)
	treatmentUC := usecase.NewTreatmentUsecase(treatmentRepo, gemini)
	auditUC := usecase.NewAuditUsecase(auditRepo)
	securityUC := usecase.NewSecurityUsecase(securityRepo)
	vendorUC := usecase.NewVendorUsecase(vendorRepo, companyRepo, email)
	incidentUC := usecase.NewIncidentUsecase(incidentRepo)
	requestUC := usecase.NewRequestUsecase(requestRepo)
	documentUC := usecase.NewDocumentUsecase(documentRepo)
	assetUC := usecase.NewAssetUsecase(assetRepo, companyRepo, breach, scanner)
	wbUC := usecase.NewWhistleblowingUsecase(wbRepo, companyRepo, email)
	taskUC := usecase.NewTaskUsecase(taskRepo, companyRepo, email)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	dashboardUC := usecase.NewDashboardUsecase(treatmentRepo, auditRepo, securityRepo, vendorRepo, incidentRepo, requestRepo, taskRepo, wbRepo)

	handler.NewCompanyHandler(companyUC).RegisterRoutes(app)
	handler.NewTreatmentHandler(treatmentUC).RegisterRoutes(app)
	handler.NewAuditHandler(auditUC).RegisterRoutes(app)
	handler.NewSecurityHandler(securityUC).RegisterRoutes(app)
	handler.NewVendorHandler(vendorUC).RegisterRoutes(app)
	handler.NewIncidentHandler(incidentUC).RegisterRoutes(app)
	handler.NewRequestHandler(requestUC).RegisterRoutes(app)
	handler.NewDocumentHandler(documentUC).RegisterRoutes(app)
	handler.NewAssetHandler(assetUC).RegisterRoutes(app)
	handler.NewWhistleblowingHandler(wbUC).RegisterRoutes(app)
	handler.NewTaskHandler(taskUC).RegisterRoutes(app)
	handler.NewCourseHandler(courseUC).RegisterRoutes(app)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(app)

	reminderCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go taskUC.StartReminderLoop(reminderCtx, 1*time.Hour)

	slog.Info("server running", "port", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Company{},
		&model.DataCategory{},
		&model.DataSubject{},
		&model.Treatment{},
		&model.ChecklistQuestion{},
		&model.ChecklistAnswer{},
		&model.AuditCategory{},
		&model.AuditQuestion{},
		&model.AuditSession{},
		&model.AuditAnswer{},
		&model.SecurityControl{},
		&model.SecurityAudit{},
		&model.SecurityResponse{},
		&model.Vendor{},
		&model.VendorQuestion{},
		&model.VendorAnswer{},
		&model.VendorAttachment{},
		&model.Incident{},
		&model.CSIRTReferent{},
		&model.IncidentNotification{},
		&model.NotificationAttachment{},
		&model.DataSubjectRequest{},
		&model.DocumentCategory{},
		&model.DocumentTemplate{},
		&model.CompanyDocument{},
		&model.DocumentVersion{},
		&model.Asset{},
		&model.Software{},
		&model.MonitoredAsset{},
		&model.WhistleblowingReport{},
		&model.WhistleblowingAttachment{},
		&model.WhistleblowingConfig{},
		&model.Task{},
		&model.Course{},
		&model.CourseModule{},
		&model.Enrollment{},
		&model.ModuleProgress{},
		&model.Certificate{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

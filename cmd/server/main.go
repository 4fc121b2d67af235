package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"farmguard/internal/alert"
	alerthandler "farmguard/internal/alert/handler"
	"farmguard/internal/assessment"
	assessmenthandler "farmguard/internal/assessment/handler"
	"farmguard/internal/audit"
	"farmguard/internal/compliance"
	compliancehandler "farmguard/internal/compliance/handler"
	"farmguard/internal/dashboard"
	dashboardhandler "farmguard/internal/dashboard/handler"
	"farmguard/internal/identity"
	identityhandler "farmguard/internal/identity/handler"
	"farmguard/internal/jwttoken"
	"farmguard/internal/platform/config"
	"farmguard/internal/platform/httpserver"
	"farmguard/internal/platform/logger"
	"farmguard/internal/platform/metrics"
	platformredis "farmguard/internal/platform/redis"
	"farmguard/internal/profile"
	profilehandler "farmguard/internal/profile/handler"
	"farmguard/internal/storage/postgres"
	httptransport "farmguard/internal/transport/http"
	"farmguard/pkg/catalog"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Error("invalid catalog file", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		cat = loaded
	}

	var (
		userStore       identity.UserStore
		profileStore    profile.Store
		assessmentStore assessment.Store
		complianceStore compliance.Store
		alertStore      alert.Store
		auditStore      audit.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		userStore = postgres.NewUserStore(db)
		profileStore = postgres.NewProfileStore(db)
		assessmentStore = postgres.NewAssessmentStore(db)
		complianceStore = postgres.NewComplianceStore(db)
		alertStore = postgres.NewAlertStore(db)
		auditStore = postgres.NewAuditStore(db)
		log.Info("using postgres storage")
	} else {
		userStore = identity.NewInMemoryUserStore()
		profileStore = profile.NewInMemoryStore()
		assessmentStore = assessment.NewInMemoryStore()
		complianceStore = compliance.NewInMemoryStore()
		alertStore = alert.NewInMemoryStore()
		auditStore = audit.NewInMemoryStore()
		log.Info("using in-memory storage")
	}

	if err := alert.SeedSampleAlerts(context.Background(), alertStore); err != nil {
		log.Error("alert seeding failed", "error", err)
		os.Exit(1)
	}

	var revocation identity.TokenRevocationList = identity.NewMemoryTRL()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocation = identity.NewRedisTRL(redisClient.Client)
		log.Info("using redis token revocation list")
	}

	recorder := audit.NewRecorder(256, log)
	worker := audit.NewWorker(auditStore, recorder.Inbox(), log)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "farmguard", "farmguard-api")
	validator := jwttoken.NewMiddlewareAdapter(jwtService)

	identityService := identity.NewService(userStore, jwtService, revocation, cfg.TokenTTL,
		identity.WithAuditor(recorder), identity.WithMetrics(m))
	profileService := profile.NewService(profileStore, profile.WithAuditor(recorder))
	assessmentService := assessment.NewService(cat, assessmentStore, cfg.HistoryLimit,
		assessment.WithAuditor(recorder), assessment.WithMetrics(m))
	complianceService := compliance.NewService(cat, complianceStore,
		compliance.WithAuditor(recorder), compliance.WithMetrics(m))
	alertService := alert.NewService(alertStore)
	dashboardService := dashboard.NewService(assessmentService, complianceService, alertService, cfg.AlertSummaryN)

	router := httptransport.NewRouter(httptransport.Handlers{
		Identity:   identityhandler.New(identityService, log),
		Profile:    profilehandler.New(profileService, log),
		Assessment: assessmenthandler.New(assessmentService, log),
		Compliance: compliancehandler.New(complianceService, log),
		Alert:      alerthandler.New(alertService, log),
		Dashboard:  dashboardhandler.New(dashboardService, log),
	}, validator, revocation, m, log)

	srv := httpserver.New(cfg.Addr, router)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go func() {
		if err := worker.Run(workerCtx); err != nil && workerCtx.Err() == nil {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	log.Info("starting farmguard", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/buildsite/worksite-backend-go/internal/config"
	appHTTP "github.com/buildsite/worksite-backend-go/internal/handler/http"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/buildsite/worksite-backend-go/internal/pkg/jwt"
	"github.com/buildsite/worksite-backend-go/internal/repository/postgresql"
	companyService "github.com/buildsite/worksite-backend-go/internal/service/company"
	"github.com/buildsite/worksite-backend-go/internal/service/master"
	payrollService "github.com/buildsite/worksite-backend-go/internal/service/payroll"
	sessionService "github.com/buildsite/worksite-backend-go/internal/service/worksession"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	sessionRepo := postgresql.NewWorkSessionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	periodCalculator := payrollService.NewPeriodCalculator()
	sessionAggregator := payrollService.NewSessionAggregator()

	companySvc := companyService.NewCompanyService(companyRepo)
	masterSvc := master.NewMasterService(workerRepo, projectRepo)
	sessionSvc := sessionService.NewWorkSessionService(db, sessionRepo, workerRepo, projectRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, sessionRepo, periodCalculator, sessionAggregator)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	sessionHandler := appHTTP.NewWorkSessionHandler(sessionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		companyHandler,
		masterHandler,
		sessionHandler,
		payrollHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

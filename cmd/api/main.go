package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/asistenciapp/attendance-backend-go/internal/config"
	appHTTP "github.com/asistenciapp/attendance-backend-go/internal/handler/http"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/imagestore"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistenciapp/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistenciapp/attendance-backend-go/internal/service/attendance"
	authService "github.com/asistenciapp/attendance-backend-go/internal/service/auth"
	branchService "github.com/asistenciapp/attendance-backend-go/internal/service/branch"
	employeeService "github.com/asistenciapp/attendance-backend-go/internal/service/employee"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	adminUserRepo := postgresql.NewAdminUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var store imagestore.Store
	switch cfg.ImageStore.Type {
	case "local":
		store, err = imagestore.NewLocalStore(cfg.ImageStore.BasePath, cfg.ImageStore.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local image store:", err)
		}
	case "cloudinary":
		store = imagestore.NewCloudinaryStore(imagestore.CloudinaryConfig{
			CloudName:    cfg.ImageStore.CloudName,
			UploadPreset: cfg.ImageStore.UploadPreset,
			Folder:       cfg.ImageStore.Folder,
		})
	default:
		log.Fatal("Unsupported image store type: ", cfg.ImageStore.Type)
	}

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		store,
		cfg.Report.TimeZone,
		cfg.Report.DefaultPageSize,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, branchRepo)
	branchSvc := branchService.NewBranchService(branchRepo)
	authSvc := authService.NewAuthService(adminUserRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	branchHandler := appHTTP.NewBranchHandler(branchSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		branchHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"marketingsite/internal/config"
	"marketingsite/internal/database"
	"marketingsite/internal/domain"
	"marketingsite/internal/middleware"
	"marketingsite/internal/modules/auth"
	"marketingsite/internal/modules/blog"
	"marketingsite/internal/modules/casestudy"
	"marketingsite/internal/modules/contact"
	"marketingsite/internal/modules/image"
	"marketingsite/internal/modules/info"
	"marketingsite/internal/modules/mspservice"
	jwtsvc "marketingsite/internal/pkg/jwt"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.CaseStudy{},
		&domain.Image{},
		&domain.MSPService{},
		&domain.Info{},
		&domain.ContactSubmission{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	caseStudyRepo := repository.NewCaseStudyRepository(db)
	imageRepo := repository.NewImageRepository(db)
	mspServiceRepo := repository.NewMSPServiceRepository(db)
	infoRepo := repository.NewInfoRepository(db)
	submissionRepo := repository.NewContactSubmissionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	store := storage.NewStore(cfg.UploadDir, cfg.UploadURLPrefix)
	hub := contact.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	blogService := blog.NewService(blogRepo, store)
	blogHandler := blog.NewHandler(blogService, userRepo, cfg.PublicBaseURL)

	caseStudyService := casestudy.NewService(caseStudyRepo, store)
	caseStudyHandler := casestudy.NewHandler(caseStudyService, cfg.PublicBaseURL)

	imageService := image.NewService(imageRepo, store)
	imageHandler := image.NewHandler(imageService, userRepo, cfg.PublicBaseURL)

	mspService := mspservice.NewService(mspServiceRepo, store)
	mspHandler := mspservice.NewHandler(mspService, userRepo, cfg.PublicBaseURL)

	infoService := info.NewService(infoRepo, store)
	infoHandler := info.NewHandler(infoService, userRepo, cfg.PublicBaseURL)

	contactService := contact.NewService(submissionRepo, hub)
	contactHandler := contact.NewHandler(contactService, hub, j)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Static(cfg.UploadURLPrefix, cfg.UploadDir)

	authMW := middleware.Auth(j)

	authHandler.RegisterRoutes(r.Group("/auth"), authMW)
	blogHandler.RegisterRoutes(r.Group("/blog"), authMW)
	caseStudyHandler.RegisterRoutes(r.Group("/case-studies"), authMW)
	imageHandler.RegisterRoutes(r.Group("/img"), authMW)
	mspHandler.RegisterRoutes(r.Group("/msp-services"), authMW)
	infoHandler.RegisterRoutes(r.Group("/info"), authMW)
	contactHandler.RegisterRoutes(r.Group("/contact"), authMW)

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nothingsolutions/portfolio-backend/config"
	"github.com/nothingsolutions/portfolio-backend/internal/admin"
	httpapi "github.com/nothingsolutions/portfolio-backend/internal/api/http"
	apimw "github.com/nothingsolutions/portfolio-backend/internal/api/http/middleware"
	authmw "github.com/nothingsolutions/portfolio-backend/internal/auth/middleware"
	"github.com/nothingsolutions/portfolio-backend/internal/oauth"
	projhttp "github.com/nothingsolutions/portfolio-backend/internal/projects/http"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/repository"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/service"
	"github.com/nothingsolutions/portfolio-backend/internal/unlock"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Cfg         *config.Config
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.Cfg.Server.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	store := repository.NewFileStore(dep.Cfg.Content.Dir, dep.Cfg.Content.FallbackJSON)
	projectSvc := service.New(store)
	unlockSvc := unlock.New(dep.Redis, dep.Cfg.Unlock.Password, time.Duration(dep.Cfg.Unlock.TTLHours)*time.Hour)

	api := r.Group("/api/v1")
	api.Use(unlock.Gate(unlockSvc))

	projhttp.New(projectSvc).Register(api.Group("/projects"))
	unlock.NewHandler(unlockSvc).Register(api)

	relay := oauth.New(oauth.Config{
		ClientID:     dep.Cfg.OAuth.ClientID,
		ClientSecret: dep.Cfg.OAuth.ClientSecret,
		BaseURL:      dep.Cfg.OAuth.BaseURL,
	})
	relay.Register(r)

	adminGroup := r.Group("/admin")
	adminGroup.Use(authmw.BasicAuth(dep.Cfg.Admin.Password, dep.Cfg.Admin.Realm))
	admin.NewHandler(admin.DefaultCMSConfig(dep.Cfg.CMS.Repo, dep.Cfg.CMS.Branch, dep.Cfg.OAuth.BaseURL)).Register(adminGroup)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", unlock.TokenHeader, "X-Request-Id")
	return cfg
}

package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gedoc/internal/controllers"
	"gedoc/internal/repositories"
	"gedoc/internal/routes"
	"gedoc/internal/services"
	"gedoc/pkg/config"
	"gedoc/pkg/customvalidator"
	"gedoc/pkg/database/postgresql"
	"gedoc/pkg/filestorage"
	"gedoc/pkg/logger"
	"gedoc/pkg/middleware"
	"gedoc/pkg/service"
	"gedoc/pkg/utils"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()
	if cfg.JWT.SecretKey == "" {
		log.Fatal("JWT_SECRET_KEY não configurado")
	}

	ctx := context.Background()

	pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("falha na conexão com o PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	if err := postgresql.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal("falha nas migrações", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("falha na conexão com o Redis", zap.Error(err))
	}
	defer redisClient.Close()

	storage, err := newFileStorage(cfg)
	if err != nil {
		log.Fatal("falha ao inicializar armazenamento de arquivos", zap.Error(err))
	}

	jwtService := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	// Repositórios
	departamentoRepo := repositories.NewDepartamentoRepository(pool, log)
	tipoRepo := repositories.NewTipoDocumentoRepository(pool, log)
	categoriaRepo := repositories.NewCategoriaDocumentoRepository(pool, log)
	documentoRepo := repositories.NewDocumentoRepository(pool, log)
	usuarioRepo := repositories.NewUsuarioRepository(pool, log)
	permissionRepo := repositories.NewPermissionRepository(pool, log)
	relatorioRepo := repositories.NewRelatorioRepository(pool, log)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient, log)

	// Serviços
	permissionService := services.NewAuthPermissionService(permissionRepo, cacheRepo, log)
	authService := services.NewAuthService(usuarioRepo, cacheRepo, permissionService, jwtService, cfg.Auth, log)
	departamentoService := services.NewDepartamentoService(departamentoRepo, log)
	tipoService := services.NewTipoDocumentoService(tipoRepo, log)
	categoriaService := services.NewCategoriaDocumentoService(categoriaRepo, departamentoRepo, log)
	documentoService := services.NewDocumentoService(documentoRepo, departamentoRepo, tipoRepo, categoriaRepo, storage, log)
	usuarioService := services.NewUsuarioService(usuarioRepo, permissionService, log)
	relatorioService := services.NewRelatorioService(relatorioRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		log.Fatal("falha ao registrar validações", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	authMW := middleware.NewAuthMiddleware(jwtService, log)

	routes.InitRouter(e, routes.Controllers{
		Auth:               controllers.NewAuthController(authService, jwtService, log),
		Departamento:       controllers.NewDepartamentoController(departamentoService, log),
		CategoriaDocumento: controllers.NewCategoriaDocumentoController(categoriaService, log),
		TipoDocumento:      controllers.NewTipoDocumentoController(tipoService, log),
		Documento:          controllers.NewDocumentoController(documentoService, log),
		Usuario:            controllers.NewUsuarioController(usuarioService, log),
		Relatorio:          controllers.NewRelatorioController(relatorioService, log),
	}, authMW)

	log.Info("servidor iniciado", zap.String("porta", cfg.Server.Port))
	if err := e.Start(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		log.Fatal("servidor encerrado", zap.Error(err))
	}
}

// newFileStorage escolhe o driver conforme STORAGE_DRIVER.
func newFileStorage(cfg *config.Config) (filestorage.FileStorage, error) {
	switch cfg.Storage.Driver {
	case "local":
		return filestorage.NewLocalFileStorage(cfg.Storage.LocalPath, cfg.Storage.PublicURL)
	case "minio":
		return filestorage.NewMinIOFileStorage(cfg.MinIO)
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.Storage.Driver)
	}
}

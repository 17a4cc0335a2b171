package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/linkslog/scorecard-api/docs"
	v1 "github.com/linkslog/scorecard-api/internal/api/handler/v1"
	"github.com/linkslog/scorecard-api/internal/api/middleware"
	"github.com/linkslog/scorecard-api/internal/config"
	"github.com/linkslog/scorecard-api/internal/domain"
	"github.com/linkslog/scorecard-api/internal/repository"
	"github.com/linkslog/scorecard-api/internal/repository/dao"
	"github.com/linkslog/scorecard-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	courseHandler := s.initCourseHandler(db)
	userHandler := s.initUserHandler(db)
	s.MountHandlers(courseHandler, userHandler)

	return s
}

func (s *Server) initCourseHandler(db *gorm.DB) *v1.CourseHandler {
	courseDAO := dao.NewCourseDAO(db)
	repo := repository.NewCourseRepository(courseDAO)
	svc := service.NewCourseService(repo)
	handler := v1.NewCourseHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	courseRepo := repository.NewCourseRepository(dao.NewCourseDAO(db))
	roundRepo := repository.NewRoundRepository(dao.NewRoundDAO(db))

	userSvc := service.NewUserService(userRepo, domain.UnsettledHandicapCalculator{})
	roundSvc := service.NewRoundService(roundRepo, courseRepo, userRepo)
	handler := v1.NewUserHandler(userSvc, roundSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(courseHandler *v1.CourseHandler, userHandler *v1.UserHandler) {
	const basePath = "/api/v1"

	courses := s.Router.Group(basePath)
	{
		courses.GET("/courses", courseHandler.HandleListCourses)
		courses.POST("/courses", courseHandler.HandleCreateCourse)
		courses.GET("/courses/:courseID", courseHandler.HandleGetCourse)
		courses.PATCH("/courses/:courseID", courseHandler.HandleUpdateCourse)
		courses.GET("/courses/:courseID/holes", courseHandler.HandleListHoles)
		courses.POST("/courses/:courseID/holes", courseHandler.HandleCreateHoles)
		courses.GET("/courses/:courseID/holes/:holeID", courseHandler.HandleGetHole)
		courses.PATCH("/courses/:courseID/holes/:holeID", courseHandler.HandleUpdateHole)
		courses.GET("/courses/:courseID/tees", courseHandler.HandleListTees)
		courses.POST("/courses/:courseID/tees", courseHandler.HandleCreateTee)
		courses.GET("/courses/:courseID/tees/:teeID", courseHandler.HandleGetTee)
		courses.PATCH("/courses/:courseID/tees/:teeID", courseHandler.HandleUpdateTee)
		courses.GET("/courses/:courseID/scorecard", courseHandler.HandleGetScorecard)
		courses.POST("/courses/:courseID/scorecard", courseHandler.HandleCreateScorecard)
	}

	users := s.Router.Group(basePath)
	{
		users.POST("/users", userHandler.HandleCreateUser)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.GET("/users/:userID/rounds", userHandler.HandleListRounds)
		users.POST("/users/:userID/rounds", userHandler.HandleCreateRound)
		users.GET("/users/:userID/rounds/:roundID", userHandler.HandleGetRound)
		users.PATCH("/users/:userID/rounds/:roundID", userHandler.HandleUpdateRound)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Golf Scorecard API"
	docs.SwaggerInfo.Description = "API for recording golf courses, scorecards and players' rounds."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

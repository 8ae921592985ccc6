package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gruposcout/tropa-api/docs"
	v1 "github.com/gruposcout/tropa-api/internal/api/handler/v1"
	"github.com/gruposcout/tropa-api/internal/api/middleware"
	"github.com/gruposcout/tropa-api/internal/config"
	"github.com/gruposcout/tropa-api/internal/repository"
	"github.com/gruposcout/tropa-api/internal/repository/dao"
	"github.com/gruposcout/tropa-api/internal/service"
	"github.com/gruposcout/tropa-api/internal/workflow"
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

	authHandler := s.initAuthHandler(db)
	programHandler := s.initProgramHandler(db)
	rankingHandler := s.initRankingHandler(db)
	scoreHandler := s.initScoreHandler(db)
	attendanceHandler := s.initAttendanceHandler(db)
	unitHandler := s.initUnitHandler(db)
	goldenBookHandler := s.initGoldenBookHandler(db)
	workflowHandler := s.initWorkflowHandler(db)
	s.MountHandlers(authHandler, programHandler, rankingHandler, scoreHandler, attendanceHandler, unitHandler, goldenBookHandler, workflowHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initProgramHandler(db *gorm.DB) v1.ProgramHandler {
	programDAO := dao.NewProgramDAO(db)
	repo := repository.NewProgramRepository(programDAO)
	svc := service.NewProgramService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewProgramHandler(svc, uSvc)

	return handler
}

func (s *Server) initRankingHandler(db *gorm.DB) v1.RankingHandler {
	scoreRepo := repository.NewScoreRepository(dao.NewScoreDAO(db))
	programRepo := repository.NewProgramRepository(dao.NewProgramDAO(db))
	unitRepo := repository.NewUnitRepository(dao.NewUnitDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))

	svc := service.NewRankingService(scoreRepo, programRepo)
	programSvc := service.NewProgramService(programRepo)
	rosterSvc := service.NewAttendanceService(attendanceRepo, unitRepo, programRepo)
	handler := v1.NewRankingHandler(svc, programSvc, rosterSvc)

	return handler
}

func (s *Server) initScoreHandler(db *gorm.DB) v1.ScoreHandler {
	scoreRepo := repository.NewScoreRepository(dao.NewScoreDAO(db))
	programRepo := repository.NewProgramRepository(dao.NewProgramDAO(db))
	svc := service.NewScoreService(scoreRepo, programRepo)
	handler := v1.NewScoreHandler(svc)

	return handler
}

func (s *Server) initAttendanceHandler(db *gorm.DB) v1.AttendanceHandler {
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	unitRepo := repository.NewUnitRepository(dao.NewUnitDAO(db))
	programRepo := repository.NewProgramRepository(dao.NewProgramDAO(db))
	svc := service.NewAttendanceService(attendanceRepo, unitRepo, programRepo)
	handler := v1.NewAttendanceHandler(svc)

	return handler
}

func (s *Server) initUnitHandler(db *gorm.DB) v1.UnitHandler {
	unitRepo := repository.NewUnitRepository(dao.NewUnitDAO(db))
	svc := service.NewUnitService(unitRepo)
	handler := v1.NewUnitHandler(svc)

	return handler
}

func (s *Server) initGoldenBookHandler(db *gorm.DB) v1.GoldenBookHandler {
	repo := repository.NewGoldenBookRepository(dao.NewGoldenBookDAO(db))
	svc := service.NewGoldenBookService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewGoldenBookHandler(svc, uSvc)

	return handler
}

func (s *Server) initWorkflowHandler(db *gorm.DB) v1.WorkflowHandler {
	programRepo := repository.NewProgramRepository(dao.NewProgramDAO(db))
	unitRepo := repository.NewUnitRepository(dao.NewUnitDAO(db))
	scoreRepo := repository.NewScoreRepository(dao.NewScoreDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))

	programSvc := service.NewProgramService(programRepo)
	scoreSvc := service.NewScoreService(scoreRepo, programRepo)
	rankingSvc := service.NewRankingService(scoreRepo, programRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, unitRepo, programRepo)

	store := workflow.NewStore(programSvc, unitRepo, scoreSvc, rankingSvc, attendanceSvc)
	handler := v1.NewWorkflowHandler(store)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler v1.AuthHandler,
	programHandler v1.ProgramHandler,
	rankingHandler v1.RankingHandler,
	scoreHandler v1.ScoreHandler,
	attendanceHandler v1.AttendanceHandler,
	unitHandler v1.UnitHandler,
	goldenBookHandler v1.GoldenBookHandler,
	workflowHandler v1.WorkflowHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/programs", programHandler.HandleListPrograms)
		protected.POST("/programs", programHandler.HandleCreateProgram)
		protected.GET("/programs/:programID", programHandler.HandleGetProgram)
		protected.PUT("/programs/:programID", programHandler.HandleUpdateProgram)
		protected.DELETE("/programs/:programID", programHandler.HandleDeleteProgram)

		protected.GET("/programs/:programID/ranking", rankingHandler.HandleGetRanking)
		protected.GET("/programs/:programID/ranking/export", rankingHandler.HandleExportRanking)

		protected.GET("/activities/:activityID/scores", scoreHandler.HandleGetScores)
		protected.PUT("/activities/:activityID/scores", scoreHandler.HandleSaveScores)

		protected.GET("/programs/:programID/attendance", attendanceHandler.HandleGetAttendance)
		protected.POST("/attendance", attendanceHandler.HandleSaveAttendance)

		protected.GET("/units", unitHandler.HandleListUnits)
		protected.GET("/members", unitHandler.HandleListMembers)

		protected.GET("/goldenbook", goldenBookHandler.HandleListEntries)
		protected.POST("/goldenbook", goldenBookHandler.HandleCreateEntry)
		protected.GET("/goldenbook/:entryID", goldenBookHandler.HandleGetEntry)
		protected.PUT("/goldenbook/:entryID", goldenBookHandler.HandleUpdateEntry)
		protected.DELETE("/goldenbook/:entryID", goldenBookHandler.HandleDeleteEntry)

		protected.POST("/workflows/scoring", workflowHandler.HandleCreateScoringSession)
		protected.GET("/workflows/scoring/:sessionID", workflowHandler.HandleGetScoringSession)
		protected.POST("/workflows/scoring/:sessionID/program", workflowHandler.HandleScoringSelectProgram)
		protected.POST("/workflows/scoring/:sessionID/activity", workflowHandler.HandleScoringSelectActivity)
		protected.POST("/workflows/scoring/:sessionID/score", workflowHandler.HandleScoringSetScore)
		protected.POST("/workflows/scoring/:sessionID/save", workflowHandler.HandleScoringSave)
		protected.POST("/workflows/scoring/:sessionID/back", workflowHandler.HandleScoringBack)
		protected.POST("/workflows/attendance", workflowHandler.HandleCreateAttendanceSession)
		protected.GET("/workflows/attendance/:sessionID", workflowHandler.HandleGetAttendanceSession)
		protected.POST("/workflows/attendance/:sessionID/program", workflowHandler.HandleAttendanceSelectProgram)
		protected.POST("/workflows/attendance/:sessionID/cycle", workflowHandler.HandleAttendanceCycleStatus)
		protected.POST("/workflows/attendance/:sessionID/save", workflowHandler.HandleAttendanceSave)
		protected.POST("/workflows/attendance/:sessionID/back", workflowHandler.HandleAttendanceBack)
		protected.DELETE("/workflows/:sessionID", workflowHandler.HandleDeleteSession)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Grupo Scout API"
	docs.SwaggerInfo.Description = "Weekly programs, unit scoring and attendance for a scout group."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

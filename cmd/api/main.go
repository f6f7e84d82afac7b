package main

import (
	"context"
	"os"
	"time"

	"skillhub/internal/domain/policy"
	"skillhub/internal/domain/sqlite"
	"skillhub/internal/domain/sqlite/repository"
	"skillhub/internal/http/handler"
	custommw "skillhub/internal/http/middleware"
	cognitoclient "skillhub/internal/infrastructure/aws/cognito"
	"skillhub/internal/service"
	"skillhub/internal/utils"
	"skillhub/internal/utils/uid"
	"skillhub/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

const envVarsPrefix = "/skillhub/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(1)

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Cognito publishes its signing keys per pool; tokens are verified locally
	if err := utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_USER_POOL_ID")); err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Gettings repos
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, cogClient, policy.NewUserPolicy())
	projectService := service.NewProjectService(projectRepo, policy.NewProjectPolicy())
	applicationService := service.NewApplicationService(applicationRepo, projectRepo, policy.NewApplicationPolicy())
	courseService := service.NewCourseService(courseRepo, policy.NewCoursePolicy())
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo)
	commentService := service.NewCommentService(commentRepo, projectRepo, courseRepo, policy.NewCommentPolicy())

	// Gettings handlers
	userRoutes := handler.NewUserDefault(userService, validate)
	projectRoutes := handler.NewProjectDefault(projectService, validate)
	applicationRoutes := handler.NewApplicationDefault(applicationService)
	courseRoutes := handler.NewCourseDefault(courseService, enrollmentService, validate)
	commentRoutes := handler.NewCommentDefault(commentService, validate)

	auth := custommw.NewAuthMiddleware(&custommw.AuthMiddlewareConfig{UserRepo: userRepo})

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(custommw.NewThrottleMiddleware(custommw.ThrottleConfig{
		Rate:  rate.Limit(10),
		Burst: 20,
		TTL:   3 * time.Minute,
	}))

	// Users
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)
	e.GET("/api/users/:id", userRoutes.GetUser, auth)
	e.PATCH("/api/users/:id", userRoutes.UpdateUser, auth)

	// Projects
	e.GET("/api/projects", projectRoutes.GetProjects)
	e.GET("/api/projects/:id", projectRoutes.GetProject)
	e.POST("/api/projects", projectRoutes.CreateProject, auth)
	e.PATCH("/api/projects/:id", projectRoutes.UpdateProject, auth)
	e.DELETE("/api/projects/:id", projectRoutes.DeleteProject, auth)

	// Applications
	e.POST("/api/projects/:id/applications", applicationRoutes.Apply, auth)
	e.DELETE("/api/projects/:id/applications", applicationRoutes.Quit, auth)
	e.GET("/api/projects/:id/applications", applicationRoutes.GetProjectApplications, auth)
	e.POST("/api/applications/:id/accept", applicationRoutes.Accept, auth)
	e.POST("/api/applications/:id/reject", applicationRoutes.Reject, auth)

	// Courses
	e.GET("/api/courses", courseRoutes.GetCourses)
	e.GET("/api/courses/:id", courseRoutes.GetCourse)
	e.POST("/api/courses", courseRoutes.CreateCourse, auth)
	e.PATCH("/api/courses/:id", courseRoutes.UpdateCourse, auth)
	e.DELETE("/api/courses/:id", courseRoutes.DeleteCourse, auth)

	// Enrollments
	e.POST("/api/courses/:id/enrollments", courseRoutes.Enroll, auth)
	e.DELETE("/api/courses/:id/enrollments", courseRoutes.Withdraw, auth)

	// Comments
	e.GET("/api/topics/:kind/:id/comments", commentRoutes.GetTopicComments)
	e.POST("/api/topics/:kind/:id/comments", commentRoutes.CreateComment, auth)
	e.PATCH("/api/comments/:id", commentRoutes.UpdateComment, auth)
	e.DELETE("/api/comments/:id", commentRoutes.DeleteComment, auth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}

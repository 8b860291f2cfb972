package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/avanee-labs/guarani_api/docs"
	"github.com/avanee-labs/guarani_api/services/handlers"
	"github.com/avanee-labs/guarani_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	rateLimitSvc *RateLimitService

	glossaryHandler *handlers.GlossaryHandler
	lessonHandler   *handlers.LessonHandler
	progressHandler *handlers.ProgressHandler
	exerciseHandler *handlers.ExerciseHandler
	chatHandler     *handlers.ChatHandler
	mediaHandler    *handlers.MediaHandler
	adminHandler    *handlers.AdminHandler

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)

	contentSvc := svc.Service(CONTENT_SVC).(*ContentService)
	exerciseSvc := svc.Service(EXERCISE_SVC).(*ExerciseService)
	progressSvc := svc.Service(PROGRESS_SVC).(*ProgressService)
	chatSvc := svc.Service(CHAT_SVC).(*ChatService)
	mediaSvc := svc.Service(MEDIA_SVC).(*MediaService)
	monitoringSvc := svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.glossaryHandler = handlers.NewGlossaryHandler(contentSvc)
	svc.lessonHandler = handlers.NewLessonHandler(contentSvc)
	svc.progressHandler = handlers.NewProgressHandler(progressSvc)
	svc.exerciseHandler = handlers.NewExerciseHandler(exerciseSvc)
	svc.chatHandler = handlers.NewChatHandler(chatSvc)
	svc.mediaHandler = handlers.NewMediaHandler(mediaSvc)
	svc.adminHandler = handlers.NewAdminHandler(contentSvc)

	svc.app = fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    30 << 20,
		ErrorHandler: svc.errorHandler,
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	svc.app.Use(MonitoringMiddleware(monitoringSvc))

	svc.registerRoutes()

	log.Printf("HTTP server listening on :%d", svc.port)
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) registerRoutes() {
	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := svc.app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	// Public catalogue
	v1.Get("/glossary", svc.glossaryHandler.SearchGlossary)
	v1.Get("/glossary/categories", svc.glossaryHandler.GetCategories)
	v1.Get("/glossary/:termId", svc.glossaryHandler.GetGlossaryTerm)
	v1.Get("/lessons", svc.lessonHandler.ListLessons)
	v1.Get("/lessons/:lessonId", svc.lessonHandler.GetLesson)

	// Per-user state
	auth := v1.Group("", svc.authSvc.RequiredAuth())
	auth.Post("/progress/start_lesson", svc.progressHandler.StartLesson)
	auth.Post("/progress/complete_lesson", svc.progressHandler.CompleteLesson)
	auth.Get("/dashboard", svc.progressHandler.GetDashboard)
	auth.Post("/exercises/:exerciseId/submit", svc.exerciseHandler.SubmitExercise)
	auth.Post("/chat", svc.rateLimitSvc.Limit("chat", 30, time.Minute), svc.chatHandler.SendMessage)
	auth.Get("/chat/history/:sessionId", svc.chatHandler.GetHistory)

	// Authoring
	admin := v1.Group("/admin", svc.authSvc.RequiredAuth())
	admin.Post("/glossary", svc.adminHandler.CreateGlossaryTerm)
	admin.Put("/glossary/:termId", svc.adminHandler.UpdateGlossaryTerm)
	admin.Delete("/glossary/:termId", svc.adminHandler.DeleteGlossaryTerm)
	admin.Post("/glossary/:termId/audio", svc.mediaHandler.UploadGlossaryAudio)
	admin.Post("/lessons", svc.adminHandler.CreateLesson)
	admin.Get("/lessons/:lessonId", svc.adminHandler.GetLesson)
	admin.Put("/lessons/:lessonId", svc.adminHandler.UpdateLesson)
	admin.Delete("/lessons/:lessonId", svc.adminHandler.DeleteLesson)
	admin.Post("/lessons/:lessonId/cover", svc.mediaHandler.UploadLessonCover)
	admin.Post("/lessons/:lessonId/content", svc.adminHandler.CreateContentBlock)
	admin.Delete("/content/:blockId", svc.adminHandler.DeleteContentBlock)
	admin.Post("/content/:blockId/media", svc.mediaHandler.UploadContentBlockMedia)
	admin.Post("/lessons/:lessonId/exercises", svc.adminHandler.CreateExercise)
	admin.Post("/exercises/:exerciseId/questions", svc.adminHandler.CreateQuestion)
	admin.Delete("/exercises/:exerciseId", svc.adminHandler.DeleteExercise)
	admin.Delete("/questions/:questionId", svc.adminHandler.DeleteQuestion)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("Unhandled request error")
	return shared.ResponseInternalError(c, nil)
}

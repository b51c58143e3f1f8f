package main

import (
	"log"
	"net/http"
	"time"

	"studyhub-service/internal/config"
	"studyhub-service/internal/db"
	"studyhub-service/internal/event"
	"studyhub-service/internal/handlers"
	"studyhub-service/internal/repository"
	"studyhub-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.ServiceConfig
	db.InitMongo(cfg.MongoDB.URI)
	defer db.CloseMongo()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB.Database)

	// Decks and study sessions
	deckRepo := repository.NewDeckRepository(database)
	deckService := service.NewDeckService(deckRepo)
	deckHandler := handlers.NewDeckHandler(deckService)
	studyService := service.NewStudyService(deckRepo)
	studyHandler := handlers.NewStudyHandler(studyService)

	// Quizzes and adaptive quiz sessions
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	learnerRepo := repository.NewLearnerRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	resultRepo := repository.NewResultRepository(database)
	quizSessionService := service.NewQuizSessionService(quizRepo, learnerRepo, answerRepo, resultRepo)
	quizSessionHandler := handlers.NewQuizSessionHandler(quizSessionService)

	resultService := service.NewResultService(resultRepo)
	resultHandler := handlers.NewResultHandler(resultService)

	// Habits
	habitRepo := repository.NewHabitRepository(database)
	habitService := service.NewHabitService(habitRepo)
	habitHandler := handlers.NewHabitHandler(habitService)

	// Reading log
	bookRepo := repository.NewBookRepository(database)
	readingService := service.NewReadingService(bookRepo)
	readingHandler := handlers.NewReadingHandler(readingService)

	// Course catalog
	courseRepo := repository.NewCourseRepository(database)
	courseService := service.NewCourseService(courseRepo)
	courseHandler := handlers.NewCourseHandler(courseService)

	// Public routes - decks and quizzes are browsable without auth
	publicDeck := r.Group("/public/studyhub/deck")
	{
		publicDeck.GET("/", func(c *gin.Context) {
			deckHandler.GetDecks(c)
			if publisher != nil {
				publisher.Publish("deck.list", nil)
			}
		})
		publicDeck.GET("/:id", func(c *gin.Context) {
			deckHandler.GetDeck(c)
			if publisher != nil {
				publisher.Publish("deck.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicQuiz := r.Group("/public/studyhub/quiz")
	{
		publicQuiz.GET("/", func(c *gin.Context) {
			quizHandler.GetQuizzes(c)
			if publisher != nil {
				publisher.Publish("quiz.list", gin.H{"category": c.Query("category")})
			}
		})
		publicQuiz.GET("/:id", func(c *gin.Context) {
			quizHandler.GetQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicCourse := r.Group("/public/studyhub/course")
	{
		publicCourse.GET("/", courseHandler.GetCourses)
		publicCourse.GET("/:id", courseHandler.GetCourse)
	}

	// Protected routes require the X-User-ID header set by the gateway
	protected := r.Group("/protected/studyhub")
	protected.Use(func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	protectedDeck := protected.Group("/deck")
	{
		protectedDeck.POST("/", deckHandler.CreateDeck)
		protectedDeck.PUT("/:id", deckHandler.UpdateDeck)
		protectedDeck.POST("/:id/card", deckHandler.AddCard)
		protectedDeck.DELETE("/:id", deckHandler.DeleteDeck)
	}

	protectedQuiz := protected.Group("/quiz")
	{
		protectedQuiz.POST("/", quizHandler.CreateQuiz)
		protectedQuiz.PUT("/:id", quizHandler.UpdateQuiz)
		protectedQuiz.DELETE("/:id", quizHandler.DeleteQuiz)
	}

	protectedCourse := protected.Group("/course")
	{
		protectedCourse.POST("/", courseHandler.CreateCourse)
	}

	protectedStudy := protected.Group("/study")
	{
		protectedStudy.POST("/", func(c *gin.Context) {
			studyHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("study.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedStudy.GET("/:id", studyHandler.GetStatus)
		protectedStudy.POST("/:id/response", func(c *gin.Context) {
			studyHandler.RecordResponse(c)
			if publisher != nil {
				publisher.Publish("study.response.recorded", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedStudy.GET("/:id/summary", studyHandler.GetSummary)
		protectedStudy.DELETE("/:id", studyHandler.EndSession)
	}

	protectedSession := protected.Group("/session")
	{
		protectedSession.POST("/", func(c *gin.Context) {
			quizSessionHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedSession.GET("/:id/status", quizSessionHandler.GetStatus)
		protectedSession.POST("/:id/answer", func(c *gin.Context) {
			quizSessionHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("quiz.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedSession.GET("/:id/next", quizSessionHandler.NextQuestion)
		protectedSession.POST("/:id/submit", func(c *gin.Context) {
			quizSessionHandler.SubmitSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.completed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedSession.GET("/:id/result", quizSessionHandler.GetResult)
		protectedSession.DELETE("/:id", quizSessionHandler.AbandonSession)
	}

	protectedResult := protected.Group("/result")
	{
		protectedResult.GET("/", resultHandler.GetMyResults)
		protectedResult.GET("/session/:sessionId", resultHandler.GetResultBySession)
		protectedResult.GET("/quiz/:quizId", resultHandler.GetResultsByQuiz)
	}

	protectedHabit := protected.Group("/habit")
	{
		protectedHabit.GET("/", habitHandler.GetHabits)
		protectedHabit.POST("/", habitHandler.CreateHabit)
		protectedHabit.POST("/:id/toggle", func(c *gin.Context) {
			habitHandler.ToggleCompletion(c)
			if publisher != nil {
				publisher.Publish("habit.toggled", gin.H{
					"habit_id":  c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedHabit.DELETE("/:id", habitHandler.DeleteHabit)
		protectedHabit.GET("/stats", habitHandler.GetStats)
	}

	protectedReading := protected.Group("/reading")
	{
		protectedReading.GET("/", readingHandler.GetBooks)
		protectedReading.POST("/", readingHandler.AddBook)
		protectedReading.PUT("/:id", readingHandler.UpdateBook)
		protectedReading.DELETE("/:id", readingHandler.DeleteBook)
		protectedReading.GET("/stats", readingHandler.GetStats)
	}

	r.Run(":" + cfg.Server.Port)
}

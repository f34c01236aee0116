package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"roommate-service/internal/cache"
	"roommate-service/internal/compat"
	"roommate-service/internal/db"
	"roommate-service/internal/event"
	"roommate-service/internal/handlers"
	"roommate-service/internal/repository"
	"roommate-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// Redis score cache, optional
	var scoreCache *cache.ScoreCache
	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		rdb, err := db.NewRedisClient(context.Background(), redisURI)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		scoreCache = cache.NewScoreCache(rdb, 10*time.Minute)
	} else {
		log.Println("Redis not configured, compatibility scores will not be cached")
	}

	// RabbitMQ event publisher, optional
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
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

	database := db.Client.Database("roommate_service")
	compatConfig := compatConfigFromEnv()

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	if err := questionService.SeedDefaultCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to seed question catalog: %v", err)
	}

	// Profiles
	profileRepo := repository.NewProfileRepository(database)
	profileService := service.NewProfileService(profileRepo, scoreCache)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Matching
	matchService := service.NewMatchService(profileRepo, questionRepo, scoreCache, compatConfig)
	matchHandler := handlers.NewMatchHandler(matchService)

	publicQuestion := r.Group("/public/roommate/question")
	{
		publicQuestion.GET("/", func(c *gin.Context) {
			questionHandler.ListQuestions(c)
			if publisher != nil {
				publisher.Publish("question.list", nil)
			}
		})
		publicQuestion.GET("/:id", func(c *gin.Context) {
			questionHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("question.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	protectedQuestion := r.Group("/protected/roommate/question")
	protectedQuestion.Use(requireUserID())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	publicProfile := r.Group("/public/roommate/profile")
	{
		publicProfile.GET("/", func(c *gin.Context) {
			profileHandler.ListProfiles(c)
			if publisher != nil {
				publisher.Publish("roommate.profile.list", nil)
			}
		})
		publicProfile.GET("/:id", func(c *gin.Context) {
			profileHandler.GetProfile(c)
			if publisher != nil {
				publisher.Publish("roommate.profile.view", gin.H{"id": c.Param("id")})
			}
		})
	}

	protectedProfile := r.Group("/protected/roommate/profile")
	protectedProfile.Use(requireUserID())
	{
		protectedProfile.GET("/me", profileHandler.GetOwnProfile)
		protectedProfile.POST("/", func(c *gin.Context) {
			profileHandler.CreateProfile(c)
			if publisher != nil {
				publisher.Publish("roommate.profile.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedProfile.PUT("/", func(c *gin.Context) {
			profileHandler.UpdateProfile(c)
			if publisher != nil {
				publisher.Publish("roommate.profile.updated", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedProfile.POST("/answers", func(c *gin.Context) {
			profileHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("roommate.answer.submitted", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedProfile.PUT("/dealbreakers", func(c *gin.Context) {
			profileHandler.SetDealBreakers(c)
			if publisher != nil {
				publisher.Publish("roommate.dealbreakers.updated", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedMatch := r.Group("/protected/roommate/match")
	protectedMatch.Use(requireUserID())
	{
		protectedMatch.GET("/", func(c *gin.Context) {
			matchHandler.ListMatches(c)
			if publisher != nil {
				publisher.Publish("match.list_requested", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedMatch.GET("/:candidateId", func(c *gin.Context) {
			matchHandler.GetMatch(c)
			if publisher != nil {
				publisher.Publish("match.computed", gin.H{
					"user_id":      c.GetHeader("X-User-ID"),
					"candidate_id": c.Param("candidateId"),
					"timestamp":    time.Now(),
				})
			}
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "6660"
	}
	r.Run(":" + port)
}

// requireUserID trusts the gateway to authenticate and forward the
// caller's identity.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// compatConfigFromEnv starts from the reference tunables and applies
// any COMPAT_* overrides.
func compatConfigFromEnv() compat.Config {
	cfg := compat.DefaultConfig()
	cfg.ImportanceWeights.High = envInt("COMPAT_WEIGHT_HIGH", cfg.ImportanceWeights.High)
	cfg.ImportanceWeights.Medium = envInt("COMPAT_WEIGHT_MEDIUM", cfg.ImportanceWeights.Medium)
	cfg.ImportanceWeights.Low = envInt("COMPAT_WEIGHT_LOW", cfg.ImportanceWeights.Low)
	cfg.DealBreakerPenalty = envInt("COMPAT_DEAL_BREAKER_PENALTY", cfg.DealBreakerPenalty)
	cfg.IncompatibleLifestylePenalty = envInt("COMPAT_LIFESTYLE_PENALTY", cfg.IncompatibleLifestylePenalty)
	cfg.MinimumCompatibilityScore = envInt("COMPAT_MINIMUM_SCORE", cfg.MinimumCompatibilityScore)
	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return value
}

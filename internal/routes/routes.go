package routes

import (
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	User       *handlers.UserHandler
	Streak     *handlers.StreakHandler
	Food       *handlers.FoodHandler
	Exercise   *handlers.ExerciseHandler
	Weight     *handlers.WeightHandler
	Water      *handlers.WaterHandler
	CustomFood *handlers.CustomFoodHandler
	Meal       *handlers.MealHandler
	Digest     *handlers.DigestHandler
}

func Setup(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no identity required)
	api.Get("/health", h.Health.Check)

	// User, settings, onboarding
	api.Get("/user", h.User.GetUser)
	api.Post("/user", h.User.CreateUser)
	api.Put("/user", h.User.UpdateUser)
	api.Post("/onboarding", h.User.Onboarding)
	api.Post("/tdee", h.User.CalculateTDEE)

	// Streak
	api.Get("/streak", h.Streak.GetStreak)

	// Food logging and lookup. Static segments are registered before /:id so
	// Fiber doesn't swallow them as parameters.
	food := api.Group("/food")
	food.Get("/search", h.Food.Search)
	food.Get("/barcode", h.Food.Barcode)
	food.Post("/resolve", h.Food.Resolve)
	food.Post("/nlp", h.Food.Estimate)
	food.Get("/", h.Food.ListEntries)
	food.Post("/", h.Food.CreateEntry)
	food.Put("/:id", h.Food.UpdateEntry)
	food.Delete("/:id", h.Food.DeleteEntry)

	// Exercise
	exercise := api.Group("/exercise")
	exercise.Post("/estimate", h.Exercise.Estimate)
	exercise.Get("/", h.Exercise.ListEntries)
	exercise.Post("/", h.Exercise.CreateEntry)
	exercise.Put("/:id", h.Exercise.UpdateEntry)
	exercise.Delete("/:id", h.Exercise.DeleteEntry)

	// Weight
	weight := api.Group("/weight")
	weight.Get("/", h.Weight.ListEntries)
	weight.Post("/", h.Weight.CreateEntry)
	weight.Put("/:id", h.Weight.UpdateEntry)
	weight.Delete("/:id", h.Weight.DeleteEntry)

	// Water
	water := api.Group("/water")
	water.Get("/", h.Water.ListEntries)
	water.Post("/", h.Water.CreateEntry)
	water.Delete("/:id", h.Water.DeleteEntry)

	// Custom foods
	customFoods := api.Group("/custom-foods")
	customFoods.Get("/", h.CustomFood.List)
	customFoods.Post("/", h.CustomFood.Create)
	customFoods.Put("/:id", h.CustomFood.Update)
	customFoods.Delete("/:id", h.CustomFood.Delete)

	// Saved meals
	meals := api.Group("/meals")
	meals.Get("/", h.Meal.List)
	meals.Post("/", h.Meal.Create)
	meals.Get("/:id", h.Meal.Get)
	meals.Put("/:id", h.Meal.Update)
	meals.Delete("/:id", h.Meal.Delete)
	meals.Post("/:id/log", h.Meal.Log)

	// Digests
	digest := api.Group("/digest")
	digest.Get("/", h.Digest.History)
	digest.Post("/generate", h.Digest.Generate)
}

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/tms-recovery/backend/internal/assessment"
	"github.com/tms-recovery/backend/internal/database"
	"github.com/tms-recovery/backend/internal/education"
	"github.com/tms-recovery/backend/internal/gamification"
	"github.com/tms-recovery/backend/internal/middleware"
	"github.com/tms-recovery/backend/internal/progress"
	"github.com/tms-recovery/backend/internal/safety"
	"github.com/tms-recovery/backend/internal/sarno"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores
	progressStore := progress.NewStore(db)
	safetyStore := safety.NewStore(db)
	gamStore := gamification.NewStore(db)
	sarnoStore := sarno.NewStore(db)

	// Services. Safety reads profiles through an interface wired here to
	// keep the package free of a progress dependency.
	safetyService := safety.NewService(safety.NewMonitor(), safetyStore)
	safetyService.SetProfileSource(progressStore)

	gamService := gamification.NewService(gamStore)
	progressService := progress.NewService(progressStore, gamService, safetyService)
	educationService := education.NewService(progressStore, gamService)
	sarnoService := sarno.NewService(sarnoStore)

	// Handlers
	progressHandler := progress.NewHandler(progressService)
	safetyHandler := safety.NewHandler(safetyService)
	gamHandler := gamification.NewHandler(gamService)
	educationHandler := education.NewHandler(educationService)
	sarnoHandler := sarno.NewHandler(sarnoService)

	assessmentHandler := assessment.NewHandler(assessment.NewService(), progressStore, safetyService)
	assessmentHandler.SetGamificationService(gamService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/profiles", progressHandler.CreateProfile).Methods("POST")

	// Per-user routes
	user := api.PathPrefix("").Subrouter()
	user.Use(middleware.UserMiddleware)

	user.HandleFunc("/profile", progressHandler.GetProfile).Methods("GET")
	user.HandleFunc("/profile", progressHandler.UpdateProfile).Methods("PUT")
	user.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	user.HandleFunc("/journal", progressHandler.AddJournalEntry).Methods("POST")
	user.HandleFunc("/pain-logs", progressHandler.LogPain).Methods("POST")
	user.HandleFunc("/milestones", progressHandler.AddMilestone).Methods("POST")
	user.HandleFunc("/export", progressHandler.Export).Methods("GET")
	user.HandleFunc("/import", progressHandler.Import).Methods("POST")

	user.HandleFunc("/assessment/score", assessmentHandler.Score).Methods("POST")

	user.HandleFunc("/safety/screening", safetyHandler.RunScreening).Methods("POST")
	user.HandleFunc("/safety/monitor", safetyHandler.MonitorSymptoms).Methods("POST")
	user.HandleFunc("/safety/emergency", safetyHandler.EvaluateEmergency).Methods("POST")
	user.HandleFunc("/safety/profile", safetyHandler.GetSafetyProfile).Methods("GET")
	user.HandleFunc("/safety/eligibility", safetyHandler.GetEligibility).Methods("GET")
	user.HandleFunc("/safety/disclaimers", safetyHandler.ListDisclaimers).Methods("GET")
	user.HandleFunc("/safety/disclaimers/acknowledge", safetyHandler.AcknowledgeDisclaimer).Methods("POST")
	user.HandleFunc("/safety/red-flags/acknowledge", safetyHandler.AcknowledgeRedFlag).Methods("POST")
	user.HandleFunc("/safety/clearance", safetyHandler.SetMedicalClearance).Methods("POST")

	user.HandleFunc("/stats", gamHandler.GetStats).Methods("GET")
	user.HandleFunc("/stats/level", gamHandler.GetLevel).Methods("GET")
	user.HandleFunc("/stats/weekly-goals", gamHandler.CreateWeeklyGoals).Methods("POST")
	user.HandleFunc("/stats/activity", gamHandler.GetActivity).Methods("GET")

	user.HandleFunc("/education/modules", educationHandler.ListModules).Methods("GET")
	user.HandleFunc("/education/modules/{id}", educationHandler.GetModule).Methods("GET")
	user.HandleFunc("/education/modules/{id}/quiz", educationHandler.SubmitQuiz).Methods("POST")
	user.HandleFunc("/education/modules/{id}/complete", educationHandler.CompleteModule).Methods("POST")
	user.HandleFunc("/education/recommended", educationHandler.GetRecommended).Methods("GET")

	user.HandleFunc("/chat", sarnoHandler.Chat).Methods("POST")
	user.HandleFunc("/chat/sessions/{id}", sarnoHandler.GetSession).Methods("GET")
	user.HandleFunc("/chat/sessions/{id}", sarnoHandler.DeleteSession).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"X-User-ID", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

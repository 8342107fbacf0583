package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/Untraddgit/untraddcareer-sub001/internal/api/http"
	"github.com/Untraddgit/untraddcareer-sub001/internal/audit"
	auth "github.com/Untraddgit/untraddcareer-sub001/internal/auth/middleware"
	"github.com/Untraddgit/untraddcareer-sub001/internal/config"
	"github.com/Untraddgit/untraddcareer-sub001/internal/contact"
	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/db"
	"github.com/Untraddgit/untraddcareer-sub001/internal/feedback"
	"github.com/Untraddgit/untraddcareer-sub001/internal/notify"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
	"github.com/Untraddgit/untraddcareer-sub001/internal/session"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
	"github.com/Untraddgit/untraddcareer-sub001/internal/webhook"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	students := student.NewSQLStore(dbh)
	courses := course.NewSQLStore(dbh, cfg.DBDriver)
	submissions := submission.NewSQLStore(dbh, cfg.DBDriver)
	results := testresult.NewSQLStore(dbh)
	sessions := session.NewSQLStore(dbh, cfg.DBDriver)
	feedbackStore := feedback.NewSQLStore(dbh)
	auditLog := audit.NewLog(dbh)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)
	if err := auth.EnsureAdmin(ctx, dbh, cfg.AdminUser, cfg.AdminPassHash); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	// --- Outbound collaborators ---
	relay := contact.NewRelay(cfg.ContactRelayURL)
	var mailer notify.EmailService
	if cfg.SendgridKey != "" {
		mailer = notify.NewSendgridService(cfg.SendgridKey, "UntradCareer", cfg.FromEmail)
	} else {
		mailer = notify.NewConsoleService()
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}

	// Identity-provider webhooks: svix-signed, no bearer token.
	if cfg.ClerkWebhookSecret != "" {
		r.Post("/api/webhooks/clerk", webhook.ClerkHandler(cfg.ClerkWebhookSecret, students))
	}

	// Public marketing surface.
	r.Post("/api/contact", api.ContactHandler(relay, mailer, cfg.ContactNotifyEmail))
	r.Get("/api/whatsapp-link", api.WhatsAppLinkHandler(cfg.WhatsAppPhone, "Hi! I would like to know more about UntradCareer."))

	// Protected API (JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

		// Catalog
		pr.With(rbac.Require("course:view")).
			Get("/api/predefined-courses", api.ListCoursesHandler(courses))
		pr.With(rbac.Require("course:view")).
			Get("/api/predefined-courses/{courseName}", api.GetCourseHandler(courses))
		pr.With(rbac.Require("course:manage")).
			Post("/api/predefined-courses/admin/predefined-courses", api.PutCourseHandler(courses, auditLog))
		pr.With(rbac.Require("course:manage")).
			Delete("/api/predefined-courses/admin/predefined-courses/{courseName}", api.DeleteCourseHandler(courses, auditLog))

		// Sessions
		pr.With(rbac.Require("session:view")).
			Get("/api/upcoming-sessions", api.ListSessionsHandler(sessions))
		pr.With(rbac.Require("session:manage")).
			Post("/api/admin/upcoming-sessions", api.CreateSessionHandler(sessions, auditLog))
		pr.With(rbac.Require("session:manage")).
			Delete("/api/admin/upcoming-sessions/{sessionID}", api.DeleteSessionHandler(sessions, auditLog))

		// Submissions
		pr.With(rbac.RequireAny("submission:view-own", "submission:view-all")).
			Get("/api/submissions", api.ListSubmissionsHandler(submissions))
		pr.With(rbac.Require("submission:create")).
			Post("/api/submissions", api.CreateSubmissionHandler(submissions))
		pr.With(rbac.Require("submission:grade")).
			Patch("/api/admin/submissions/{submissionID}/grade", api.GradeSubmissionHandler(submissions, auditLog))

		// Scholarship test results
		pr.With(rbac.Require("testresult:create")).
			Post("/api/test-results", api.CreateTestResultHandler(results))
		pr.With(rbac.RequireAny("testresult:view-own", "testresult:view-all")).
			Get("/api/test-results", api.ListTestResultsHandler(results))
		pr.With(rbac.Require("testresult:view-all")).
			Get("/api/admin/test-results", api.AdminTestResultsHandler(results, students))

		// Students and their dashboard views
		pr.With(rbac.Require("student:view-all")).
			Get("/api/admin/students", api.ListStudentsHandler(students))
		pr.With(rbac.RequireAny("student:view-own", "student:view-all")).
			Get("/api/students/{studentID}", api.GetStudentHandler(students))
		pr.With(rbac.RequireAny("progress:view-own", "progress:view-all")).
			Get("/api/students/{studentID}/progress", api.StudentProgressHandler(courses, submissions))
		pr.With(rbac.RequireAny("scholarship:view-own", "scholarship:view-all")).
			Get("/api/students/{studentID}/scholarship", api.StudentScholarshipHandler(results))

		// Counseling feedback
		pr.With(rbac.RequireAny("feedback:view-own", "feedback:view-all")).
			Get("/api/feedback/{studentID}", api.GetFeedbackHandler(feedbackStore))
		pr.With(rbac.Require("feedback:manage")).
			Put("/api/admin/feedback/{studentID}", api.PutFeedbackHandler(feedbackStore, auditLog))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	authService        service.AuthServiceI
	membersService     service.MembersServiceI
	missionsService    service.MissionsServiceI
	assignmentsService service.AssignmentsServiceI
	statsService       service.StatsServiceI
	surveysService     service.SurveysServiceI
	uploadsService     service.UploadsServiceI
	jwtService         JWTServiceI
	loc                *time.Location
	now                func() time.Time
}

type ServicesList struct {
	AuthService        service.AuthServiceI
	MembersService     service.MembersServiceI
	MissionsService    service.MissionsServiceI
	AssignmentsService service.AssignmentsServiceI
	StatsService       service.StatsServiceI
	SurveysService     service.SurveysServiceI
	UploadsService     service.UploadsServiceI
	JwtService         JWTServiceI
	// Time zone of calendar dates in requests, UTC when nil
	Location *time.Location
	// Clock override, time.Now when nil
	Now func() time.Time
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		authService:        servicesOptions.AuthService,
		membersService:     servicesOptions.MembersService,
		missionsService:    servicesOptions.MissionsService,
		assignmentsService: servicesOptions.AssignmentsService,
		statsService:       servicesOptions.StatsService,
		surveysService:     servicesOptions.SurveysService,
		uploadsService:     servicesOptions.UploadsService,
		jwtService:         servicesOptions.JwtService,
		loc:                servicesOptions.Location,
		now:                servicesOptions.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", metrics.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Post("/auth/refresh", s.Refresh)
		r.Get("/surveys/questions", s.GetSurveyQuestions)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/auth/logout", s.Logout)

			r.Get("/members/me", s.GetProfile)
			r.Patch("/members/me", s.UpdateProfile)
			r.Delete("/members/me", s.DeleteAccount)

			r.Get("/missions", s.GetMissions)
			r.Post("/missions", s.CreateMission)
			r.Get("/missions/clover", s.GetCloverMissions)
			r.Get("/missions/{id}", s.GetMission)
			r.Put("/missions/{id}", s.UpdateMission)
			r.Delete("/missions/{id}", s.DeleteMission)

			r.Get("/assignments/today", s.GetTodaysAssignments)
			r.Post("/assignments/{id}/complete", s.CompleteAssignment)

			r.Get("/stats/participation", s.GetParticipation)
			r.Get("/stats/completed", s.GetCompletedMissions)
			r.Get("/stats/growth", s.GetCategoryGrowth)

			r.Post("/surveys", s.SubmitSurvey)
			r.Get("/surveys/me", s.GetMySurvey)

			r.Post("/uploads/presigned", s.PresignUpload)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("api server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}

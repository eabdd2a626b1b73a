package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"corpportal/cmd/app"
	"corpportal/internal/config"
	"corpportal/internal/database"
	handlers "corpportal/internal/handler"
	"corpportal/internal/middleware"
	"corpportal/internal/models"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, hub := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, hub, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/me", handler.UpdateCurrentUser).Methods(http.MethodPut)
	router.HandleFunc("/api/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// справочник сотрудников открыт всем авторизованным,
	// админскими остаются только смена роли и удаление
	router.HandleFunc("/api/users", handler.GetUsers).Methods(http.MethodGet)
	router.Handle("/api/users/{id}/role", middleware.AdminOnlyMiddleware(http.HandlerFunc(handler.UpdateUserRole))).Methods(http.MethodPut)
	router.Handle("/api/users/{id}", middleware.AdminOnlyMiddleware(http.HandlerFunc(handler.DeleteUser))).Methods(http.MethodDelete)

	adminOnly := middleware.RoleMiddleware(models.RoleAdmin)
	router.HandleFunc("/api/departments", handler.GetDepartments).Methods(http.MethodGet)
	router.Handle("/api/departments", adminOnly(http.HandlerFunc(handler.CreateDepartment))).Methods(http.MethodPost)
	router.Handle("/api/departments/{id}", adminOnly(http.HandlerFunc(handler.UpdateDepartment))).Methods(http.MethodPut)
	router.Handle("/api/departments/{id}", adminOnly(http.HandlerFunc(handler.DeleteDepartment))).Methods(http.MethodDelete)

	router.HandleFunc("/api/content/{kind}", handler.GetContentList).Methods(http.MethodGet)
	router.HandleFunc("/api/content/{kind}", handler.CreateContent).Methods(http.MethodPost)
	router.HandleFunc("/api/content/{kind}/{id}", handler.GetContent).Methods(http.MethodGet)
	router.HandleFunc("/api/content/{kind}/{id}", handler.UpdateContent).Methods(http.MethodPut)
	router.HandleFunc("/api/content/{kind}/{id}", handler.DeleteContent).Methods(http.MethodDelete)
	router.HandleFunc("/api/content/{kind}/{id}/image", handler.AttachContentImage).Methods(http.MethodPost)

	router.HandleFunc("/api/posts/{kind}/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{kind}/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)
	router.HandleFunc("/api/comments/image", handler.UploadCommentImage).Methods(http.MethodPost)

	router.HandleFunc("/api/posts/{kind}/{id}/reactions", handler.GetReactions).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{kind}/{id}/reaction", handler.SetReaction).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{kind}/{id}/reaction", handler.RemoveReaction).Methods(http.MethodDelete)

	router.HandleFunc("/api/activity/feed", handler.GetActivityFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/activity/check", handler.CheckActivity).Methods(http.MethodPost)

	router.HandleFunc("/api/links/subscribe", handler.SubscribeLinks).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

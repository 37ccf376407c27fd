package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"stickynotes/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Notes     *NoteHandler
	Accounts  middleware.AccountResolver
	JWTSecret []byte

	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(deps.CORSOrigins),
		gzip.Gzip(gzip.DefaultCompression),
	)

	api := engine.Group("/api")
	api.POST("/auth/signup", deps.Auth.Signup)
	api.POST("/auth/login", deps.Auth.Login)

	notes := api.Group("/notes")
	notes.Use(middleware.Auth(deps.JWTSecret, deps.Accounts))
	notes.POST("", deps.Notes.Create)
	notes.GET("", deps.Notes.List)
	notes.GET("/:id", deps.Notes.Get)
	notes.PUT("/:id", deps.Notes.Update)
	notes.DELETE("/:id", deps.Notes.Delete)

	return engine
}

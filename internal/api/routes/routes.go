package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/api/handlers"
	"github.com/mtorelli/linknest/internal/api/middleware"
)

type Deps struct {
	SessionSecret  []byte
	Session        *handlers.SessionHandler
	Profile        *handlers.ProfileHandler
	Contact        *handlers.ContactHandler
	Recommendation *handlers.RecommendationHandler
	Message        *handlers.MessageHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Starting a session is the only unauthenticated operation; it mints the
	// token everything else requires.
	r.POST("/session/start", d.Session.Start)

	auth := r.Group("/")
	auth.Use(middleware.SessionAuth(d.SessionSecret))

	auth.POST("/session/reset", d.Session.Reset)

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/update", d.Profile.Update)

	auth.GET("/contacts", d.Contact.List)
	auth.POST("/contacts", d.Contact.Add)
	auth.POST("/contacts/import", d.Contact.ImportCSV)
	auth.POST("/contacts/import/directory", d.Contact.ImportDirectory)
	auth.POST("/contacts/sample", d.Contact.LoadSample)
	auth.GET("/contacts/:contact_id/starters", d.Message.Starters)

	auth.GET("/recommendations", d.Recommendation.Browse)
	auth.GET("/recommendations/top", d.Recommendation.Top)
	auth.POST("/recommendations/refresh", d.Recommendation.Refresh)
	auth.PUT("/goal", d.Recommendation.SetGoal)

	auth.POST("/messages/generate", d.Message.Generate)
	auth.POST("/messages/analyze", d.Message.Analyze)
	auth.POST("/messages/improve", d.Message.Improve)
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"family-health-api/internal/handler"
	"family-health-api/internal/middleware"
)

type Options struct {
	Secret     string
	CORSOrigin string
	Limiter    *middleware.RateLimiter
	Log        logrus.FieldLogger
	// Ready backs GET /healthz; nil means always ready.
	Ready func() bool
}

func New(h *handler.Handler, o Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(o.Log), middleware.CORS(o.CORSOrigin))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Health Tracker API Running")
	})
	r.GET("/healthz", func(c *gin.Context) {
		if o.Ready != nil && !o.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	if o.Limiter != nil {
		authGroup.Use(middleware.RateLimit(o.Limiter))
	}
	authGroup.POST("/signup", h.Signup)
	authGroup.POST("/login", h.Login)

	protected := api.Group("", middleware.Auth(o.Secret))

	family := protected.Group("/family")
	family.POST("/add", h.AddFamilyMember)
	family.GET("/get", h.ListFamilyMembers)

	medicines := protected.Group("/medicines")
	medicines.POST("/add", h.AddMedicine)
	medicines.GET("/get", h.ListMedicines)

	appointments := protected.Group("/appointments")
	appointments.POST("/add", h.AddAppointment)
	appointments.GET("/get", h.ListAppointments)
	appointments.PUT("/update/:id", h.UpdateAppointment)
	appointments.DELETE("/delete/:id", h.DeleteAppointment)

	emergency := protected.Group("/emergency")
	emergency.POST("/add", h.AddContact)
	emergency.GET("/get", h.ListContacts)
	emergency.PUT("/update/:id", h.UpdateContact)
	emergency.DELETE("/delete/:id", h.DeleteContact)

	return r
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coursehub/internal/config"
	"coursehub/internal/handler"
)

// Register wires routes and middleware. Each protected route declares exactly
// one guard variant; no route is reachable by both.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	adminGuard echo.MiddlewareFunc,
	userGuard echo.MiddlewareFunc,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	admin := api.Group("/admin")
	admin.POST("/signup", adminHandler.Signup)
	admin.POST("/login", adminHandler.Login)
	admin.GET("/logout", adminHandler.Logout)
	admin.GET("/my-courses", adminHandler.MyCourses, adminGuard)

	course := api.Group("/course")
	course.POST("/create", courseHandler.Create, adminGuard)
	course.PUT("/update/:courseId", courseHandler.Update, adminGuard)
	course.DELETE("/delete/:courseId", courseHandler.Delete, adminGuard)
	course.GET("/courses", courseHandler.List)
	course.POST("/buy/:courseId", courseHandler.Buy, userGuard)
	course.GET("/:courseId", courseHandler.GetByID)

	user := api.Group("/user")
	user.POST("/signup", userHandler.Signup)
	user.POST("/login", userHandler.Login)
	user.GET("/logout", userHandler.Logout)
	user.GET("/purchases", userHandler.Purchases, userGuard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "barakahku_backend/internals/features/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.ListCourses)
	courses.Get("/:slug", courseCtrl.GetCourseBySlug)
}

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)

	courses := admin.Group("/courses")
	courses.Post("/", courseCtrl.CreateCourse)
	courses.Put("/:id", courseCtrl.UpdateCourse)
	courses.Delete("/:id", courseCtrl.DeleteCourse)
}

package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-tracker/config"
	"task-tracker/internal/api/handler"
	"task-tracker/internal/api/middleware"
	"task-tracker/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil; write routes are then not
// rate limited.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── Health ──
	r.GET("/health", h.Health.Health)

	write := middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		departments := v1.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/count", h.Department.CountDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.POST("", write, h.Department.CreateDepartment)
			departments.PUT("/:id", write, h.Department.UpdateDepartment)
			departments.DELETE("/:id", write, h.Department.DeleteDepartment)
		}

		roles := v1.Group("/roles")
		{
			roles.GET("", h.Role.ListRoles)
			roles.GET("/count", h.Role.CountRoles)
			roles.GET("/department/:departmentId", h.Role.ListRolesByDepartment)
			roles.GET("/:id", h.Role.GetRole)
			roles.POST("", write, h.Role.CreateRole)
			roles.PUT("/:id", write, h.Role.UpdateRole)
			roles.DELETE("/:id", write, h.Role.DeleteRole)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.GET("/count", h.Employee.CountEmployees)
			employees.GET("/department/:departmentId", h.Employee.ListEmployeesByDepartment)
			employees.GET("/role/:roleId", h.Employee.ListEmployeesByRole)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.POST("", write, h.Employee.CreateEmployee)
			employees.PUT("/:id", write, h.Employee.UpdateEmployee)
			employees.DELETE("/:id", write, h.Employee.DeleteEmployee)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/count", h.Project.CountProjects)
			projects.GET("/status/:status", h.Project.ListProjectsByStatus)
			projects.GET("/:id", h.Project.GetProject)
			projects.POST("", write, h.Project.CreateProject)
			projects.PUT("/:id", write, h.Project.UpdateProject)
			projects.DELETE("/:id", write, h.Project.DeleteProject)
		}

		tasks := v1.Group("/project-tasks")
		{
			tasks.GET("", h.ProjectTask.ListTasks)
			tasks.GET("/count", h.ProjectTask.CountTasks)
			tasks.GET("/project/:projectId", h.ProjectTask.ListTasksByProject)
			tasks.GET("/status/:status", h.ProjectTask.ListTasksByStatus)
			tasks.GET("/employee/:employeeId", h.ProjectTask.ListTasksByEmployee)
			tasks.GET("/:id", h.ProjectTask.GetTask)
			tasks.POST("", write, h.ProjectTask.CreateTask)
			tasks.PUT("/:id", write, h.ProjectTask.UpdateTask)
			tasks.DELETE("/:id", write, h.ProjectTask.DeleteTask)
		}
	}

	return r
}

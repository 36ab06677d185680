package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/config"
	"mktrading-backend/controllers"
	"mktrading-backend/database"
	"mktrading-backend/repositories"
	"mktrading-backend/services"
	"mktrading-backend/utils"
)

type Dependencies struct {
	Gateway        *database.Gateway
	Tokens         *utils.TokenService
	Auth           *services.AuthService
	Reports        *services.ReportService
	AllowedOrigins []string
	Log            zerolog.Logger
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger(deps.Log))
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	log := deps.Log
	authController := controllers.NewAuthController(deps.Auth, log)
	partyController := controllers.NewPartyController(repositories.NewPartyRepository(deps.Gateway), log)
	challanController := controllers.NewChallanController(repositories.NewChallanRepository(deps.Gateway), log)
	employeeController := controllers.NewEmployeeController(repositories.NewEmployeeRepository(deps.Gateway), log)
	salaryController := controllers.NewSalaryController(repositories.NewSalaryRepository(deps.Gateway), log)
	expenseController := controllers.NewOfficeExpenseController(repositories.NewOfficeExpenseRepository(deps.Gateway), log)
	paymentController := controllers.NewPaymentController(repositories.NewPaymentRepository(deps.Gateway), log)
	reportController := controllers.NewReportController(deps.Reports, services.NewExportService(deps.Reports), log)

	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	api.GET("/health", controllers.Health)
	api.POST("/login", authController.Login)

	protected := api.Group("")
	protected.Use(utils.AuthMiddleware(deps.Tokens))
	{
		parties := protected.Group("/parties")
		{
			parties.GET("", partyController.ListParties)
			parties.POST("", partyController.CreateParty)
			parties.GET("/search-by-challan", partyController.SearchByChallan)
			parties.PUT("/:id", partyController.UpdateParty)
			parties.DELETE("/:id", partyController.DeleteParty)
		}

		challans := protected.Group("/challans")
		{
			challans.GET("", challanController.ListChallans)
			challans.POST("", challanController.CreateChallan)
			challans.GET("/search-by-party", challanController.SearchByParty)
			challans.PUT("/:id", challanController.UpdateChallan)
			challans.DELETE("/:id", challanController.DeleteChallan)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", employeeController.ListEmployees)         // GET /api/employees
			employees.POST("", employeeController.CreateEmployee)       // POST /api/employees
			employees.PUT("/:id", employeeController.UpdateEmployee)    // PUT /api/employees/:id
			employees.DELETE("/:id", employeeController.DeleteEmployee) // DELETE /api/employees/:id
		}

		salaries := protected.Group("/salaries")
		{
			salaries.GET("", salaryController.ListSalaries)
			salaries.POST("", salaryController.CreateSalary)
			salaries.PUT("/:id", salaryController.UpdateSalary)
			salaries.DELETE("/:id", salaryController.DeleteSalary)
		}

		expenses := protected.Group("/office-expenses")
		{
			expenses.GET("", expenseController.ListOfficeExpenses)
			expenses.POST("", expenseController.CreateOfficeExpense)
			expenses.PUT("/:id", expenseController.UpdateOfficeExpense)
			expenses.DELETE("/:id", expenseController.DeleteOfficeExpense)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", paymentController.ListPayments)
			payments.POST("", paymentController.CreatePayment)
			payments.PUT("/:id", paymentController.UpdatePayment)
			payments.DELETE("/:id", paymentController.DeletePayment)
		}

		// Reports routes
		reports := protected.Group("/reports")
		{
			reports.GET("/last-month-payments", reportController.LastMonthPayments)
			reports.GET("/current-month-payments", reportController.CurrentMonthPayments)
			reports.GET("/outstanding", reportController.Outstanding)
			reports.GET("/outstanding/export", reportController.ExportOutstanding)
			reports.GET("/total-incoming", reportController.TotalIncoming)
		}
	}

	return r
}

// corsConfig allows any origin for an empty list or "*", otherwise only the
// listed origins with credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", config.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", config.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

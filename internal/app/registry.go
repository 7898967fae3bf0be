package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"hrms-portal/internal/attendance"
	"hrms-portal/internal/department"
	"hrms-portal/internal/employee"
	"hrms-portal/internal/leave"
	"hrms-portal/internal/shared/document"
	"hrms-portal/internal/system"
)

func registerModules(
	router *gin.Engine,
	store document.Store,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(store)
	departmentRepo := department.NewRepository(store)
	employeeRepo := employee.NewRepository(store)
	leaveRepo := leave.NewRepository(store)

	// --- Event Publisher ---
	publisher := employee.NewNoopEventPublisher()
	if kafkaWriter != nil {
		publisher = employee.NewKafkaEventPublisher(kafkaWriter)
	}

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo)
	departmentService := department.NewService(departmentRepo, rdb)
	employeeService := employee.NewService(employeeRepo, publisher)
	leaveService := leave.NewService(leaveRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	systemHandler := system.NewHandler(store)

	// --- Routes Registration ---
	system.RegisterRoutes(router, systemHandler)
	attendance.RegisterRoutes(router, attendanceHandler)
	department.RegisterRoutes(router, departmentHandler)
	employee.RegisterRoutes(router, employeeHandler)
	leave.RegisterRoutes(router, leaveHandler)
}

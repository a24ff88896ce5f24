package connection

import (
	"log"

	"todoapp/controller/auth"
	"todoapp/controller/notification"
	"todoapp/controller/task"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	db, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.SignUpController(router, db)
	auth.SignInController(router, db)
	auth.SignOutController(router, db)
	auth.RefreshTokenController(router, db)

	task.GetTasksController(router, db)
	task.CreateTaskController(router, db)
	task.UpdateTaskController(router, db)
	task.DeleteTaskController(router, db)

	notification.NotificationController(router, db)
	notification.CheckRemindersController(router, db)

	router.Run()
}

package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin into release mode when APP_ENV is "production".
// Every other environment keeps gin's default debug mode.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

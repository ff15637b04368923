package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "user_id"

// CurrentUser binds every request to the given user, there is no authentication yet
func CurrentUser(userID int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) int {
	userID, _ := c.Locals(userIDKey).(int)
	return userID
}

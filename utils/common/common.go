package common

import "github.com/gin-gonic/gin"

func GetUserID(c *gin.Context) *uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func GetStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

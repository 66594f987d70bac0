package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

const settingsCacheKey = "settings"
const settingsCacheTTL = 5 * time.Minute

// GET /api/settings
func GetSettings(c *gin.Context) {
	if database.Redis != nil {
		if cached, err := database.Redis.Get(context.Background(), settingsCacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	if database.Redis != nil {
		if body, err := json.Marshal(settings); err == nil {
			database.Redis.Set(context.Background(), settingsCacheKey, body, settingsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, settings)
}

// PUT /api/settings overwrites all four fields of the singleton row.
func UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	updates := map[string]interface{}{
		"location_name":    req.LocationName,
		"location_address": req.LocationAddress,
		"meeting_time":     req.MeetingTime,
		"organizer_email":  req.OrganizerEmail,
	}
	if err := database.DB.Model(&settings).Updates(updates).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	if database.Redis != nil {
		database.Redis.Del(context.Background(), settingsCacheKey)
	}

	c.JSON(http.StatusOK, settings)
}

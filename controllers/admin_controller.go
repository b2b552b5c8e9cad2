package controllers

import (
	"errors"
	"net/http"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/services"
	"github.com/junler/fitnessTracker/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Cfg   *config.Settings
	Svc   *services.AdminService
	Model *services.ModelService
	Cache *services.Cache
}

func NewAdminController(cfg *config.Settings, svc *services.AdminService, model *services.ModelService, cache *services.Cache) *AdminController {
	return &AdminController{Cfg: cfg, Svc: svc, Model: model, Cache: cache}
}

func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminController) GetDailyBreakdown(c *gin.Context) {
	rows, err := h.Svc.DailyBreakdown()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily": rows})
}

func (h *AdminController) GetTopUsers(c *gin.Context) {
	top, err := h.Svc.TopUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_users": top})
}

func (h *AdminController) RetrainModel(c *gin.Context) {
	var params services.Hyperparams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Model.Retrain(params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientData):
			// warning, not failure: nothing was changed
			c.JSON(http.StatusOK, gin.H{"warning": err.Error()})
		case errors.Is(err, services.ErrBadHyperparams):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "模型训练失败：" + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "模型训练成功",
		"rows_used":    result.RowsUsed,
		"coefficients": result.Coefficients,
	})
}

func (h *AdminController) BackupDatabase(c *gin.Context) {
	path, err := utils.BackupDatabase(h.Cfg.DBPath, h.Cfg.BackupBucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "备份失败：" + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "数据库备份成功", "backup_path": path})
}

func (h *AdminController) ClearCache(c *gin.Context) {
	h.Cache.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "缓存清理成功"})
}

type shutdownInput struct {
	Reason string `json:"reason"`
}

// Shutdown mirrors the source system's cosmetic shutdown action: the reason
// is required and logged, but the process is never terminated.
func (h *AdminController) Shutdown(c *gin.Context) {
	var input shutdownInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请输入关机原因"})
		return
	}

	utils.Warning("Shutdown requested (no-op), reason: %s", input.Reason)
	c.JSON(http.StatusOK, gin.H{"message": "系统即将关闭...", "reason": input.Reason})
}

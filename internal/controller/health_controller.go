package controller

import (
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	SnapshotRepo *repository.SnapshotRepository
}

func NewHealthController(snapshotRepo *repository.SnapshotRepository) *HealthController {
	return &HealthController{SnapshotRepo: snapshotRepo}
}

// @Summary 健康检查
// @Description 检查服务状态与快照目录可写性
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	snapshotDir := "up"
	dir := filepath.Dir(c.SnapshotRepo.Path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		snapshotDir = "unavailable"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"snapshot_dir": snapshotDir,
		},
	})
}
